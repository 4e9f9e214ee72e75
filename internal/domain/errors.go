package domain

import "errors"

// Виды бизнес-ошибок
var (
	ErrInvalidDate                = errors.New("invalid date")
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrMembershipNotFound         = errors.New("membership not found")
	ErrWrongEmployeeKind          = errors.New("wrong employee kind for operation")
	ErrNoCommandToUndo            = errors.New("no command to undo")
	ErrNoCommandToRedo            = errors.New("no command to redo")
	ErrScheduleAlreadyExists      = errors.New("payment schedule already exists")
	ErrInvalidScheduleDescription = errors.New("invalid payment schedule description")
	ErrScheduleUnavailable        = errors.New("payment schedule unavailable")
	ErrDuplicateMembershipID      = errors.New("duplicate union membership id")
	ErrUnknownAttribute           = errors.New("unknown employee attribute")
	ErrSystemClosed               = errors.New("system closed")
	ErrValidation                 = errors.New("validation failed")
)

// Error - ошибка с текстом для пользователя, относящаяся к одному из видов выше
type Error struct {
	kind error
	msg  string
}

// NewError создаёт ошибку заданного вида
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// Is позволяет проверять вид ошибки через errors.Is
func (e *Error) Is(target error) bool {
	return target == e.kind
}

// Сообщения, которые видит пользователь
var (
	ErrDateInvalid           = NewError(ErrInvalidDate, "Data invalida.")
	ErrStartDateInvalid      = NewError(ErrInvalidDate, "Data inicial invalida.")
	ErrEndDateInvalid        = NewError(ErrInvalidDate, "Data final invalida.")
	ErrDateRangeInverted     = NewError(ErrInvalidDate, "Data inicial nao pode ser posterior aa data final.")
	ErrEmployeeDoesNotExist  = NewError(ErrEmployeeNotFound, "Empregado nao existe.")
	ErrNoEmployeeWithName    = NewError(ErrEmployeeNotFound, "Nao ha empregado com esse nome.")
	ErrMemberDoesNotExist    = NewError(ErrMembershipNotFound, "Membro nao existe.")
	ErrNotHourly             = NewError(ErrWrongEmployeeKind, "Empregado nao eh horista.")
	ErrNotCommissioned       = NewError(ErrWrongEmployeeKind, "Empregado nao eh comissionado.")
	ErrNotUnionized          = NewError(ErrWrongEmployeeKind, "Empregado nao eh sindicalizado.")
	ErrNotPaidByBank         = NewError(ErrWrongEmployeeKind, "Empregado nao recebe em banco.")
	ErrNothingToUndo         = NewError(ErrNoCommandToUndo, "Nao ha comando a desfazer.")
	ErrNothingToRedo         = NewError(ErrNoCommandToRedo, "Nao ha comando a refazer.")
	ErrScheduleExists        = NewError(ErrScheduleAlreadyExists, "Agenda de pagamentos ja existe")
	ErrScheduleDescription   = NewError(ErrInvalidScheduleDescription, "Descricao de agenda invalida")
	ErrScheduleNotAvailable  = NewError(ErrScheduleUnavailable, "Agenda de pagamento nao esta disponivel")
	ErrMembershipIDTaken     = NewError(ErrDuplicateMembershipID, "Ha outro empregado com esta identificacao de sindicato")
	ErrAttributeDoesNotExist = NewError(ErrUnknownAttribute, "Atributo nao existe.")
	ErrCommandsAfterClose    = NewError(ErrSystemClosed, "Nao pode dar comandos depois de encerrarSistema.")
)
