package dto

import "github.com/wepayu/internal/domain"

func validationError(msg string) *domain.Error {
	return domain.NewError(domain.ErrValidation, msg)
}

// Ошибки проверки, которые не выражаются тегами
var (
	ErrKindInvalid       = validationError("Tipo invalido.")
	ErrKindNotApplicable = validationError("Tipo nao aplicavel.")
)

// messages сопоставляет "Поле.тег" с текстом ошибки
var messages = map[string]error{
	"EmployeeID.notblank": validationError("Identificacao do empregado nao pode ser nula."),
	"MemberID.notblank":   validationError("Identificacao do membro nao pode ser nula."),
	"Attribute.notblank":  validationError("Atributo nao pode ser nulo."),

	"Name.notblank":    validationError("Nome nao pode ser nulo."),
	"Address.notblank": validationError("Endereco nao pode ser nulo."),
	"Kind.notblank":    validationError("Tipo nao pode ser nulo."),
	"Index.number":     validationError("Indice deve ser numerico."),

	"Salary.notblank": validationError("Salario nao pode ser nulo."),
	"Salary.money":    validationError("Salario deve ser numerico."),
	"Salary.nonneg":   validationError("Salario deve ser nao-negativo."),

	"Commission.notblank": validationError("Comissao nao pode ser nula."),
	"Commission.money":    validationError("Comissao deve ser numerica."),
	"Commission.nonneg":   validationError("Comissao deve ser nao-negativa."),

	"Unionized.oneof":    validationError("Valor deve ser true ou false."),
	"UnionID.notblank":   validationError("Identificacao do sindicato nao pode ser nula."),
	"UnionDues.notblank": validationError("Taxa sindical nao pode ser nula."),
	"UnionDues.money":    validationError("Taxa sindical deve ser numerica."),
	"UnionDues.nonneg":   validationError("Taxa sindical deve ser nao-negativa."),

	"Method.oneof":      validationError("Metodo de pagamento invalido."),
	"Bank.notblank":     validationError("Banco nao pode ser nulo."),
	"Agency.notblank":   validationError("Agencia nao pode ser nulo."),
	"Account.notblank":  validationError("Conta corrente nao pode ser nulo."),
	"Schedule.notblank": domain.ErrScheduleNotAvailable,

	"Date.notblank":      validationError("Data nao pode ser nula."),
	"Date.date_br":       domain.ErrDateInvalid,
	"StartDate.notblank": validationError("Data inicial nao pode ser nula."),
	"EndDate.notblank":   validationError("Data final nao pode ser nula."),

	"Hours.notblank": validationError("Horas nao podem ser nulas."),
	"Hours.money":    validationError("Horas devem ser numericas."),
	"Hours.positive": validationError("Horas devem ser positivas."),

	"Amount.notblank": validationError("Valor nao pode ser nulo."),
	"Amount.money":    validationError("Valor deve ser numerico."),
	"Amount.positive": validationError("Valor deve ser positivo."),

	"Output.notblank":      validationError("Arquivo de saida nao pode ser nulo."),
	"Description.notblank": domain.ErrScheduleDescription,
}
