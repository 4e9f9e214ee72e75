package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/dto"
	"github.com/wepayu/internal/service"
)

// PayrollHandler переводит команды скрипта в вызовы сервисов
type PayrollHandler struct {
	employees service.EmployeeService
	entries   service.EntryService
	payroll   service.PayrollService
	system    service.SystemService
	validator *dto.Validator
	logger    *slog.Logger
}

func NewPayrollHandler(
	employees service.EmployeeService,
	entries service.EntryService,
	payroll service.PayrollService,
	system service.SystemService,
	logger *slog.Logger,
) *PayrollHandler {
	return &PayrollHandler{
		employees: employees,
		entries:   entries,
		payroll:   payroll,
		system:    system,
		validator: dto.NewValidator(),
		logger:    logger,
	}
}

// Open начинает новую сессию перед каждым скриптом
func (h *PayrollHandler) Open(ctx context.Context) error {
	return h.system.Open(ctx)
}

func (h *PayrollHandler) Reset(ctx context.Context, cmd *dto.Command) (string, error) {
	return "", h.handleServiceError(cmd, h.system.Reset(ctx))
}

func (h *PayrollHandler) Shutdown(ctx context.Context, cmd *dto.Command) (string, error) {
	return "", h.handleServiceError(cmd, h.system.Shutdown(ctx))
}

func (h *PayrollHandler) Undo(ctx context.Context, cmd *dto.Command) (string, error) {
	return "", h.handleServiceError(cmd, h.system.Undo(ctx))
}

func (h *PayrollHandler) Redo(ctx context.Context, cmd *dto.Command) (string, error) {
	return "", h.handleServiceError(cmd, h.system.Redo(ctx))
}

func (h *PayrollHandler) CreateEmployee(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.CreateEmployeeRequest{
		Name:       cmd.Arg("nome"),
		Address:    cmd.Arg("endereco"),
		Kind:       cmd.Arg("tipo"),
		Salary:     cmd.Arg("salario"),
		Commission: cmd.OptionalArg("comissao"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}

	id, err := h.employees.Create(ctx, &req)
	if err != nil {
		return "", h.handleServiceError(cmd, err)
	}
	return id, nil
}

func (h *PayrollHandler) GetAttribute(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.EmployeeAttributeRequest{
		EmployeeID: cmd.Arg("emp"),
		Attribute:  cmd.Arg("atributo"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}

	value, err := h.employees.GetAttribute(ctx, req.EmployeeID, req.Attribute)
	if err != nil {
		return "", h.handleServiceError(cmd, err)
	}
	return value, nil
}

func (h *PayrollHandler) FindByName(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.FindByNameRequest{
		Name:  cmd.Arg("nome"),
		Index: cmd.Arg("indice"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}

	id, err := h.employees.FindByName(ctx, &req)
	if err != nil {
		return "", h.handleServiceError(cmd, err)
	}
	return id, nil
}

func (h *PayrollHandler) RemoveEmployee(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.EmployeeRef{EmployeeID: cmd.Arg("emp")}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.employees.Remove(ctx, req.EmployeeID))
}

func (h *PayrollHandler) AlterEmployee(ctx context.Context, cmd *dto.Command) (string, error) {
	ref := dto.EmployeeAttributeRequest{
		EmployeeID: cmd.Arg("emp"),
		Attribute:  cmd.Arg("atributo"),
	}
	if err := h.validator.Struct(&ref); err != nil {
		return "", err
	}
	if _, err := h.employees.GetByID(ctx, ref.EmployeeID); err != nil {
		return "", h.handleServiceError(cmd, err)
	}

	req, err := h.parseAlteration(cmd, ref.Attribute)
	if err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.employees.Alter(ctx, ref.EmployeeID, req))
}

// parseAlteration собирает и проверяет запрос изменения по имени атрибута
func (h *PayrollHandler) parseAlteration(cmd *dto.Command, attribute string) (dto.Alteration, error) {
	value := cmd.Arg("valor")

	var req dto.Alteration
	switch attribute {
	case "nome":
		req = &dto.AlterNameRequest{Name: value}
	case "endereco":
		req = &dto.AlterAddressRequest{Address: value}
	case "salario":
		req = &dto.AlterSalaryRequest{Salary: value}
	case "comissao":
		req = &dto.AlterCommissionRequest{Commission: value}
	case "agendaPagamento":
		req = &dto.AlterScheduleRequest{Schedule: value}

	case "tipo":
		kindReq := &dto.AlterKindRequest{Kind: value}
		if value == string(domain.KindCommissioned) {
			kindReq.Commission = cmd.OptionalArg("comissao")
			if kindReq.Commission == nil {
				kindReq.Commission = new(string)
			}
		} else {
			kindReq.Salary = cmd.OptionalArg("salario")
		}
		req = kindReq

	case "sindicalizado":
		unionReq := &dto.AlterUnionRequest{Unionized: value}
		if err := h.validator.Struct(unionReq); err != nil {
			return nil, err
		}
		req = unionReq
		if value == "true" {
			req = &dto.EnrollRequest{
				UnionID:   cmd.Arg("idSindicato"),
				UnionDues: cmd.Arg("taxaSindical"),
			}
		}

	case "metodoPagamento":
		method := value
		if v, ok := cmd.Args["valor1"]; ok {
			method = v
		}
		methodReq := &dto.AlterPaymentMethodRequest{Method: method}
		if err := h.validator.Struct(methodReq); err != nil {
			return nil, err
		}
		req = methodReq
		if method == string(domain.PaymentByBank) {
			req = &dto.BankAccountRequest{
				Bank:    cmd.Arg("banco"),
				Agency:  cmd.Arg("agencia"),
				Account: cmd.Arg("contaCorrente"),
			}
		}

	default:
		return nil, domain.ErrAttributeDoesNotExist
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (h *PayrollHandler) PostTimeCard(ctx context.Context, cmd *dto.Command) (string, error) {
	if err := h.requireEmployee(ctx, cmd.Arg("emp")); err != nil {
		return "", err
	}

	req := dto.TimeCardRequest{
		EmployeeID: cmd.Arg("emp"),
		Date:       cmd.Arg("data"),
		Hours:      cmd.Arg("horas"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.entries.PostTimeCard(ctx, &req))
}

func (h *PayrollHandler) PostSale(ctx context.Context, cmd *dto.Command) (string, error) {
	if err := h.requireEmployee(ctx, cmd.Arg("emp")); err != nil {
		return "", err
	}

	req := dto.SaleRequest{
		EmployeeID: cmd.Arg("emp"),
		Date:       cmd.Arg("data"),
		Amount:     cmd.Arg("valor"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.entries.PostSale(ctx, &req))
}

// requireEmployee проверяет идентификатор до остальных аргументов
func (h *PayrollHandler) requireEmployee(ctx context.Context, id string) error {
	if err := h.validator.Struct(&dto.EmployeeRef{EmployeeID: id}); err != nil {
		return err
	}
	if _, err := h.employees.GetByID(ctx, id); err != nil {
		return err
	}
	return nil
}

func (h *PayrollHandler) PostServiceCharge(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.ServiceChargeRequest{
		MemberID: cmd.Arg("membro"),
		Date:     cmd.Arg("data"),
		Amount:   cmd.Arg("valor"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.entries.PostServiceCharge(ctx, &req))
}

func (h *PayrollHandler) NormalHours(ctx context.Context, cmd *dto.Command) (string, error) {
	return h.rangeQuery(ctx, cmd, h.entries.NormalHours, domain.Money.Compact)
}

func (h *PayrollHandler) ExtraHours(ctx context.Context, cmd *dto.Command) (string, error) {
	return h.rangeQuery(ctx, cmd, h.entries.ExtraHours, domain.Money.Compact)
}

func (h *PayrollHandler) Sales(ctx context.Context, cmd *dto.Command) (string, error) {
	return h.rangeQuery(ctx, cmd, h.entries.Sales, domain.Money.String)
}

func (h *PayrollHandler) ServiceCharges(ctx context.Context, cmd *dto.Command) (string, error) {
	return h.rangeQuery(ctx, cmd, h.entries.ServiceCharges, domain.Money.String)
}

type rangeFunc func(ctx context.Context, q *dto.RangeQuery) (domain.Money, error)

func (h *PayrollHandler) rangeQuery(ctx context.Context, cmd *dto.Command, query rangeFunc, format func(domain.Money) string) (string, error) {
	q := dto.RangeQuery{
		EmployeeID: cmd.Arg("emp"),
		StartDate:  cmd.Arg("dataInicial"),
		EndDate:    cmd.Arg("dataFinal"),
	}
	if err := h.validator.Struct(&q); err != nil {
		return "", err
	}

	value, err := query(ctx, &q)
	if err != nil {
		return "", h.handleServiceError(cmd, err)
	}
	return format(value), nil
}

func (h *PayrollHandler) CreateSchedule(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.ScheduleRequest{Description: cmd.Arg("descricao")}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.payroll.CreateSchedule(ctx, req.Description))
}

func (h *PayrollHandler) TotalPayroll(ctx context.Context, cmd *dto.Command) (string, error) {
	req := dto.PayrollRequest{Date: cmd.Arg("data")}
	if err := h.validator.Struct(&req); err != nil {
		return "", err
	}

	total, err := h.payroll.Total(ctx, mustParseDate(req.Date))
	if err != nil {
		return "", h.handleServiceError(cmd, err)
	}
	return total.String(), nil
}

func (h *PayrollHandler) RunPayroll(ctx context.Context, cmd *dto.Command) (string, error) {
	req, err := h.parsePayrollOutput(cmd)
	if err != nil {
		return "", err
	}

	_, err = h.payroll.Run(ctx, mustParseDate(req.Date), req.Output)
	return "", h.handleServiceError(cmd, err)
}

func (h *PayrollHandler) ExportPayrollCSV(ctx context.Context, cmd *dto.Command) (string, error) {
	req, err := h.parsePayrollOutput(cmd)
	if err != nil {
		return "", err
	}
	return "", h.handleServiceError(cmd, h.payroll.ExportCSV(ctx, mustParseDate(req.Date), req.Output))
}

func (h *PayrollHandler) parsePayrollOutput(cmd *dto.Command) (*dto.PayrollRequest, error) {
	req := dto.PayrollRequest{Date: cmd.Arg("data"), Output: cmd.Arg("saida")}
	if err := h.validator.Struct(&req); err != nil {
		return nil, err
	}
	if err := h.validator.Struct(&dto.OutputRequest{Output: req.Output}); err != nil {
		return nil, err
	}
	return &req, nil
}

// mustParseDate - дата уже проверена тегом date_br
func mustParseDate(s string) time.Time {
	d, _ := domain.ParseDate(s)
	return d
}

// handleServiceError пропускает ожидаемые ошибки как есть и логирует остальные
func (h *PayrollHandler) handleServiceError(cmd *dto.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrWrongEmployeeKind),
		errors.Is(err, domain.ErrNoCommandToUndo),
		errors.Is(err, domain.ErrNoCommandToRedo),
		errors.Is(err, domain.ErrScheduleAlreadyExists),
		errors.Is(err, domain.ErrInvalidScheduleDescription),
		errors.Is(err, domain.ErrScheduleUnavailable),
		errors.Is(err, domain.ErrDuplicateMembershipID),
		errors.Is(err, domain.ErrUnknownAttribute),
		errors.Is(err, domain.ErrSystemClosed):
		return err
	default:
		h.logger.Error("command failed",
			slog.String("command", cmd.Name),
			slog.Int("line", cmd.Line),
			slog.Any("error", err),
		)
		return err
	}
}
