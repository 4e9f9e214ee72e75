package service

import (
	"context"
	"strconv"

	"github.com/wepayu/internal/command"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/dto"
	"github.com/wepayu/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetAttribute(ctx context.Context, id, attribute string) (string, error)
	FindByName(ctx context.Context, req *dto.FindByNameRequest) (string, error)
	Remove(ctx context.Context, id string) error
	Alter(ctx context.Context, id string, req dto.Alteration) error
}

type employeeService struct {
	roster    repository.RosterRepository
	schedules repository.ScheduleRegistry
	commands  *command.Log
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(roster repository.RosterRepository, schedules repository.ScheduleRegistry, commands *command.Log) EmployeeService {
	return &employeeService{
		roster:    roster,
		schedules: schedules,
		commands:  commands,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (string, error) {
	kind, err := resolveKind(req.Kind, req.Commission != nil)
	if err != nil {
		return "", err
	}

	salary := domain.MustParseMoney(req.Salary)
	commission := domain.Zero
	if req.Commission != nil {
		commission = domain.MustParseMoney(*req.Commission)
	}

	cmd := command.NewCreateEmployee(s.roster, domain.NewEmployee(req.Name, req.Address, kind, salary, commission))
	if err := s.commands.Execute(cmd); err != nil {
		return "", err
	}
	return cmd.ID(), nil
}

// resolveKind проверяет вид: комиссия передаётся только для comissionado
func resolveKind(value string, withCommission bool) (domain.Kind, error) {
	kind, ok := domain.ParseKind(value)
	if !ok {
		return "", dto.ErrKindInvalid
	}
	if (kind == domain.KindCommissioned) != withCommission {
		return "", dto.ErrKindNotApplicable
	}
	return kind, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.roster.GetByID(id)
}

func (s *employeeService) GetAttribute(ctx context.Context, id, attribute string) (string, error) {
	emp, err := s.roster.GetByID(id)
	if err != nil {
		return "", err
	}

	switch attribute {
	case "nome":
		return emp.Name, nil
	case "endereco":
		return emp.Address, nil
	case "tipo":
		return string(emp.Kind), nil
	case "salario":
		return emp.Salary.String(), nil
	case "comissao":
		if emp.Kind != domain.KindCommissioned {
			return "", domain.ErrNotCommissioned
		}
		return emp.CommissionRate.String(), nil
	case "sindicalizado":
		return strconv.FormatBool(emp.IsUnionized()), nil
	case "idSindicato", "taxaSindical":
		if !emp.IsUnionized() {
			return "", domain.ErrNotUnionized
		}
		if attribute == "idSindicato" {
			return emp.UnionID, nil
		}
		m, err := s.roster.GetMembership(emp.UnionID)
		if err != nil {
			return "", err
		}
		return m.DailyDues.String(), nil
	case "metodoPagamento":
		return string(emp.PaymentMethod.Kind), nil
	case "banco", "agencia", "contaCorrente":
		if emp.PaymentMethod.Kind != domain.PaymentByBank {
			return "", domain.ErrNotPaidByBank
		}
		switch attribute {
		case "banco":
			return emp.PaymentMethod.Bank, nil
		case "agencia":
			return emp.PaymentMethod.Agency, nil
		}
		return emp.PaymentMethod.Account, nil
	case "agendaPagamento":
		return emp.Schedule.Description(), nil
	}
	return "", domain.ErrAttributeDoesNotExist
}

func (s *employeeService) FindByName(ctx context.Context, req *dto.FindByNameRequest) (string, error) {
	index, err := strconv.Atoi(req.Index)
	if err != nil {
		return "", domain.ErrNoEmployeeWithName
	}

	found := s.roster.FindByName(req.Name)
	if index < 1 || index > len(found) {
		return "", domain.ErrNoEmployeeWithName
	}
	return found[index-1].ID, nil
}

func (s *employeeService) Remove(ctx context.Context, id string) error {
	return s.commands.Execute(command.NewRemoveEmployee(s.roster, id))
}

func (s *employeeService) Alter(ctx context.Context, id string, req dto.Alteration) error {
	alter, err := s.alteration(req)
	if err != nil {
		return err
	}
	return s.commands.Execute(command.NewAlterEmployee(s.roster, id, req.Attribute(), alter))
}

// alteration строит изменение записи по запросу; значения уже проверены валидатором
func (s *employeeService) alteration(req dto.Alteration) (command.Alteration, error) {
	switch r := req.(type) {
	case *dto.AlterNameRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.Name = r.Name
			return emp, nil, nil
		}, nil

	case *dto.AlterAddressRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.Address = r.Address
			return emp, nil, nil
		}, nil

	case *dto.AlterKindRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			kind, err := resolveKind(r.Kind, r.Commission != nil)
			if err != nil {
				return nil, nil, err
			}
			salary := emp.Salary
			if r.Salary != nil {
				salary = domain.MustParseMoney(*r.Salary)
			}
			commission := domain.Zero
			if r.Commission != nil {
				commission = domain.MustParseMoney(*r.Commission)
			}
			return emp.ChangeKind(kind, salary, commission), nil, nil
		}, nil

	case *dto.AlterSalaryRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.Salary = domain.MustParseMoney(r.Salary)
			return emp, nil, nil
		}, nil

	case *dto.AlterCommissionRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			if emp.Kind != domain.KindCommissioned {
				return nil, nil, domain.ErrNotCommissioned
			}
			emp.CommissionRate = domain.MustParseMoney(r.Commission)
			return emp, nil, nil
		}, nil

	case *dto.AlterUnionRequest:
		// sindicalizado=false; вступление приходит как EnrollRequest
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.UnionID = ""
			return emp, nil, nil
		}, nil

	case *dto.EnrollRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			m := domain.NewUnionMembership(r.UnionID, domain.MustParseMoney(r.UnionDues))
			emp.UnionID = m.ID
			return emp, m, nil
		}, nil

	case *dto.AlterPaymentMethodRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.PaymentMethod = domain.PaymentMethod{Kind: domain.PaymentMethodKind(r.Method)}
			return emp, nil, nil
		}, nil

	case *dto.BankAccountRequest:
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.PaymentMethod = domain.PaymentMethod{
				Kind:    domain.PaymentByBank,
				Bank:    r.Bank,
				Agency:  r.Agency,
				Account: r.Account,
			}
			return emp, nil, nil
		}, nil

	case *dto.AlterScheduleRequest:
		schedule, ok := s.schedules.Get(r.Schedule)
		if !ok {
			return nil, domain.ErrScheduleNotAvailable
		}
		return func(emp *domain.Employee) (*domain.Employee, *domain.UnionMembership, error) {
			emp.Schedule = schedule
			return emp, nil, nil
		}, nil
	}

	return nil, domain.ErrAttributeDoesNotExist
}
