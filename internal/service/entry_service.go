package service

import (
	"context"
	"time"

	"github.com/wepayu/internal/command"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/dto"
	"github.com/wepayu/internal/repository"
)

// EntryService - лançamentos (карточки, продажи, сборы) и запросы по ним
type EntryService interface {
	PostTimeCard(ctx context.Context, req *dto.TimeCardRequest) error
	PostSale(ctx context.Context, req *dto.SaleRequest) error
	PostServiceCharge(ctx context.Context, req *dto.ServiceChargeRequest) error

	NormalHours(ctx context.Context, q *dto.RangeQuery) (domain.Money, error)
	ExtraHours(ctx context.Context, q *dto.RangeQuery) (domain.Money, error)
	Sales(ctx context.Context, q *dto.RangeQuery) (domain.Money, error)
	ServiceCharges(ctx context.Context, q *dto.RangeQuery) (domain.Money, error)
}

type entryService struct {
	roster   repository.RosterRepository
	commands *command.Log
}

// NewEntryService создаёт новый экземпляр сервиса
func NewEntryService(roster repository.RosterRepository, commands *command.Log) EntryService {
	return &entryService{roster: roster, commands: commands}
}

func (s *entryService) PostTimeCard(ctx context.Context, req *dto.TimeCardRequest) error {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return err
	}
	card := domain.TimeCard{Date: date, Hours: domain.MustParseMoney(req.Hours)}
	return s.commands.Execute(command.NewPostTimeCard(s.roster, req.EmployeeID, card))
}

func (s *entryService) PostSale(ctx context.Context, req *dto.SaleRequest) error {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return err
	}
	sale := domain.Sale{Date: date, Amount: domain.MustParseMoney(req.Amount)}
	return s.commands.Execute(command.NewPostSale(s.roster, req.EmployeeID, sale))
}

func (s *entryService) PostServiceCharge(ctx context.Context, req *dto.ServiceChargeRequest) error {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return err
	}
	charge := domain.ServiceCharge{Date: date, Amount: domain.MustParseMoney(req.Amount)}
	return s.commands.Execute(command.NewPostServiceCharge(s.roster, req.MemberID, charge))
}

func (s *entryService) NormalHours(ctx context.Context, q *dto.RangeQuery) (domain.Money, error) {
	emp, from, to, err := s.rangeOf(q, domain.KindHourly)
	if err != nil {
		return domain.Zero, err
	}
	normal, _ := emp.HoursBetween(from, to)
	return normal, nil
}

func (s *entryService) ExtraHours(ctx context.Context, q *dto.RangeQuery) (domain.Money, error) {
	emp, from, to, err := s.rangeOf(q, domain.KindHourly)
	if err != nil {
		return domain.Zero, err
	}
	_, extra := emp.HoursBetween(from, to)
	return extra, nil
}

func (s *entryService) Sales(ctx context.Context, q *dto.RangeQuery) (domain.Money, error) {
	emp, from, to, err := s.rangeOf(q, domain.KindCommissioned)
	if err != nil {
		return domain.Zero, err
	}
	return emp.SalesBetween(from, to), nil
}

func (s *entryService) ServiceCharges(ctx context.Context, q *dto.RangeQuery) (domain.Money, error) {
	emp, from, to, err := s.rangeOf(q, "")
	if err != nil {
		return domain.Zero, err
	}
	if !emp.IsUnionized() {
		return domain.Zero, domain.ErrNotUnionized
	}
	m, err := s.roster.GetMembership(emp.UnionID)
	if err != nil {
		return domain.Zero, err
	}
	return m.ChargesBetween(from, to), nil
}

// rangeOf находит сотрудника, проверяет его вид (если задан) и разбирает интервал [from, to]
func (s *entryService) rangeOf(q *dto.RangeQuery, kind domain.Kind) (*domain.Employee, time.Time, time.Time, error) {
	var from, to time.Time

	emp, err := s.roster.GetByID(q.EmployeeID)
	if err != nil {
		return nil, from, to, err
	}
	switch {
	case kind == domain.KindHourly && emp.Kind != kind:
		return nil, from, to, domain.ErrNotHourly
	case kind == domain.KindCommissioned && emp.Kind != kind:
		return nil, from, to, domain.ErrNotCommissioned
	}

	if from, err = domain.ParseDate(q.StartDate); err != nil {
		return nil, from, to, domain.ErrStartDateInvalid
	}
	if to, err = domain.ParseDate(q.EndDate); err != nil {
		return nil, from, to, domain.ErrEndDateInvalid
	}
	if from.After(to) {
		return nil, from, to, domain.ErrDateRangeInverted
	}
	return emp, from, to, nil
}
