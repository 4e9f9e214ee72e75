package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wepayu/internal/command"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/report"
	"github.com/wepayu/internal/repository"
)

// PayrollService - расчёт folha и агенды оплаты
type PayrollService interface {
	Total(ctx context.Context, date time.Time) (domain.Money, error)
	Run(ctx context.Context, date time.Time, output string) (*report.Payroll, error)
	ExportCSV(ctx context.Context, date time.Time, output string) error
	CreateSchedule(ctx context.Context, description string) error
}

type payrollService struct {
	roster    repository.RosterRepository
	schedules repository.ScheduleRegistry
	commands  *command.Log
	logger    *slog.Logger
}

// NewPayrollService создаёт новый экземпляр сервиса
func NewPayrollService(
	roster repository.RosterRepository,
	schedules repository.ScheduleRegistry,
	commands *command.Log,
	logger *slog.Logger,
) PayrollService {
	return &payrollService{
		roster:    roster,
		schedules: schedules,
		commands:  commands,
		logger:    logger,
	}
}

func (s *payrollService) calculate(date time.Time) *Calculation {
	return Calculate(s.roster.List(), func(id string) (*domain.UnionMembership, bool) {
		m, err := s.roster.GetMembership(id)
		return m, err == nil
	}, date)
}

// Total - сумма брутто на дату, состояние не меняется
func (s *payrollService) Total(ctx context.Context, date time.Time) (domain.Money, error) {
	return s.calculate(date).Payroll.Total(), nil
}

// Run пишет folha в output и только после успешной записи фиксирует долги по взносам.
// Повтор после undo перезаписывает тот же отчёт без повторной фиксации.
func (s *payrollService) Run(ctx context.Context, date time.Time, output string) (*report.Payroll, error) {
	var payroll *report.Payroll

	cmd := command.NewIrreversible("rodaFolha", func(redo bool) error {
		if redo {
			return report.WriteFile(output, payroll)
		}

		calc := s.calculate(date)
		if err := report.WriteFile(output, calc.Payroll); err != nil {
			return err
		}
		payroll = calc.Payroll
		s.commitDebts(calc.Debts)
		return nil
	})
	if err := s.commands.Execute(cmd); err != nil {
		return nil, err
	}

	s.logger.Info("payroll written",
		slog.String("date", date.Format(domain.ReportDateLayout)),
		slog.String("output", output),
		slog.String("total", payroll.Total().String()),
	)
	return payroll, nil
}

func (s *payrollService) commitDebts(debts map[string]domain.Money) {
	for id, debt := range debts {
		m, err := s.roster.GetMembership(id)
		if err != nil {
			continue
		}
		m.Debt = debt
	}
}

// ExportCSV выгружает folha в CSV без фиксации долгов
func (s *payrollService) ExportCSV(ctx context.Context, date time.Time, output string) error {
	return report.WriteCSVFile(output, s.calculate(date).Payroll)
}

func (s *payrollService) CreateSchedule(ctx context.Context, description string) error {
	schedule, err := domain.ParseSchedule(description)
	if err != nil {
		return err
	}
	return s.commands.Execute(command.NewCreateSchedule(s.schedules, schedule))
}
