package command

import (
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/repository"
)

// Reset очищает реестр и пользовательские агенды
type Reset struct {
	roster    repository.RosterRepository
	schedules repository.ScheduleRegistry

	priorRoster    repository.RosterState
	priorSchedules []domain.PaymentSchedule
}

func NewReset(roster repository.RosterRepository, schedules repository.ScheduleRegistry) *Reset {
	return &Reset{roster: roster, schedules: schedules}
}

func (c *Reset) Name() string { return "zerarSistema" }

func (c *Reset) Apply() error {
	c.priorRoster = c.roster.Snapshot()
	c.priorSchedules = c.schedules.Custom()
	c.roster.Clear()
	c.schedules.Reset()
	return nil
}

func (c *Reset) Reverse() error {
	c.roster.Restore(c.priorRoster)
	c.schedules.Restore(c.priorSchedules)
	return nil
}

// CreateSchedule регистрирует пользовательскую агенду
type CreateSchedule struct {
	schedules repository.ScheduleRegistry
	schedule  domain.PaymentSchedule
}

func NewCreateSchedule(schedules repository.ScheduleRegistry, schedule domain.PaymentSchedule) *CreateSchedule {
	return &CreateSchedule{schedules: schedules, schedule: schedule}
}

func (c *CreateSchedule) Name() string { return "criarAgendaDePagamentos" }

func (c *CreateSchedule) Apply() error {
	return c.schedules.Register(c.schedule)
}

func (c *CreateSchedule) Reverse() error {
	c.schedules.Unregister(c.schedule.Description())
	return nil
}

// Irreversible - команда без отмены, например rodaFolha.
// apply получает redo=true при повторном выполнении.
type Irreversible struct {
	name    string
	apply   func(redo bool) error
	applied bool
}

func NewIrreversible(name string, apply func(redo bool) error) *Irreversible {
	return &Irreversible{name: name, apply: apply}
}

func (c *Irreversible) Name() string { return c.name }

func (c *Irreversible) Apply() error {
	if err := c.apply(c.applied); err != nil {
		return err
	}
	c.applied = true
	return nil
}

func (c *Irreversible) Reverse() error {
	return nil
}
