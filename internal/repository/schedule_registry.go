package repository

import (
	"slices"

	"github.com/wepayu/internal/domain"
)

// ScheduleRegistry хранит доступные агенды оплаты
type ScheduleRegistry interface {
	Get(description string) (domain.PaymentSchedule, bool)
	Register(s domain.PaymentSchedule) error
	Unregister(description string)
	Custom() []domain.PaymentSchedule
	Restore(custom []domain.PaymentSchedule)
	Reset()
}

type scheduleRegistry struct {
	schedules map[string]domain.PaymentSchedule
	// custom - пользовательские агенды в порядке регистрации
	custom []string
}

// NewScheduleRegistry создаёт реестр с предопределёнными агендами
func NewScheduleRegistry() ScheduleRegistry {
	r := &scheduleRegistry{}
	r.Reset()
	return r
}

func (r *scheduleRegistry) Get(description string) (domain.PaymentSchedule, bool) {
	s, ok := r.schedules[description]
	return s, ok
}

func (r *scheduleRegistry) Register(s domain.PaymentSchedule) error {
	if _, ok := r.schedules[s.Description()]; ok {
		return domain.ErrScheduleExists
	}
	r.schedules[s.Description()] = s
	r.custom = append(r.custom, s.Description())
	return nil
}

// Unregister удаляет только пользовательскую агенду
func (r *scheduleRegistry) Unregister(description string) {
	i := slices.Index(r.custom, description)
	if i < 0 {
		return
	}
	r.custom = slices.Delete(r.custom, i, i+1)
	delete(r.schedules, description)
}

func (r *scheduleRegistry) Custom() []domain.PaymentSchedule {
	result := make([]domain.PaymentSchedule, 0, len(r.custom))
	for _, d := range r.custom {
		result = append(result, r.schedules[d])
	}
	return result
}

// Restore сбрасывает реестр и регистрирует переданные агенды
func (r *scheduleRegistry) Restore(custom []domain.PaymentSchedule) {
	r.Reset()
	for _, s := range custom {
		if _, ok := r.schedules[s.Description()]; ok {
			continue
		}
		r.schedules[s.Description()] = s
		r.custom = append(r.custom, s.Description())
	}
}

func (r *scheduleRegistry) Reset() {
	r.schedules = make(map[string]domain.PaymentSchedule)
	r.custom = nil
	for _, s := range domain.PredefinedSchedules() {
		r.schedules[s.Description()] = s
	}
}
