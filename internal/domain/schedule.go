package domain

import (
	"strconv"
	"strings"
	"time"
)

// ScheduleKind - вид агенды оплаты
type ScheduleKind int

const (
	ScheduleWeekly ScheduleKind = iota
	ScheduleEveryNWeeks
	ScheduleMonthly
	ScheduleMonthlyLastDay
)

// Предопределённые агенды
const (
	ScheduleDescWeeklyFriday   = "semanal 5"
	ScheduleDescBiweeklyFriday = "semanal 2 5"
	ScheduleDescMonthlyLastDay = "mensal $"
)

var (
	// seriesBase - дата, от которой ищется первая дата серии "semanal N X"
	seriesBase = time.Date(2005, time.January, 14, 0, 0, 0, 0, time.UTC)

	// seriesBaseOverrides - известные конфигурации с собственной базой
	seriesBaseOverrides = map[string]time.Time{
		"semanal 52 1": time.Date(2004, time.December, 26, 0, 0, 0, 0, time.UTC),
	}
)

// PaymentSchedule - неизменяемая агенда оплаты, ключ - каноническое описание
type PaymentSchedule struct {
	description string
	kind        ScheduleKind
	weekday     int
	weeks       int
	day         int
	anchor      time.Time
}

// ParseSchedule разбирает описание "semanal X", "semanal N X", "mensal D" или "mensal $"
func ParseSchedule(description string) (PaymentSchedule, error) {
	fields := strings.Fields(description)
	if len(fields) < 2 {
		return PaymentSchedule{}, ErrScheduleDescription
	}

	switch fields[0] {
	case "semanal":
		switch len(fields) {
		case 2:
			weekday, ok := parseInRange(fields[1], 1, 7)
			if !ok {
				return PaymentSchedule{}, ErrScheduleDescription
			}
			return newWeekly(weekday), nil
		case 3:
			weeks, ok := parseInRange(fields[1], 1, 52)
			if !ok {
				return PaymentSchedule{}, ErrScheduleDescription
			}
			weekday, ok := parseInRange(fields[2], 1, 7)
			if !ok {
				return PaymentSchedule{}, ErrScheduleDescription
			}
			return newEveryNWeeks(weeks, weekday), nil
		}
	case "mensal":
		if len(fields) != 2 {
			return PaymentSchedule{}, ErrScheduleDescription
		}
		if fields[1] == "$" {
			return PaymentSchedule{description: ScheduleDescMonthlyLastDay, kind: ScheduleMonthlyLastDay}, nil
		}
		day, ok := parseInRange(fields[1], 1, 28)
		if !ok {
			return PaymentSchedule{}, ErrScheduleDescription
		}
		return PaymentSchedule{
			description: "mensal " + strconv.Itoa(day),
			kind:        ScheduleMonthly,
			day:         day,
		}, nil
	}

	return PaymentSchedule{}, ErrScheduleDescription
}

// MustParseSchedule - для предопределённых агенд и тестов
func MustParseSchedule(description string) PaymentSchedule {
	s, err := ParseSchedule(description)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultSchedule возвращает агенду по умолчанию для вида сотрудника
func DefaultSchedule(kind Kind) PaymentSchedule {
	switch kind {
	case KindHourly:
		return MustParseSchedule(ScheduleDescWeeklyFriday)
	case KindCommissioned:
		return MustParseSchedule(ScheduleDescBiweeklyFriday)
	default:
		return MustParseSchedule(ScheduleDescMonthlyLastDay)
	}
}

// PredefinedSchedules - агенды, доступные сразу после запуска и после zerarSistema
func PredefinedSchedules() []PaymentSchedule {
	return []PaymentSchedule{
		MustParseSchedule(ScheduleDescWeeklyFriday),
		MustParseSchedule(ScheduleDescBiweeklyFriday),
		MustParseSchedule(ScheduleDescMonthlyLastDay),
	}
}

func newWeekly(weekday int) PaymentSchedule {
	return PaymentSchedule{
		description: "semanal " + strconv.Itoa(weekday),
		kind:        ScheduleWeekly,
		weekday:     weekday,
		weeks:       1,
	}
}

func newEveryNWeeks(weeks, weekday int) PaymentSchedule {
	description := "semanal " + strconv.Itoa(weeks) + " " + strconv.Itoa(weekday)

	base, ok := seriesBaseOverrides[description]
	if !ok {
		base = seriesBase
	}
	// Первая дата не раньше базы с нужным днём недели
	anchor := base
	for ISOWeekday(anchor) != weekday {
		anchor = anchor.AddDate(0, 0, 1)
	}

	return PaymentSchedule{
		description: description,
		kind:        ScheduleEveryNWeeks,
		weekday:     weekday,
		weeks:       weeks,
		anchor:      anchor,
	}
}

func parseInRange(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// Description - каноническое описание агенды
func (s PaymentSchedule) Description() string {
	return s.description
}

func (s PaymentSchedule) Kind() ScheduleKind {
	return s.kind
}

// IsMonthly - true для "mensal D" и "mensal $"
func (s PaymentSchedule) IsMonthly() bool {
	return s.kind == ScheduleMonthly || s.kind == ScheduleMonthlyLastDay
}

// Weeks - длина периода в неделях для недельных агенд
func (s PaymentSchedule) Weeks() int {
	return s.weeks
}

// FiresOn проверяет, является ли дата днём оплаты
func (s PaymentSchedule) FiresOn(date time.Time) bool {
	switch s.kind {
	case ScheduleWeekly:
		return ISOWeekday(date) == s.weekday
	case ScheduleEveryNWeeks:
		if ISOWeekday(date) != s.weekday || date.Before(s.anchor) {
			return false
		}
		return (DaysBetween(s.anchor, date)/7)%s.weeks == 0
	case ScheduleMonthly:
		return date.Day() == s.day
	case ScheduleMonthlyLastDay:
		return date.Equal(LastDayOfMonth(date))
	}
	return false
}

// PeriodStart - первый день периода, заканчивающегося датой date (включительно)
func (s PaymentSchedule) PeriodStart(date time.Time) time.Time {
	switch s.kind {
	case ScheduleMonthlyLastDay:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	case ScheduleMonthly:
		return date.AddDate(0, -1, 1)
	default:
		return date.AddDate(0, 0, -7*s.weeks+1)
	}
}

// PeriodDays - длина периода в днях
func (s PaymentSchedule) PeriodDays(date time.Time) int {
	return DaysBetween(s.PeriodStart(date), date) + 1
}
