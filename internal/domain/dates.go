package domain

import "time"

const (
	// DateLayout - формат дат во входных данных (d/M/yyyy)
	DateLayout = "2/1/2006"
	// ReportDateLayout - формат даты в заголовке folha
	ReportDateLayout = "2006-01-02"
)

// ParseDate разбирает дату d/M/yyyy, несуществующие даты отклоняются
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrDateInvalid
	}
	return t, nil
}

// FormatDate форматирует дату обратно в d/M/yyyy
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween - количество календарных дней от a до b
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// InRange проверяет a <= t <= b
func InRange(t, a, b time.Time) bool {
	return !t.Before(a) && !t.After(b)
}

// LastDayOfMonth возвращает последний день месяца даты t
func LastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// ISOWeekday - день недели 1 (понедельник) .. 7 (воскресенье)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
