package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wepayu/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	d := date(t, "7/1/2005")
	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "7/1/2005", domain.FormatDate(d))

	for _, bad := range []string{"31/2/2005", "2005-01-07", "1/13/2005", ""} {
		_, err := domain.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, bad)
	}
}

func TestParseSchedule_Invalid(t *testing.T) {
	for _, desc := range []string{
		"", "semanal", "semanal 0", "semanal 8", "semanal 0 5", "semanal 53 1",
		"semanal 2 5 1", "mensal", "mensal 0", "mensal 29", "mensal $ 1", "quinzenal 5",
	} {
		_, err := domain.ParseSchedule(desc)
		assert.ErrorIs(t, err, domain.ErrInvalidScheduleDescription, desc)
	}
}

func TestSchedule_Weekly(t *testing.T) {
	s := domain.MustParseSchedule("semanal 5")

	start := date(t, "3/1/2005")
	fires := 0
	for i := range 35 {
		d := start.AddDate(0, 0, i)
		assert.Equal(t, d.Weekday() == time.Friday, s.FiresOn(d), d.Format(domain.ReportDateLayout))
		if s.FiresOn(d) {
			fires++
		}
	}
	assert.Equal(t, 5, fires)

	assert.True(t, s.FiresOn(date(t, "7/1/2005")))
	assert.False(t, s.FiresOn(date(t, "8/1/2005")))
	assert.Equal(t, date(t, "1/1/2005"), s.PeriodStart(date(t, "7/1/2005")))
	assert.Equal(t, 7, s.PeriodDays(date(t, "7/1/2005")))
	assert.False(t, s.IsMonthly())
}

func TestSchedule_EveryNWeeks(t *testing.T) {
	s := domain.MustParseSchedule("semanal 2 5")

	assert.False(t, s.FiresOn(date(t, "7/1/2005")))
	assert.True(t, s.FiresOn(date(t, "14/1/2005")))
	assert.False(t, s.FiresOn(date(t, "21/1/2005")))
	assert.True(t, s.FiresOn(date(t, "28/1/2005")))
	assert.Equal(t, date(t, "15/1/2005"), s.PeriodStart(date(t, "28/1/2005")))
	assert.Equal(t, 14, s.PeriodDays(date(t, "28/1/2005")))
	assert.Equal(t, 2, s.Weeks())
}

func TestSchedule_YearlyAnchor(t *testing.T) {
	s := domain.MustParseSchedule("semanal 52 1")

	assert.True(t, s.FiresOn(date(t, "27/12/2004")))
	assert.False(t, s.FiresOn(date(t, "3/1/2005")))
	assert.True(t, s.FiresOn(date(t, "26/12/2005")))
}

func TestSchedule_Monthly(t *testing.T) {
	last := domain.MustParseSchedule("mensal $")
	assert.True(t, last.FiresOn(date(t, "31/1/2005")))
	assert.True(t, last.FiresOn(date(t, "28/2/2005")))
	assert.False(t, last.FiresOn(date(t, "30/1/2005")))
	assert.Equal(t, date(t, "1/2/2005"), last.PeriodStart(date(t, "28/2/2005")))
	assert.True(t, last.IsMonthly())

	day := domain.MustParseSchedule("mensal 15")
	assert.True(t, day.FiresOn(date(t, "15/2/2005")))
	assert.False(t, day.FiresOn(date(t, "16/2/2005")))
	assert.Equal(t, date(t, "16/1/2005"), day.PeriodStart(date(t, "15/2/2005")))
	assert.Equal(t, 31, day.PeriodDays(date(t, "15/2/2005")))
}

func TestDefaultSchedule(t *testing.T) {
	assert.Equal(t, "semanal 5", domain.DefaultSchedule(domain.KindHourly).Description())
	assert.Equal(t, "mensal $", domain.DefaultSchedule(domain.KindSalaried).Description())
	assert.Equal(t, "semanal 2 5", domain.DefaultSchedule(domain.KindCommissioned).Description())
	assert.Len(t, domain.PredefinedSchedules(), 3)
}
