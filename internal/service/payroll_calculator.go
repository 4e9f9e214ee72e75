package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/report"
)

var overtimeFactor = decimal.RequireFromString("1.5")

// MembershipLookup возвращает членство по id
type MembershipLookup func(id string) (*domain.UnionMembership, bool)

// Calculation - folha на дату и новые долги по взносам, которые ещё не применены
type Calculation struct {
	Payroll *report.Payroll
	// Debts - новый долг по id членства
	Debts map[string]domain.Money
}

// Calculate считает folha для сотрудников, чья агенда срабатывает в date.
// Состояние не меняется: долги возвращаются в Calculation.Debts.
func Calculate(employees []*domain.Employee, memberships MembershipLookup, date time.Time) *Calculation {
	calc := &Calculation{
		Payroll: &report.Payroll{Date: date},
		Debts:   make(map[string]domain.Money),
	}

	for _, emp := range employees {
		if !emp.Schedule.FiresOn(date) {
			continue
		}

		var membership *domain.UnionMembership
		if emp.IsUnionized() {
			if m, ok := memberships(emp.UnionID); ok {
				membership = m
			}
		}

		from := emp.Schedule.PeriodStart(date)
		method := emp.PaymentMethod.Describe(emp.Address)

		switch emp.Kind {
		case domain.KindHourly:
			gross := HourlyGross(emp, from, date)
			deductions := domain.Zero
			if membership != nil {
				var debt domain.Money
				deductions, debt = hourlyDeductions(membership, gross, date)
				calc.Debts[membership.ID] = debt
			}
			normal, extra := reportHours(emp, from, date)
			calc.Payroll.Hourly = append(calc.Payroll.Hourly, report.HourlyLine{
				ID:         emp.ID,
				Name:       emp.Name,
				Normal:     normal,
				Extra:      extra,
				Gross:      gross,
				Deductions: deductions,
				Net:        net(gross, deductions),
				Method:     method,
			})

		case domain.KindSalaried:
			gross := baseSalary(emp)
			deductions := fixedDeductions(membership, from, date)
			calc.Payroll.Salaried = append(calc.Payroll.Salaried, report.SalariedLine{
				ID:         emp.ID,
				Name:       emp.Name,
				Gross:      gross,
				Deductions: deductions,
				Net:        net(gross, deductions),
				Method:     method,
			})

		case domain.KindCommissioned:
			base := baseSalary(emp)
			sales := emp.SalesBetween(from, date)
			commission := emp.CommissionRate.Mul(sales)
			gross := base.Add(commission)
			deductions := fixedDeductions(membership, from, date)
			calc.Payroll.Commissioned = append(calc.Payroll.Commissioned, report.CommissionedLine{
				ID:         emp.ID,
				Name:       emp.Name,
				Base:       base,
				Sales:      sales,
				Commission: commission,
				Gross:      gross,
				Deductions: deductions,
				Net:        net(gross, deductions),
				Method:     method,
			})
		}
	}

	slices.SortFunc(calc.Payroll.Hourly, func(a, b report.HourlyLine) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})
	slices.SortFunc(calc.Payroll.Salaried, func(a, b report.SalariedLine) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})
	slices.SortFunc(calc.Payroll.Commissioned, func(a, b report.CommissionedLine) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})

	return calc
}

// HourlyGross - trunc(обычные*ставка + сверхурочные*ставка*1,5) за период [from, to]
func HourlyGross(emp *domain.Employee, from, to time.Time) domain.Money {
	normal, extra := emp.HoursBetween(from, to)
	rate := emp.Salary.Decimal()
	amount := normal.Decimal().Mul(rate).
		Add(extra.Decimal().Mul(rate).Mul(overtimeFactor))
	return domain.NewMoney(amount)
}

// baseSalary - оклад за период агенды сотрудника
func baseSalary(emp *domain.Employee) domain.Money {
	if emp.Schedule.IsMonthly() {
		return emp.Salary
	}
	return emp.Salary.MulDiv(int64(12*emp.Schedule.Weeks()), 52)
}

// dues - взносы за период [from, to]
func dues(m *domain.UnionMembership, from, to time.Time) domain.Money {
	return m.DailyDues.MulInt(int64(domain.DaysBetween(from, to) + 1))
}

func fixedDeductions(m *domain.UnionMembership, from, to time.Time) domain.Money {
	if m == nil {
		return domain.Zero
	}
	return dues(m, from, to).Add(m.ChargesBetween(from, to))
}

// hourlyDuesDays - horista накапливает взносы за 7 дней на каждую выплату при любой агенде
const hourlyDuesDays = 7

// hourlyDeductions возвращает удержание и новый долг horista
func hourlyDeductions(m *domain.UnionMembership, gross domain.Money, date time.Time) (domain.Money, domain.Money) {
	from := date.AddDate(0, 0, -hourlyDuesDays+1)
	debt := m.Debt.Add(dues(m, from, date))
	if !gross.IsPositive() {
		return domain.Zero, debt
	}

	deductions := debt.Add(m.ChargesBetween(from, date))
	if deductions.Cmp(gross) > 0 {
		return gross, deductions.Sub(gross)
	}
	return deductions, domain.Zero
}

// reportHours - целые часы для отчёта, по каждой карточке отдельно
func reportHours(emp *domain.Employee, from, to time.Time) (normal, extra int64) {
	for _, c := range emp.TimeCards {
		if !domain.InRange(c.Date, from, to) {
			continue
		}
		h := c.Hours.IntPart()
		normal += min(h, 8)
		extra += max(h-8, 0)
	}
	return normal, extra
}

func net(gross, deductions domain.Money) domain.Money {
	return gross.Sub(deductions).Max(domain.Zero)
}

// compareIDs сравнивает числовые id по значению
func compareIDs(a, b string) int {
	return cmp.Or(cmp.Compare(len(a), len(b)), cmp.Compare(a, b))
}
