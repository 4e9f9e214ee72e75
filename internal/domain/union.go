package domain

import (
	"slices"
	"time"
)

// ServiceCharge - дополнительный профсоюзный сбор на дату
type ServiceCharge struct {
	Date   time.Time
	Amount Money
}

// UnionMembership - членство в профсоюзе
type UnionMembership struct {
	ID        string
	DailyDues Money
	// Debt - накопленный долг по взносам, меняется только при расчёте folha
	Debt    Money
	Charges []ServiceCharge
}

// NewUnionMembership создаёт членство с нулевым долгом
func NewUnionMembership(id string, dailyDues Money) *UnionMembership {
	return &UnionMembership{ID: id, DailyDues: dailyDues}
}

// Clone возвращает глубокую копию
func (u *UnionMembership) Clone() *UnionMembership {
	c := *u
	c.Charges = slices.Clone(u.Charges)
	return &c
}

// ChargesBetween суммирует сборы в интервале [from, to]
func (u *UnionMembership) ChargesBetween(from, to time.Time) Money {
	total := Zero
	for _, c := range u.Charges {
		if InRange(c.Date, from, to) {
			total = total.Add(c.Amount)
		}
	}
	return total
}
