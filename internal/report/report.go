package report

import (
	"time"

	"github.com/wepayu/internal/domain"
)

// HourlyLine - строка раздела HORISTAS
type HourlyLine struct {
	ID         string
	Name       string
	Normal     int64
	Extra      int64
	Gross      domain.Money
	Deductions domain.Money
	Net        domain.Money
	Method     string
}

// SalariedLine - строка раздела ASSALARIADOS
type SalariedLine struct {
	ID         string
	Name       string
	Gross      domain.Money
	Deductions domain.Money
	Net        domain.Money
	Method     string
}

// CommissionedLine - строка раздела COMISSIONADOS
type CommissionedLine struct {
	ID         string
	Name       string
	Base       domain.Money
	Sales      domain.Money
	Commission domain.Money
	Gross      domain.Money
	Deductions domain.Money
	Net        domain.Money
	Method     string
}

// Payroll - результат расчёта folha на дату
type Payroll struct {
	Date         time.Time
	Hourly       []HourlyLine
	Salaried     []SalariedLine
	Commissioned []CommissionedLine
}

// HourlyTotals - итоги раздела HORISTAS
func (p *Payroll) HourlyTotals() HourlyLine {
	total := HourlyLine{}
	for _, l := range p.Hourly {
		total.Normal += l.Normal
		total.Extra += l.Extra
		total.Gross = total.Gross.Add(l.Gross)
		total.Deductions = total.Deductions.Add(l.Deductions)
		total.Net = total.Net.Add(l.Net)
	}
	return total
}

// SalariedTotals - итоги раздела ASSALARIADOS
func (p *Payroll) SalariedTotals() SalariedLine {
	total := SalariedLine{}
	for _, l := range p.Salaried {
		total.Gross = total.Gross.Add(l.Gross)
		total.Deductions = total.Deductions.Add(l.Deductions)
		total.Net = total.Net.Add(l.Net)
	}
	return total
}

// CommissionedTotals - итоги раздела COMISSIONADOS
func (p *Payroll) CommissionedTotals() CommissionedLine {
	total := CommissionedLine{}
	for _, l := range p.Commissioned {
		total.Base = total.Base.Add(l.Base)
		total.Sales = total.Sales.Add(l.Sales)
		total.Commission = total.Commission.Add(l.Commission)
		total.Gross = total.Gross.Add(l.Gross)
		total.Deductions = total.Deductions.Add(l.Deductions)
		total.Net = total.Net.Add(l.Net)
	}
	return total
}

// Total - сумма брутто по всем разделам
func (p *Payroll) Total() domain.Money {
	return p.HourlyTotals().Gross.
		Add(p.SalariedTotals().Gross).
		Add(p.CommissionedTotals().Gross)
}
