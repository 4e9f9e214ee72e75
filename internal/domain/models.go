package domain

import (
	"fmt"
	"slices"
	"time"
)

// Kind - вид сотрудника
type Kind string

const (
	KindHourly       Kind = "horista"
	KindSalaried     Kind = "assalariado"
	KindCommissioned Kind = "comissionado"
)

// ParseKind проверяет строковое представление вида
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindHourly, KindSalaried, KindCommissioned:
		return k, true
	}
	return "", false
}

// PaymentMethodKind - способ выплаты
type PaymentMethodKind string

const (
	PaymentInHands PaymentMethodKind = "emMaos"
	PaymentByMail  PaymentMethodKind = "correios"
	PaymentByBank  PaymentMethodKind = "banco"
)

// PaymentMethod - способ выплаты с банковскими реквизитами
type PaymentMethod struct {
	Kind    PaymentMethodKind
	Bank    string
	Agency  string
	Account string
}

// Describe возвращает текст колонки "Metodo" в folha
func (p PaymentMethod) Describe(address string) string {
	switch p.Kind {
	case PaymentByBank:
		return fmt.Sprintf("Banco do Brasil, Ag. %s CC %s", p.Agency, p.Account)
	case PaymentByMail:
		return "Correios, " + address
	default:
		return "Em maos"
	}
}

// TimeCard - карточка учёта рабочего времени
type TimeCard struct {
	Date  time.Time
	Hours Money
}

// Sale - результат продажи
type Sale struct {
	Date   time.Time
	Amount Money
}

// Employee - запись о сотруднике
type Employee struct {
	ID      string
	Name    string
	Address string
	Kind    Kind

	// Salary - месячный оклад, а для horista - ставка за час
	Salary         Money
	CommissionRate Money

	TimeCards []TimeCard
	Sales     []Sale

	PaymentMethod PaymentMethod
	// UnionID - идентификатор членства в профсоюзе, пустой если не состоит
	UnionID  string
	Schedule PaymentSchedule
}

// NewEmployee создаёт запись с агендой и способом выплаты по умолчанию
func NewEmployee(name, address string, kind Kind, salary, commission Money) *Employee {
	return &Employee{
		Name:           name,
		Address:        address,
		Kind:           kind,
		Salary:         salary,
		CommissionRate: commission,
		PaymentMethod:  PaymentMethod{Kind: PaymentInHands},
		Schedule:       DefaultSchedule(kind),
	}
}

// Clone возвращает глубокую копию записи
func (e *Employee) Clone() *Employee {
	c := *e
	c.TimeCards = slices.Clone(e.TimeCards)
	c.Sales = slices.Clone(e.Sales)
	return &c
}

// IsUnionized - состоит ли сотрудник в профсоюзе
func (e *Employee) IsUnionized() bool {
	return e.UnionID != ""
}

// AcceptsTimeCard - карточки принимаются только от horista
func (e *Employee) AcceptsTimeCard() bool {
	return e.Kind == KindHourly
}

// AcceptsSale - продажи принимаются только от comissionado
func (e *Employee) AcceptsSale() bool {
	return e.Kind == KindCommissioned
}

// ChangeKind строит новую запись другого вида, сохраняя id, членство и способ выплаты
func (e *Employee) ChangeKind(kind Kind, salary, commission Money) *Employee {
	next := NewEmployee(e.Name, e.Address, kind, salary, commission)
	next.ID = e.ID
	next.UnionID = e.UnionID
	next.PaymentMethod = e.PaymentMethod
	return next
}

// normalDayHours - часы в день, оплачиваемые по обычной ставке
var normalDayHours = MoneyFromInt(8)

// SplitHours делит часы карточки на обычные и сверхурочные
func SplitHours(hours Money) (normal, extra Money) {
	normal = hours.Min(normalDayHours)
	extra = hours.Sub(normalDayHours).Max(Zero)
	return normal, extra
}

// HoursBetween суммирует обычные и сверхурочные часы в интервале [from, to]
func (e *Employee) HoursBetween(from, to time.Time) (normal, extra Money) {
	normal, extra = Zero, Zero
	for _, c := range e.TimeCards {
		if !InRange(c.Date, from, to) {
			continue
		}
		n, x := SplitHours(c.Hours)
		normal = normal.Add(n)
		extra = extra.Add(x)
	}
	return normal, extra
}

// SalesBetween суммирует продажи в интервале [from, to]
func (e *Employee) SalesBetween(from, to time.Time) Money {
	total := Zero
	for _, s := range e.Sales {
		if InRange(s.Date, from, to) {
			total = total.Add(s.Amount)
		}
	}
	return total
}
