package repository

import (
	"github.com/shopspring/decimal"
)

// employeeRow - строка таблицы employees
type employeeRow struct {
	ID             string          `gorm:"primaryKey;column:id"`
	Name           string          `gorm:"column:name;not null"`
	Address        string          `gorm:"column:address;not null"`
	Kind           string          `gorm:"column:kind;not null"`
	Salary         decimal.Decimal `gorm:"column:salary;type:text;not null"`
	CommissionRate decimal.Decimal `gorm:"column:commission_rate;type:text;not null"`
	PaymentMethod  string          `gorm:"column:payment_method;not null"`
	Bank           string          `gorm:"column:bank"`
	Agency         string          `gorm:"column:agency"`
	Account        string          `gorm:"column:account"`
	UnionID        string          `gorm:"column:union_id"`
	Schedule       string          `gorm:"column:schedule;not null"`
}

// TableName задаёт имя таблицы для GORM
func (employeeRow) TableName() string {
	return "employees"
}

// timeCardRow - строка таблицы time_cards
type timeCardRow struct {
	EmployeeID string          `gorm:"primaryKey;column:employee_id"`
	Seq        int             `gorm:"primaryKey;column:seq;autoIncrement:false"`
	WorkDate   string          `gorm:"column:work_date;not null"`
	Hours      decimal.Decimal `gorm:"column:hours;type:text;not null"`
}

// TableName задаёт имя таблицы для GORM
func (timeCardRow) TableName() string {
	return "time_cards"
}

// saleRow - строка таблицы sales
type saleRow struct {
	EmployeeID string          `gorm:"primaryKey;column:employee_id"`
	Seq        int             `gorm:"primaryKey;column:seq;autoIncrement:false"`
	SaleDate   string          `gorm:"column:sale_date;not null"`
	Amount     decimal.Decimal `gorm:"column:amount;type:text;not null"`
}

// TableName задаёт имя таблицы для GORM
func (saleRow) TableName() string {
	return "sales"
}

// membershipRow - строка таблицы union_memberships
type membershipRow struct {
	ID        string          `gorm:"primaryKey;column:id"`
	DailyDues decimal.Decimal `gorm:"column:daily_dues;type:text;not null"`
	Debt      decimal.Decimal `gorm:"column:debt;type:text;not null"`
}

// TableName задаёт имя таблицы для GORM
func (membershipRow) TableName() string {
	return "union_memberships"
}

// serviceChargeRow - строка таблицы service_charges
type serviceChargeRow struct {
	MembershipID string          `gorm:"primaryKey;column:membership_id"`
	Seq          int             `gorm:"primaryKey;column:seq;autoIncrement:false"`
	ChargeDate   string          `gorm:"column:charge_date;not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:text;not null"`
}

// TableName задаёт имя таблицы для GORM
func (serviceChargeRow) TableName() string {
	return "service_charges"
}

// scheduleRow - пользовательская агенда
type scheduleRow struct {
	Description string `gorm:"primaryKey;column:description"`
	Seq         int    `gorm:"column:seq;not null"`
}

// TableName задаёт имя таблицы для GORM
func (scheduleRow) TableName() string {
	return "payment_schedules"
}

// systemStateRow - счётчик идентификаторов
type systemStateRow struct {
	ID     int   `gorm:"primaryKey;column:id;autoIncrement:false"`
	LastID int64 `gorm:"column:last_id;not null"`
}

// TableName задаёт имя таблицы для GORM
func (systemStateRow) TableName() string {
	return "system_state"
}
