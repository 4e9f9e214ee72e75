package dto

// Command - одна команда скрипта: имя и именованные аргументы
type Command struct {
	Name string
	Args map[string]string
	Line int
}

// Arg возвращает аргумент или пустую строку
func (c *Command) Arg(name string) string {
	return c.Args[name]
}

// OptionalArg возвращает nil, если аргумент не передан
func (c *Command) OptionalArg(name string) *string {
	if v, ok := c.Args[name]; ok {
		return &v
	}
	return nil
}

// EmployeeRef - ссылка на сотрудника по идентификатору
type EmployeeRef struct {
	EmployeeID string `validate:"notblank"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name       string  `validate:"notblank"`
	Address    string  `validate:"notblank"`
	Kind       string  `validate:"notblank"`
	Salary     string  `validate:"notblank,money,nonneg"`
	Commission *string `validate:"omitnil,notblank,money,nonneg"`
}

// EmployeeAttributeRequest - запрос значения атрибута
type EmployeeAttributeRequest struct {
	EmployeeID string `validate:"notblank"`
	Attribute  string `validate:"notblank"`
}

// FindByNameRequest - поиск сотрудника по имени, Index начинается с 1
type FindByNameRequest struct {
	Name  string `validate:"notblank"`
	Index string `validate:"number"`
}

// Alteration - запрос изменения одного атрибута
type Alteration interface {
	Attribute() string
}

type AlterNameRequest struct {
	Name string `validate:"notblank"`
}

func (*AlterNameRequest) Attribute() string { return "nome" }

type AlterAddressRequest struct {
	Address string `validate:"notblank"`
}

func (*AlterAddressRequest) Attribute() string { return "endereco" }

// AlterKindRequest - смена вида; без Salary сохраняется текущий оклад
type AlterKindRequest struct {
	Kind       string
	Salary     *string `validate:"omitnil,notblank,money,nonneg"`
	Commission *string `validate:"omitnil,notblank,money,nonneg"`
}

func (*AlterKindRequest) Attribute() string { return "tipo" }

type AlterSalaryRequest struct {
	Salary string `validate:"notblank,money,nonneg"`
}

func (*AlterSalaryRequest) Attribute() string { return "salario" }

type AlterCommissionRequest struct {
	Commission string `validate:"notblank,money,nonneg"`
}

func (*AlterCommissionRequest) Attribute() string { return "comissao" }

// AlterUnionRequest - вступление в профсоюз или выход из него
type AlterUnionRequest struct {
	Unionized string `validate:"oneof=true false"`
}

func (*AlterUnionRequest) Attribute() string { return "sindicalizado" }

// EnrollRequest - данные членства при sindicalizado=true
type EnrollRequest struct {
	UnionID   string `validate:"notblank"`
	UnionDues string `validate:"notblank,money,nonneg"`
}

func (*EnrollRequest) Attribute() string { return "sindicalizado" }

type AlterPaymentMethodRequest struct {
	Method string `validate:"oneof=emMaos correios banco"`
}

func (*AlterPaymentMethodRequest) Attribute() string { return "metodoPagamento" }

// BankAccountRequest - реквизиты для metodoPagamento=banco
type BankAccountRequest struct {
	Bank    string `validate:"notblank"`
	Agency  string `validate:"notblank"`
	Account string `validate:"notblank"`
}

func (*BankAccountRequest) Attribute() string { return "metodoPagamento" }

type AlterScheduleRequest struct {
	Schedule string `validate:"notblank"`
}

func (*AlterScheduleRequest) Attribute() string { return "agendaPagamento" }

// TimeCardRequest - запрос на добавление карточки
type TimeCardRequest struct {
	EmployeeID string `validate:"notblank"`
	Date       string `validate:"notblank,date_br"`
	Hours      string `validate:"notblank,money,positive"`
}

// SaleRequest - запрос на добавление продажи
type SaleRequest struct {
	EmployeeID string `validate:"notblank"`
	Date       string `validate:"notblank,date_br"`
	Amount     string `validate:"notblank,money,positive"`
}

// ServiceChargeRequest - запрос на добавление профсоюзного сбора
type ServiceChargeRequest struct {
	MemberID string `validate:"notblank"`
	Date     string `validate:"notblank,date_br"`
	Amount   string `validate:"notblank,money,positive"`
}

// RangeQuery - параметры запросов за интервал дат; даты разбирает сервис после проверки сотрудника
type RangeQuery struct {
	EmployeeID string `validate:"notblank"`
	StartDate  string `validate:"notblank"`
	EndDate    string `validate:"notblank"`
}

// PayrollRequest - дата folha и необязательный файл вывода
type PayrollRequest struct {
	Date   string `validate:"notblank,date_br"`
	Output string
}

// OutputRequest - файл вывода для rodaFolha и exportaFolhaCSV
type OutputRequest struct {
	Output string `validate:"notblank"`
}

type ScheduleRequest struct {
	Description string `validate:"notblank"`
}
