package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wepayu/internal/domain"
)

func TestEmployee_ChangeKind(t *testing.T) {
	emp := domain.NewEmployee("Ana", "Rua A", domain.KindHourly, domain.MoneyFromInt(10), domain.Zero)
	emp.ID = "3"
	emp.UnionID = "s1"
	emp.PaymentMethod = domain.PaymentMethod{Kind: domain.PaymentByMail}
	emp.TimeCards = append(emp.TimeCards, domain.TimeCard{Date: date(t, "3/1/2005"), Hours: domain.MoneyFromInt(8)})

	next := emp.ChangeKind(domain.KindCommissioned, domain.MoneyFromInt(1000), domain.MustParseMoney("0,1"))

	assert.Equal(t, "3", next.ID)
	assert.Equal(t, "s1", next.UnionID)
	assert.Equal(t, domain.PaymentByMail, next.PaymentMethod.Kind)
	assert.Empty(t, next.TimeCards)
	assert.Equal(t, "semanal 2 5", next.Schedule.Description())
	assert.True(t, next.AcceptsSale())
	assert.False(t, next.AcceptsTimeCard())
}

func TestEmployee_Clone(t *testing.T) {
	emp := domain.NewEmployee("Ana", "Rua A", domain.KindHourly, domain.MoneyFromInt(10), domain.Zero)
	emp.TimeCards = []domain.TimeCard{{Date: date(t, "3/1/2005"), Hours: domain.MoneyFromInt(8)}}

	c := emp.Clone()
	c.TimeCards[0].Hours = domain.MoneyFromInt(1)
	c.Name = "Bia"

	assert.Equal(t, "8", emp.TimeCards[0].Hours.Compact())
	assert.Equal(t, "Ana", emp.Name)
}

func TestEmployee_HoursBetween(t *testing.T) {
	emp := domain.NewEmployee("Ana", "Rua A", domain.KindHourly, domain.MoneyFromInt(10), domain.Zero)
	emp.TimeCards = []domain.TimeCard{
		{Date: date(t, "3/1/2005"), Hours: domain.MustParseMoney("9,5")},
		{Date: date(t, "7/1/2005"), Hours: domain.MoneyFromInt(4)},
		{Date: date(t, "8/1/2005"), Hours: domain.MoneyFromInt(8)},
	}

	normal, extra := emp.HoursBetween(date(t, "3/1/2005"), date(t, "7/1/2005"))
	assert.Equal(t, "12", normal.Compact())
	assert.Equal(t, "1,5", extra.Compact())
}

func TestUnionMembership_ChargesBetween(t *testing.T) {
	m := domain.NewUnionMembership("s1", domain.MustParseMoney("2,5"))
	m.Charges = []domain.ServiceCharge{
		{Date: date(t, "1/1/2005"), Amount: domain.MoneyFromInt(5)},
		{Date: date(t, "10/1/2005"), Amount: domain.MoneyFromInt(7)},
	}

	assert.Equal(t, "5,00", m.ChargesBetween(date(t, "1/1/2005"), date(t, "9/1/2005")).String())
	assert.Equal(t, "12,00", m.ChargesBetween(date(t, "1/1/2005"), date(t, "10/1/2005")).String())
	assert.True(t, m.Debt.IsZero())
}

func TestPaymentMethod_Describe(t *testing.T) {
	assert.Equal(t, "Em maos", domain.PaymentMethod{Kind: domain.PaymentInHands}.Describe("Rua A"))
	assert.Equal(t, "Correios, Rua A", domain.PaymentMethod{Kind: domain.PaymentByMail}.Describe("Rua A"))
	assert.Equal(t, "Banco do Brasil, Ag. 1 CC 2",
		domain.PaymentMethod{Kind: domain.PaymentByBank, Bank: "BB", Agency: "1", Account: "2"}.Describe("Rua A"))
}

func TestError_Kinds(t *testing.T) {
	assert.True(t, errors.Is(domain.ErrNotHourly, domain.ErrWrongEmployeeKind))
	assert.False(t, errors.Is(domain.ErrNotHourly, domain.ErrEmployeeNotFound))
	assert.Equal(t, "Empregado nao eh horista.", domain.ErrNotHourly.Error())

	custom := domain.NewError(domain.ErrValidation, "Nome nao pode ser nulo.")
	assert.ErrorIs(t, custom, domain.ErrValidation)
}
