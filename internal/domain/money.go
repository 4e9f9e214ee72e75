package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyScale - число знаков после запятой
const moneyScale = 2

var errNotNumeric = errors.New("value is not numeric")

// Money - десятичное значение с двумя знаками, всегда усечённое к нулю
type Money struct {
	value decimal.Decimal
}

// Zero - нулевое значение
var Zero = Money{}

// NewMoney усекает d до двух знаков
func NewMoney(d decimal.Decimal) Money {
	return Money{value: d.Truncate(moneyScale)}
}

// MoneyFromInt создаёт значение из целого числа
func MoneyFromInt(n int64) Money {
	return Money{value: decimal.NewFromInt(n)}
}

// ParseMoney разбирает строку с разделителем "," или "."
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, errNotNumeric
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return Zero, errNotNumeric
	}
	return NewMoney(d), nil
}

// MustParseMoney - вариант ParseMoney для констант и тестов
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal возвращает значение для промежуточных вычислений
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) Add(o Money) Money {
	return Money{value: m.value.Add(o.value)}
}

func (m Money) Sub(o Money) Money {
	return Money{value: m.value.Sub(o.value)}
}

// Mul умножает и усекает результат
func (m Money) Mul(o Money) Money {
	return NewMoney(m.value.Mul(o.value))
}

// MulInt умножает на целое
func (m Money) MulInt(n int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(n))}
}

// MulDiv считает m*num/den с усечением только в конце
func (m Money) MulDiv(num, den int64) Money {
	q, _ := m.value.Mul(decimal.NewFromInt(num)).QuoRem(decimal.NewFromInt(den), moneyScale)
	return Money{value: q}
}

func (m Money) Cmp(o Money) int {
	return m.value.Cmp(o.value)
}

func (m Money) Equal(o Money) bool {
	return m.value.Equal(o.value)
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// Min возвращает меньшее из двух значений
func (m Money) Min(o Money) Money {
	if m.Cmp(o) <= 0 {
		return m
	}
	return o
}

// Max возвращает большее из двух значений
func (m Money) Max(o Money) Money {
	if m.Cmp(o) >= 0 {
		return m
	}
	return o
}

// IntPart отбрасывает дробную часть
func (m Money) IntPart() int64 {
	return m.value.IntPart()
}

// String форматирует с запятой и ровно двумя знаками: 1234,56
func (m Money) String() string {
	return strings.Replace(m.value.StringFixed(moneyScale), ".", ",", 1)
}

// Compact форматирует без хвостовых нулей: 8, 7,5
func (m Money) Compact() string {
	return strings.Replace(m.value.String(), ".", ",", 1)
}
