package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wepayu/internal/domain"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "10", want: "10,00"},
		{in: "1,5", want: "1,50"},
		{in: "2.25", want: "2,25"},
		{in: "0,999", want: "0,99"},
		{in: " 7 ", want: "7,00"},
		{in: "-3,1", want: "-3,10"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1,2,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseMoney(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMoney_Compact(t *testing.T) {
	assert.Equal(t, "8", domain.MustParseMoney("8").Compact())
	assert.Equal(t, "7,5", domain.MustParseMoney("7,50").Compact())
	assert.Equal(t, "0", domain.Zero.Compact())
}

func TestMoney_Arithmetic(t *testing.T) {
	m := domain.MustParseMoney("1000")

	// 1000 * 12 / 52 = 230,769... усекается в конце
	assert.Equal(t, "230,76", m.MulDiv(12, 52).String())
	assert.Equal(t, "461,53", m.MulDiv(24, 52).String())

	rate := domain.MustParseMoney("0,1")
	assert.Equal(t, "33,33", rate.Mul(domain.MustParseMoney("333,35")).String())

	assert.Equal(t, "1001,50", m.Add(domain.MustParseMoney("1,5")).String())
	assert.Equal(t, "-1,00", domain.Zero.Sub(domain.MoneyFromInt(1)).String())
	assert.Equal(t, int64(1000), m.IntPart())

	assert.True(t, domain.MoneyFromInt(3).Min(domain.MoneyFromInt(5)).Equal(domain.MoneyFromInt(3)))
	assert.True(t, domain.MoneyFromInt(3).Max(domain.MoneyFromInt(5)).Equal(domain.MoneyFromInt(5)))
	assert.True(t, domain.Zero.IsZero())
	assert.True(t, m.IsPositive())
	assert.False(t, m.IsNegative())
}

func TestSplitHours(t *testing.T) {
	normal, extra := domain.SplitHours(domain.MustParseMoney("10,5"))
	assert.Equal(t, "8", normal.Compact())
	assert.Equal(t, "2,5", extra.Compact())

	normal, extra = domain.SplitHours(domain.MustParseMoney("6"))
	assert.Equal(t, "6", normal.Compact())
	assert.True(t, extra.IsZero())
}

func TestNewMoney_TruncationIsIdempotent(t *testing.T) {
	for _, s := range []string{"1.999", "-1.999", "0.005", "123.456789"} {
		d := decimal.RequireFromString(s)
		once := domain.NewMoney(d)
		twice := domain.NewMoney(once.Decimal())

		assert.True(t, once.Equal(twice), s)
		assert.LessOrEqual(t, once.Decimal().Abs().Cmp(d.Abs()), 0, s)
	}
}
