package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalculateFinalPay(t *testing.T) {
	cases := []struct {
		name       string
		baseSalary string
		daysWorked string
		deductions string
		bonuses    string
		want       string
	}{
		{"full month with adjustments", "30000", "26", "500", "1000", "26500"},
		{"zero days worked", "15000", "0", "0", "0", "0"},
		{"deductions exceed earnings clamps to zero", "20000", "30", "25000", "0", "0"},
		{"half day counts as fractional work", "30000", "1.5", "0", "0", "1500"},
		{"bonus only", "30000", "0", "0", "750", "750"},
		{"exact break even", "30000", "10", "10000", "0", "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateFinalPay(d(c.baseSalary), d(c.daysWorked), d(c.deductions), d(c.bonuses))
			assert.True(t, got.Equal(d(c.want)), "got %s, want %s", got, c.want)
		})
	}
}

func TestCalculateFinalPayNeverNegative(t *testing.T) {
	got := CalculateFinalPay(d("1000"), d("1"), d("999999"), d("0"))
	assert.True(t, got.Equal(decimal.Zero))
}

// Final pay never decreases when days worked or bonuses grow, and never
// increases when deductions grow.
func TestCalculateFinalPayMonotonicity(t *testing.T) {
	base := d("30000")

	prev := CalculateFinalPay(base, d("0"), d("500"), d("200"))
	for _, days := range []string{"0.5", "1", "10", "22", "30"} {
		got := CalculateFinalPay(base, d(days), d("500"), d("200"))
		assert.True(t, got.GreaterThanOrEqual(prev), "days=%s: %s < %s", days, got, prev)
		prev = got
	}

	prev = CalculateFinalPay(base, d("20"), d("500"), d("0"))
	for _, bonus := range []string{"100", "1000", "5000"} {
		got := CalculateFinalPay(base, d("20"), d("500"), d(bonus))
		assert.True(t, got.GreaterThanOrEqual(prev), "bonus=%s: %s < %s", bonus, got, prev)
		prev = got
	}

	prev = CalculateFinalPay(base, d("20"), d("0"), d("200"))
	for _, deduction := range []string{"100", "10000", "25000", "50000"} {
		got := CalculateFinalPay(base, d("20"), d(deduction), d("200"))
		assert.True(t, got.LessThanOrEqual(prev), "deduction=%s: %s > %s", deduction, got, prev)
		prev = got
	}
}
