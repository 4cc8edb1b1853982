package payroll

import "github.com/shopspring/decimal"

// payrollDivisorDays is the fixed divisor for the daily rate. The monthly
// salary is always spread over 30 days regardless of the calendar month.
const payrollDivisorDays = 30

var divisor = decimal.NewFromInt(payrollDivisorDays)

// CalculateFinalPay computes the net payable amount for one employee and
// period:
//
//	dailyRate = baseSalary / 30
//	earned    = dailyRate * daysWorked
//	finalPay  = max(0, earned - deductions + bonuses)
//
// Deductions and bonuses are absolute currency amounts. The result is never
// negative. All arithmetic stays in decimal; rounding to the smallest
// currency unit happens at presentation, not here.
func CalculateFinalPay(baseSalary, daysWorked, deductions, bonuses decimal.Decimal) decimal.Decimal {
	dailyRate := baseSalary.Div(divisor)
	earned := dailyRate.Mul(daysWorked)
	final := earned.Sub(deductions).Add(bonuses)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
