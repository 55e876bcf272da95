package loans

import "github.com/shopspring/decimal"

// InterestRate returns the flat annual interest rate (in percent) for a
// loan of the given tenure in months. Pricing is tenure-banded:
//
//	tenure <= 12  -> 5%
//	tenure <= 24  -> 10%
//	tenure  > 24  -> 15%
func InterestRate(tenureMonths int) decimal.Decimal {
	switch {
	case tenureMonths <= 12:
		return decimal.NewFromInt(5)
	case tenureMonths <= 24:
		return decimal.NewFromInt(10)
	default:
		return decimal.NewFromInt(15)
	}
}

// TotalAmount returns the total repayable for a principal at the given
// flat rate: principal + principal * rate / 100. The rate is applied once
// over the whole tenure, not compounded per period.
func TotalAmount(principal, rate decimal.Decimal) decimal.Decimal {
	interest := principal.Mul(rate).Div(decimal.NewFromInt(100))
	return principal.Add(interest)
}
