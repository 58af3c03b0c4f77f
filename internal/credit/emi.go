package credit

import "github.com/shopspring/decimal"

// ComputeEMI returns the fixed monthly installment for a loan under compound
// interest with monthly compounding, rounded half-up to 2 decimal places:
//
//	EMI = P x r x (1+r)^n / ((1+r)^n - 1), r = annual% / 12 / 100
//
// A zero rate degenerates to principal / tenure.
func ComputeEMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if principal.Sign() <= 0 || tenureMonths <= 0 || annualRatePercent.Sign() < 0 {
		return decimal.Zero, ErrInvalidInput
	}
	if tenureMonths > MaxTenureMonths || annualRatePercent.GreaterThan(MaxAnnualRatePercent) {
		return decimal.Zero, ErrInvalidInput
	}

	months := decimal.NewFromInt(int64(tenureMonths))
	r := annualRatePercent.Div(twelve).Div(hundred)
	if r.IsZero() {
		return principal.DivRound(months, 2), nil
	}

	pow := one.Add(r).Pow(months)
	return principal.Mul(r).Mul(pow).DivRound(pow.Sub(one), 2), nil
}
