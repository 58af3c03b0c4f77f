package credit

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
)

// Sub-score weights: payment history 40%, loan count 20%, current-year
// activity 20%, credit utilization 20%.
var (
	weightHistory     = decimal.New(40, -2)
	weightCount       = decimal.New(20, -2)
	weightActivity    = decimal.New(20, -2)
	weightUtilization = decimal.New(20, -2)
)

// decayK shapes the fewer-is-better curve 100*k/(k+n) used for the loan-count
// and current-year components: 0 loans scores 100, strictly decreasing toward
// 0 as the count grows.
var decayK = decimal.NewFromInt(3)

// Score aggregates a customer's loan history into a 0-100 credit score as of
// the given evaluation date. An empty history scores 100. If the summed
// principal of the history exceeds the approved limit the score is 0 and the
// weighted components are not evaluated at all.
func Score(cust *customer.Customer, history []loan.Loan, asOf time.Time) int {
	if len(history) == 0 {
		return 100
	}

	totalPrincipal := decimal.Zero
	for _, l := range history {
		totalPrincipal = totalPrincipal.Add(l.Principal)
	}
	if totalPrincipal.GreaterThan(cust.ApprovedLimit) {
		return 0
	}

	currentYear := 0
	for _, l := range history {
		if l.StartDate.Year() == asOf.Year() {
			currentYear++
		}
	}

	combined := weightHistory.Mul(paymentHistoryScore(history)).
		Add(weightCount.Mul(decayScore(len(history)))).
		Add(weightActivity.Mul(decayScore(currentYear))).
		Add(weightUtilization.Mul(utilizationScore(totalPrincipal, cust.ApprovedLimit)))

	score := int(combined.Round(0).IntPart())
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// paymentHistoryScore averages each loan's on-time ratio and scales to 0-100.
func paymentHistoryScore(history []loan.Loan) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range history {
		if l.TenureMonths <= 0 || l.EMIsPaidOnTime >= l.TenureMonths {
			sum = sum.Add(one)
			continue
		}
		ratio := decimal.NewFromInt(int64(l.EMIsPaidOnTime)).
			Div(decimal.NewFromInt(int64(l.TenureMonths)))
		sum = sum.Add(ratio)
	}
	return sum.Div(decimal.NewFromInt(int64(len(history)))).Mul(hundred)
}

func decayScore(n int) decimal.Decimal {
	return hundred.Mul(decayK).Div(decayK.Add(decimal.NewFromInt(int64(n))))
}

// utilizationScore interpolates linearly: zero utilization scores 100, at or
// over the approved limit scores 0.
func utilizationScore(totalPrincipal, approvedLimit decimal.Decimal) decimal.Decimal {
	if approvedLimit.Sign() <= 0 {
		return decimal.Zero
	}
	utilization := totalPrincipal.Div(approvedLimit)
	if utilization.GreaterThanOrEqual(one) {
		return decimal.Zero
	}
	return hundred.Mul(one.Sub(utilization))
}
