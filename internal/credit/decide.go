package credit

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
)

// Decision is the full verdict for one loan request. MonthlyInstallment
// always reflects the corrected rate, approved or not, so callers can report
// what the installment would be.
type Decision struct {
	Approved           bool
	CreditScore        int
	InterestRate       decimal.Decimal
	CorrectedRate      decimal.Decimal
	MonthlyInstallment decimal.Decimal
	Reason             string
}

// Decide runs the whole pipeline for one request: score the history, apply
// the eligibility tiers to the requested rate, compute the installment at the
// corrected rate, then apply the 50%-of-salary EMI guard across all existing
// installments plus the new one.
func Decide(cust *customer.Customer, principal, requestedRate decimal.Decimal, tenureMonths int, history []loan.Loan, asOf time.Time) (*Decision, error) {
	if principal.Sign() <= 0 || requestedRate.Sign() < 0 || tenureMonths <= 0 ||
		tenureMonths > MaxTenureMonths || requestedRate.GreaterThan(MaxAnnualRatePercent) {
		return nil, ErrInvalidInput
	}

	score := Score(cust, history, asOf)
	terms := Evaluate(score, requestedRate)

	installment, err := ComputeEMI(principal, terms.CorrectedRate, tenureMonths)
	if err != nil {
		return nil, err
	}

	d := &Decision{
		Approved:           terms.Approved,
		CreditScore:        score,
		InterestRate:       requestedRate,
		CorrectedRate:      terms.CorrectedRate,
		MonthlyInstallment: installment,
		Reason:             terms.Reason,
	}

	obligations := installment
	for _, l := range history {
		obligations = obligations.Add(l.MonthlyInstallment)
	}
	if obligations.GreaterThan(cust.MonthlySalary.Mul(half)) {
		d.Approved = false
		d.Reason = ReasonEMIThreshold
	}
	return d, nil
}
