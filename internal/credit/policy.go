package credit

import "github.com/shopspring/decimal"

// Terms is the outcome of the eligibility tiers for one request.
type Terms struct {
	Approved      bool
	CorrectedRate decimal.Decimal
	Reason        string
}

// Rate floors applied by the middle tiers; a requested rate below the floor
// is raised, not rejected.
var (
	rateFloorMid = decimal.NewFromInt(12)
	rateFloorLow = decimal.NewFromInt(16)
)

// Evaluate maps a credit score and the originally requested annual rate to an
// approval and a possibly corrected rate. Tiers are checked top-down and the
// boundary scores 50, 30 and 10 belong to the lower tier.
func Evaluate(score int, requestedRate decimal.Decimal) Terms {
	switch {
	case score > 50:
		return Terms{Approved: true, CorrectedRate: requestedRate}
	case score > 30:
		return Terms{Approved: true, CorrectedRate: flooredRate(requestedRate, rateFloorMid)}
	case score > 10:
		return Terms{Approved: true, CorrectedRate: flooredRate(requestedRate, rateFloorLow)}
	default:
		return Terms{Approved: false, CorrectedRate: requestedRate, Reason: ReasonLowCreditScore}
	}
}

func flooredRate(requested, floor decimal.Decimal) decimal.Decimal {
	if requested.LessThan(floor) {
		return floor
	}
	return requested
}
