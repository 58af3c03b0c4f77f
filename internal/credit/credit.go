// Package credit is the loan decision engine: EMI arithmetic, credit scoring
// over a customer's loan history, rate-correction tiers, and the final
// approval decision. Everything here is pure computation over the inputs it
// is handed; the evaluation date comes in as an argument and persistence is
// the caller's problem.
package credit

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid loan input")

// Guard rails for the EMI math. Exact decimal arithmetic cannot produce
// non-finite values, so rejecting degenerate tenure/rate combinations up
// front is the overflow guard.
const MaxTenureMonths = 480

var MaxAnnualRatePercent = decimal.NewFromInt(100)

// Rejection reasons surfaced to callers on a negative decision.
const (
	ReasonLowCreditScore = "credit score too low for loan approval"
	ReasonEMIThreshold   = "EMI exceeds income threshold"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)
