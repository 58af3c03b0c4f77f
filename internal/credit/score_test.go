package credit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
)

var evalDate = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func testCustomer(limit string) *customer.Customer {
	return &customer.Customer{
		CustomerID:    1,
		MonthlySalary: dec("50000"),
		ApprovedLimit: dec(limit),
	}
}

func histLoan(principal string, tenure, paidOnTime, startYear int) loan.Loan {
	start := time.Date(startYear, time.March, 1, 0, 0, 0, 0, time.UTC)
	return loan.Loan{
		Principal:          dec(principal),
		TenureMonths:       tenure,
		EMIsPaidOnTime:     paidOnTime,
		MonthlyInstallment: dec("100.00"),
		StartDate:          start,
		EndDate:            start.AddDate(0, tenure, 0),
	}
}

func TestScore_EmptyHistory(t *testing.T) {
	assert.Equal(t, 100, Score(testCustomer("1800000"), nil, evalDate))
	assert.Equal(t, 100, Score(testCustomer("1800000"), []loan.Loan{}, evalDate))
}

func TestScore_OverLimitOverride(t *testing.T) {
	cust := testCustomer("100000")
	history := []loan.Loan{
		// one oversized loan with an otherwise spotless record
		histLoan("150000", 12, 12, 2020),
	}
	assert.Equal(t, 0, Score(cust, history, evalDate))

	// several small loans summing past the limit trip it too
	history = []loan.Loan{
		histLoan("60000", 12, 12, 2020),
		histLoan("60000", 12, 12, 2021),
	}
	assert.Equal(t, 0, Score(cust, history, evalDate))
}

func TestScore_PerfectHistorySingleOldLoan(t *testing.T) {
	cust := testCustomer("1000000")
	history := []loan.Loan{histLoan("100000", 12, 12, 2022)}

	// history 100, count 100*3/4=75, activity 100, utilization 90
	// 0.4*100 + 0.2*75 + 0.2*100 + 0.2*90 = 93
	assert.Equal(t, 93, Score(cust, history, evalDate))
}

func TestScore_CurrentYearActivityPenalized(t *testing.T) {
	cust := testCustomer("1000000")
	old := []loan.Loan{histLoan("100000", 12, 12, 2022)}
	thisYear := []loan.Loan{histLoan("100000", 12, 12, evalDate.Year())}

	// same loan, started in the evaluation year: activity drops 100 -> 75
	assert.Equal(t, Score(cust, old, evalDate)-5, Score(cust, thisYear, evalDate))
}

func TestScore_PaymentHistoryComponent(t *testing.T) {
	cust := testCustomer("1000000")
	paid := Score(cust, []loan.Loan{histLoan("100000", 12, 12, 2022)}, evalDate)
	unpaid := Score(cust, []loan.Loan{histLoan("100000", 12, 0, 2022)}, evalDate)

	// zero on-time EMIs wipes the 40% component
	assert.Equal(t, 40, paid-unpaid)
}

func TestScore_AlwaysInRange(t *testing.T) {
	cust := testCustomer("500000")
	histories := [][]loan.Loan{
		nil,
		{histLoan("500000", 1, 0, evalDate.Year())},
		{histLoan("1", 480, 480, 1999)},
		{
			histLoan("100000", 12, 6, 2021),
			histLoan("100000", 24, 3, 2022),
			histLoan("100000", 36, 0, 2023),
			histLoan("100000", 6, 6, evalDate.Year()),
			histLoan("99999.99", 18, 18, evalDate.Year()),
		},
	}
	for i, h := range histories {
		s := Score(cust, h, evalDate)
		assert.GreaterOrEqual(t, s, 0, "history %d", i)
		assert.LessOrEqual(t, s, 100, "history %d", i)
	}
}

func TestDecayScore_StrictlyDecreasing(t *testing.T) {
	prev := decayScore(0)
	assert.Equal(t, "100", prev.String())
	for n := 1; n <= 50; n++ {
		cur := decayScore(n)
		assert.True(t, cur.LessThan(prev), "decayScore(%d)=%s not below %s", n, cur, prev)
		assert.True(t, cur.Sign() > 0)
		prev = cur
	}
}

func TestScore_MoreLoansNeverScoreHigher(t *testing.T) {
	cust := testCustomer("10000000")
	var history []loan.Loan
	first := Score(cust, history, evalDate)
	prev := first
	for i := 0; i < 8; i++ {
		history = append(history, histLoan("1000", 12, 12, 2020))
		s := Score(cust, history, evalDate)
		assert.LessOrEqual(t, s, prev, "adding loan %d raised the score", i+1)
		prev = s
	}
	assert.Less(t, prev, first)
}

func TestUtilizationScore(t *testing.T) {
	limit := dec("100000")
	assert.Equal(t, "100", utilizationScore(decimal.Zero, limit).String())
	assert.Equal(t, "50", utilizationScore(dec("50000"), limit).String())
	assert.Equal(t, "0", utilizationScore(dec("100000"), limit).String())
	assert.Equal(t, "0", utilizationScore(dec("150000"), limit).String())
	// a zero limit can never score utilization points
	assert.Equal(t, "0", utilizationScore(dec("1"), decimal.Zero).String())
}
