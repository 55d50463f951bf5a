package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
)

func TestNetPayReconciliation(t *testing.T) {
	record := hr.PayrollRecord{
		ID:         "p2",
		BaseSalary: 45000,
		Overtime:   4200,
		Bonuses:    8000,
		Deductions: hr.Deductions{SSS: 1800, PhilHealth: 1125, PagIbig: 200, Tax: 6800},
		NetPay:     47275,
	}

	assert.Equal(t, 57200.0, GrossPay(record.BaseSalary, record.Overtime, record.Bonuses))
	assert.Equal(t, 9925.0, TotalDeductions(record.Deductions))
	assert.Equal(t, 47275.0, NetPay(record))
	assert.True(t, ReconcileNetPay(record).Reconciled)

	record.NetPay = 47275.009
	assert.True(t, ReconcileNetPay(record).Reconciled)

	record.NetPay = 49277
	rec := ReconcileNetPay(record)
	assert.False(t, rec.Reconciled)
	assert.Equal(t, 2002.0, rec.Difference)

	err := ReconcilePayroll([]hr.PayrollRecord{record})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetPayMismatch))
}

func TestMarketPositionClamps(t *testing.T) {
	assert.Equal(t, 50.0, MarketPosition(35000, 30000, 40000))
	assert.Equal(t, 0.0, MarketPosition(10000, 30000, 40000))
	assert.Equal(t, 100.0, MarketPosition(90000, 30000, 40000))

	for _, current := range []float64{-1e9, -1, 0, 15999, 16000, 19000, 22000, 1e9} {
		position := MarketPosition(current, 16000, 22000)
		assert.GreaterOrEqual(t, position, 0.0)
		assert.LessOrEqual(t, position, 100.0)
	}
}

func TestMarketPositionDegenerateBand(t *testing.T) {
	assert.Equal(t, 100.0, MarketPosition(30000, 30000, 30000))
	assert.Equal(t, 0.0, MarketPosition(29999, 30000, 30000))
	assert.Equal(t, 100.0, MarketPosition(50000, 40000, 30000))
}

func TestCompaRatio(t *testing.T) {
	assert.InDelta(t, 1.0, CompaRatio(28500, 28500), 1e-9)
	assert.Equal(t, 0.0, CompaRatio(28500, 0))
}

func TestReviewDueThreshold(t *testing.T) {
	today := calendar.New(2024, time.November, 27)

	assert.True(t, ReviewDue(today.AddDays(30), today, DefaultReviewThresholdDays))
	assert.False(t, ReviewDue(today.AddDays(31), today, DefaultReviewThresholdDays))
	assert.True(t, ReviewDue(today, today, DefaultReviewThresholdDays))
}

func TestOverdueReviewsAreDue(t *testing.T) {
	today := calendar.New(2024, time.November, 27)
	past := calendar.New(2024, time.May, 5)

	assert.True(t, ReviewDue(past, today, DefaultReviewThresholdDays))
	assert.True(t, ReviewOverdue(past, today))
	assert.False(t, ReviewOverdue(today, today))
}

func TestIsReviewDue(t *testing.T) {
	today := calendar.New(2024, time.November, 27)

	due, err := IsReviewDue("2024-12-20", today, DefaultReviewThresholdDays)
	require.NoError(t, err)
	assert.True(t, due)

	due, err = IsReviewDue("2025-01-15", today, DefaultReviewThresholdDays)
	require.NoError(t, err)
	assert.False(t, due)

	_, err = IsReviewDue("next spring", today, DefaultReviewThresholdDays)
	var dateErr *calendar.InvalidDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "next spring", dateErr.Value)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}
