package metrics

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
)

const (
	DefaultReviewThresholdDays = 30
	HighPerformerRating        = 4.5
)

// netPayTolerance is one centavo.
var netPayTolerance = decimal.New(1, -2)

func GrossPay(base, overtime, bonuses float64) float64 {
	return grossPay(base, overtime, bonuses).InexactFloat64()
}

func TotalDeductions(d hr.Deductions) float64 {
	return totalDeductions(d).InexactFloat64()
}

// NetPay is gross pay less every deduction component.
func NetPay(record hr.PayrollRecord) float64 {
	return expectedNet(record).InexactFloat64()
}

type Reconciliation struct {
	Expected   float64 `json:"expected"`
	Stored     float64 `json:"stored"`
	Difference float64 `json:"difference"`
	Reconciled bool    `json:"reconciled"`
}

// ReconcileNetPay compares the stored net pay with the computed one.
func ReconcileNetPay(record hr.PayrollRecord) Reconciliation {
	expected := expectedNet(record)
	stored := decimal.NewFromFloat(record.NetPay)
	diff := stored.Sub(expected)
	return Reconciliation{
		Expected:   expected.InexactFloat64(),
		Stored:     record.NetPay,
		Difference: diff.InexactFloat64(),
		Reconciled: diff.Abs().LessThanOrEqual(netPayTolerance),
	}
}

// ReconcilePayroll returns one ErrNetPayMismatch per record that does not reconcile.
func ReconcilePayroll(records []hr.PayrollRecord) error {
	var errs []error
	for _, record := range records {
		rec := ReconcileNetPay(record)
		if !rec.Reconciled {
			errs = append(errs, fmt.Errorf("%w: payroll %s stores %v, expected %v", ErrNetPayMismatch, record.ID, rec.Stored, rec.Expected))
		}
	}
	return errors.Join(errs...)
}

func grossPay(base, overtime, bonuses float64) decimal.Decimal {
	return decimal.Sum(decimal.NewFromFloat(base), decimal.NewFromFloat(overtime), decimal.NewFromFloat(bonuses))
}

func totalDeductions(d hr.Deductions) decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.Lines() {
		total = total.Add(decimal.NewFromFloat(line.Amount))
	}
	return total
}

func expectedNet(record hr.PayrollRecord) decimal.Decimal {
	return grossPay(record.BaseSalary, record.Overtime, record.Bonuses).Sub(totalDeductions(record.Deductions))
}

// MarketPosition places current within the [low, high] band as a percentage clamped to 0-100.
// A band with high <= low yields 100 when current reaches high and 0 otherwise.
func MarketPosition(current, low, high float64) float64 {
	if high <= low {
		if current >= high {
			return 100
		}
		return 0
	}
	position := (current - low) / (high - low) * 100
	switch {
	case position < 0:
		return 0
	case position > 100:
		return 100
	default:
		return position
	}
}

// CompaRatio is salary over the market median, 0 when there is no median.
func CompaRatio(current, median float64) float64 {
	if median <= 0 {
		return 0
	}
	return current / median
}

// ReviewDue reports whether next falls within threshold calendar days of today. Past dates are due.
func ReviewDue(next, today calendar.Date, thresholdDays int) bool {
	return today.DaysUntil(next) <= thresholdDays
}

func ReviewOverdue(next, today calendar.Date) bool {
	return today.DaysUntil(next) < 0
}

// IsReviewDue parses a YYYY-MM-DD review date and applies ReviewDue.
func IsReviewDue(nextReview string, today calendar.Date, thresholdDays int) (bool, error) {
	next, err := calendar.Parse(nextReview)
	if err != nil {
		return false, err
	}
	return ReviewDue(next, today, thresholdDays), nil
}
