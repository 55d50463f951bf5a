package hr

import (
	"errors"
	"fmt"
)

// Dataset is one consistent snapshot of every HR collection.
type Dataset struct {
	Employees       []Employee           `json:"employees" yaml:"employees"`
	Attendance      []AttendanceRecord   `json:"attendance" yaml:"attendance"`
	Payroll         []PayrollRecord      `json:"payroll" yaml:"payroll"`
	Compensation    []CompensationRecord `json:"compensation" yaml:"compensation"`
	Benefits        []BenefitEnrollment  `json:"benefits" yaml:"benefits"`
	HealthProviders []HealthProvider     `json:"healthProviders" yaml:"healthProviders"`
	Activities      []Activity           `json:"activities" yaml:"activities"`
	Baselines       []MetricBaseline     `json:"baselines" yaml:"baselines"`
}

func (d Dataset) PayrollByID(id string) (PayrollRecord, error) {
	for _, record := range d.Payroll {
		if record.ID == id {
			return record, nil
		}
	}
	return PayrollRecord{}, fmt.Errorf("payroll record %q: %w", id, ErrNotFound)
}

func (d Dataset) Baseline(metric string) (MetricBaseline, bool) {
	for _, baseline := range d.Baselines {
		if baseline.Metric == metric {
			return baseline, true
		}
	}
	return MetricBaseline{}, false
}

// Validate checks the structural invariants of every record. Net pay is reconciled separately
// because it needs currency arithmetic.
func (d Dataset) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...)))
	}

	for _, e := range d.Employees {
		if e.Salary < 0 {
			invalid("employee %s: salary %v is negative", e.ID, e.Salary)
		}
		if !e.Status.Valid() {
			invalid("employee %s: unknown status %q", e.ID, e.Status)
		}
	}

	for _, a := range d.Attendance {
		if !a.Status.Valid() {
			invalid("attendance %s: unknown status %q", a.ID, a.Status)
		}
		if a.Date.IsZero() {
			invalid("attendance %s: date is required", a.ID)
		}
		if a.TotalHours != nil && *a.TotalHours < 0 {
			invalid("attendance %s: total hours %v is negative", a.ID, *a.TotalHours)
		}
		if a.Status == AttendanceAbsent && a.TotalHours != nil && *a.TotalHours != 0 {
			invalid("attendance %s: absent record has %v hours", a.ID, *a.TotalHours)
		}
	}

	for _, p := range d.Payroll {
		if !p.Status.Valid() {
			invalid("payroll %s: unknown status %q", p.ID, p.Status)
		}
		if p.BaseSalary < 0 || p.Overtime < 0 || p.Bonuses < 0 {
			invalid("payroll %s: earnings must not be negative", p.ID)
		}
		for _, line := range p.Deductions.Lines() {
			if line.Amount < 0 {
				invalid("payroll %s: %s deduction is negative", p.ID, line.Name)
			}
		}
	}

	for _, c := range d.Compensation {
		mv := c.MarketValue
		if mv.Min > mv.Median || mv.Median > mv.Max {
			invalid("compensation %s: market band %v/%v/%v is out of order", c.ID, mv.Min, mv.Median, mv.Max)
		}
		if c.PerformanceRating < 0 || c.PerformanceRating > 5 {
			invalid("compensation %s: rating %v outside 0-5", c.ID, c.PerformanceRating)
		}
		if c.CurrentSalary < 0 {
			invalid("compensation %s: salary %v is negative", c.ID, c.CurrentSalary)
		}
	}

	for _, b := range d.Benefits {
		if !b.Status.Valid() {
			invalid("benefits %s: unknown status %q", b.ID, b.Status)
		}
		if b.Dependents < 0 {
			invalid("benefits %s: dependents %d is negative", b.ID, b.Dependents)
		}
		if b.TotalCost < 0 {
			invalid("benefits %s: total cost %v is negative", b.ID, b.TotalCost)
		}
	}

	for _, p := range d.HealthProviders {
		if !p.Type.Valid() {
			invalid("provider %s: unknown type %q", p.ID, p.Type)
		}
	}

	for _, a := range d.Activities {
		if !a.Type.Valid() {
			invalid("activity %s: unknown type %q", a.ID, a.Type)
		}
		if !a.Status.Valid() {
			invalid("activity %s: unknown status %q", a.ID, a.Status)
		}
	}

	return errors.Join(errs...)
}
