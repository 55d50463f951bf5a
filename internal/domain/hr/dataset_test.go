package hr

import (
	"errors"
	"strings"
	"testing"
	"time"

	"hrdash/internal/domain/calendar"
)

func hoursPtr(v float64) *float64 { return &v }

func validDataset() Dataset {
	return Dataset{
		Employees: []Employee{{ID: "1", Name: "Maria Santos", Status: EmploymentActive, Salary: 35000}},
		Attendance: []AttendanceRecord{
			{ID: "a1", Date: calendar.New(2024, time.November, 27), Status: AttendanceAbsent, TotalHours: hoursPtr(0)},
		},
		Payroll: []PayrollRecord{{ID: "p1", Status: PayrollPending, BaseSalary: 100}},
		Compensation: []CompensationRecord{
			{ID: "c1", PerformanceRating: 4.5, MarketValue: MarketValue{Min: 1, Median: 2, Max: 3}},
		},
		Benefits:        []BenefitEnrollment{{ID: "b1", Status: BenefitEnrolled}},
		HealthProviders: []HealthProvider{{ID: "h1", Type: ProviderClinic}},
		Activities:      []Activity{{ID: "x1", Type: ActivityEmployee, Status: ActivityInfo}},
	}
}

func TestValidateAcceptsWellFormedDataset(t *testing.T) {
	if err := validDataset().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	ds := validDataset()
	ds.Employees[0].Salary = -1
	ds.Attendance[0].TotalHours = hoursPtr(2)
	ds.Compensation[0].MarketValue = MarketValue{Min: 5, Median: 2, Max: 3}
	ds.Compensation[0].PerformanceRating = 5.5
	ds.Benefits[0].Status = "cancelled"

	err := ds.Validate()
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	for _, want := range []string{"salary", "absent record", "market band", "rating", "cancelled"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestPayrollByID(t *testing.T) {
	ds := validDataset()
	if _, err := ds.PayrollByID("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ds.PayrollByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
