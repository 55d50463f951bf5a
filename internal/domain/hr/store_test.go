package hr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"hrdash/internal/domain/calendar"
)

func expectSnapshotQueries(mock pgxmock.PgxPoolIface) {
	workDate := time.Date(2024, 11, 27, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM employees").WillReturnRows(
		pgxmock.NewRows([]string{"id", "name", "position", "department", "email", "phone", "status", "start_date", "salary"}).
			AddRow("1", "Maria Santos", "Front Desk Manager", "Hotel Operations", "maria.santos@grandhotel.com", "+63 912 345 6789", "active", time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC), 35000.0),
	)
	mock.ExpectQuery("FROM attendance_records").WillReturnRows(
		pgxmock.NewRows([]string{"id", "employee_id", "name", "position", "work_date", "check_in", "check_out", "status", "total_hours"}).
			AddRow("a1", "1", "Maria Santos", "Front Desk Manager", workDate, "08:00", "17:00", "present", 9.0).
			AddRow("a3", "3", "Sarah Wilson", "Housekeeping Supervisor", workDate, nil, nil, "absent", 0.0),
	)
	mock.ExpectQuery("FROM payroll_records").WillReturnRows(
		pgxmock.NewRows([]string{"id", "employee_id", "name", "position", "period", "base_salary", "overtime", "bonuses", "sss", "phil_health", "pag_ibig", "tax", "net_pay", "status"}).
			AddRow("p1", "1", "Maria Santos", "Front Desk Manager", "November 2024", 35000.0, 3500.0, 5000.0, 1400.0, 875.0, 200.0, 4200.0, 36825.0, "processed"),
	)
	mock.ExpectQuery("FROM compensation_records").WillReturnRows(
		pgxmock.NewRows([]string{"id", "employee_id", "name", "position", "current_salary", "salary_grade", "last_increase_date", "last_increase_amount", "last_increase_percentage", "last_increase_reason", "next_review", "performance_rating", "market_min", "market_max", "market_median"}).
			AddRow("c1", "1", "Maria Santos", "Front Desk Manager", 35000.0, "Grade 5", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 3000.0, 9.4, "Performance Review", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 4.5, 30000.0, 40000.0, 35000.0),
	)
	mock.ExpectQuery("FROM benefit_enrollments").WillReturnRows(
		pgxmock.NewRows([]string{"id", "employee_id", "name", "position", "hmo_provider", "life", "dental", "travel", "training", "dependents", "total_cost", "status"}).
			AddRow("b1", "1", "Maria Santos", "Front Desk Manager", "PhilCare", true, true, true, true, 2, 4500.0, "enrolled").
			AddRow("b3", "3", "Sarah Wilson", "Housekeeping Supervisor", nil, true, false, false, false, 1, 2800.0, "pending"),
	)
	mock.ExpectQuery("FROM health_providers").WillReturnRows(
		pgxmock.NewRows([]string{"id", "name", "provider_type", "coverage", "monthly_premium", "max_benefit", "network"}).
			AddRow("h1", "PhilCare", "HMO", "Comprehensive", 2500.0, 150000.0, "500+ hospitals nationwide"),
	)
	mock.ExpectQuery("FROM activities").WillReturnRows(
		pgxmock.NewRows([]string{"id", "activity_type", "message", "status", "occurred_at"}).
			AddRow("act1", "payroll", "November payroll processed successfully", "success", time.Date(2024, 11, 26, 10, 0, 0, 0, time.UTC)),
	)
	mock.ExpectQuery("FROM metric_baselines").WillReturnRows(
		pgxmock.NewRows([]string{"metric", "value", "period"}).
			AddRow(MetricTotalEmployees, 4.0, "last month"),
	)
}

func TestStoreSnapshot(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	expectSnapshotQueries(mock)
	mock.ExpectCommit()

	ds, err := NewStore(mock).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	if len(ds.Employees) != 1 || ds.Employees[0].Status != EmploymentActive {
		t.Fatalf("unexpected employees: %+v", ds.Employees)
	}
	if ds.Employees[0].StartDate != calendar.New(2022, time.March, 15) {
		t.Fatalf("unexpected start date: %v", ds.Employees[0].StartDate)
	}
	if len(ds.Attendance) != 2 {
		t.Fatalf("expected 2 attendance records, got %d", len(ds.Attendance))
	}
	if ds.Attendance[0].CheckIn == nil || *ds.Attendance[0].CheckIn != "08:00" {
		t.Fatalf("expected check-in 08:00, got %v", ds.Attendance[0].CheckIn)
	}
	if ds.Attendance[1].CheckIn != nil || ds.Attendance[1].CheckOut != nil {
		t.Fatalf("expected null punches for absent record, got %+v", ds.Attendance[1])
	}
	if ds.Payroll[0].Deductions.Tax != 4200 || ds.Payroll[0].NetPay != 36825 {
		t.Fatalf("unexpected payroll record: %+v", ds.Payroll[0])
	}
	if ds.Compensation[0].NextReview != calendar.New(2025, time.January, 15) {
		t.Fatalf("unexpected next review: %v", ds.Compensation[0].NextReview)
	}
	if ds.Benefits[0].Enrollments.HMO == nil || *ds.Benefits[0].Enrollments.HMO != "PhilCare" {
		t.Fatalf("expected PhilCare HMO, got %v", ds.Benefits[0].Enrollments.HMO)
	}
	if ds.Benefits[1].Enrollments.HMO != nil {
		t.Fatalf("expected no HMO, got %v", *ds.Benefits[1].Enrollments.HMO)
	}
	if ds.HealthProviders[0].Type != ProviderHMO {
		t.Fatalf("unexpected provider type: %v", ds.HealthProviders[0].Type)
	}
	if ds.Activities[0].Type != ActivityPayroll {
		t.Fatalf("unexpected activity: %+v", ds.Activities[0])
	}
	if _, ok := ds.Baseline(MetricTotalEmployees); !ok {
		t.Fatal("expected total employees baseline")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreSnapshotRollsBackOnQueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	queryErr := errors.New("relation does not exist")
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	mock.ExpectQuery("FROM employees").WillReturnError(queryErr)
	mock.ExpectRollback()

	_, err = NewStore(mock).Snapshot(context.Background())
	if !errors.Is(err, queryErr) {
		t.Fatalf("expected %v, got %v", queryErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreSnapshotBeginError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	beginErr := errors.New("connection refused")
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}).WillReturnError(beginErr)

	if _, err := NewStore(mock).Snapshot(context.Background()); !errors.Is(err, beginErr) {
		t.Fatalf("expected %v, got %v", beginErr, err)
	}
}

func TestStorePing(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool() // pgxmock v3 always monitors pings
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectPing()
	if err := NewStore(mock).Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
