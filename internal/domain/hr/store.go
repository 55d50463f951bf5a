package hr

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"hrdash/internal/domain/calendar"
)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

type Store struct {
	DB DB
}

func NewStore(db DB) *Store {
	return &Store{DB: db}
}

var snapshotTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

// Snapshot reads every collection inside one repeatable-read transaction.
func (s *Store) Snapshot(ctx context.Context) (ds Dataset, err error) {
	tx, err := s.DB.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return Dataset{}, fmt.Errorf("hr: begin snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if ds.Employees, err = query(ctx, tx, "employees", employeesSQL, scanEmployee); err != nil {
		return Dataset{}, err
	}
	if ds.Attendance, err = query(ctx, tx, "attendance", attendanceSQL, scanAttendance); err != nil {
		return Dataset{}, err
	}
	if ds.Payroll, err = query(ctx, tx, "payroll", payrollSQL, scanPayroll); err != nil {
		return Dataset{}, err
	}
	if ds.Compensation, err = query(ctx, tx, "compensation", compensationSQL, scanCompensation); err != nil {
		return Dataset{}, err
	}
	if ds.Benefits, err = query(ctx, tx, "benefits", benefitsSQL, scanBenefit); err != nil {
		return Dataset{}, err
	}
	if ds.HealthProviders, err = query(ctx, tx, "health providers", providersSQL, scanProvider); err != nil {
		return Dataset{}, err
	}
	if ds.Activities, err = query(ctx, tx, "activities", activitiesSQL, scanActivity); err != nil {
		return Dataset{}, err
	}
	if ds.Baselines, err = query(ctx, tx, "baselines", baselinesSQL, scanBaseline); err != nil {
		return Dataset{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return Dataset{}, fmt.Errorf("hr: commit snapshot: %w", err)
	}
	return ds, nil
}

func query[T any](ctx context.Context, tx pgx.Tx, name, sqlText string, scan func(pgx.CollectableRow) (T, error)) ([]T, error) {
	rows, err := tx.Query(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("hr: query %s: %w", name, err)
	}
	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("hr: scan %s: %w", name, err)
	}
	return items, nil
}

const employeesSQL = `
    SELECT id, name, position, department, email, phone, status, start_date, salary::float8
    FROM employees
    ORDER BY id
  `

func scanEmployee(row pgx.CollectableRow) (Employee, error) {
	var e Employee
	var status string
	var startDate time.Time
	if err := row.Scan(&e.ID, &e.Name, &e.Position, &e.Department, &e.Email, &e.Phone, &status, &startDate, &e.Salary); err != nil {
		return Employee{}, err
	}
	e.Status = EmploymentStatus(status)
	e.StartDate = calendar.FromTime(startDate, time.UTC)
	return e, nil
}

const attendanceSQL = `
    SELECT a.id, e.id, e.name, e.position, a.work_date, a.check_in, a.check_out, a.status, a.total_hours::float8
    FROM attendance_records a
    JOIN employees e ON a.employee_id = e.id
    ORDER BY a.work_date, a.id
  `

func scanAttendance(row pgx.CollectableRow) (AttendanceRecord, error) {
	var a AttendanceRecord
	var workDate time.Time
	var checkIn, checkOut sql.NullString
	var status string
	var hours sql.NullFloat64
	if err := row.Scan(&a.ID, &a.Employee.ID, &a.Employee.Name, &a.Employee.Position, &workDate, &checkIn, &checkOut, &status, &hours); err != nil {
		return AttendanceRecord{}, err
	}
	a.Date = calendar.FromTime(workDate, time.UTC)
	a.CheckIn = nullString(checkIn)
	a.CheckOut = nullString(checkOut)
	a.Status = AttendanceStatus(status)
	if hours.Valid {
		value := hours.Float64
		a.TotalHours = &value
	}
	return a, nil
}

const payrollSQL = `
    SELECT p.id, e.id, e.name, e.position, p.period,
           p.base_salary::float8, p.overtime::float8, p.bonuses::float8,
           p.sss::float8, p.phil_health::float8, p.pag_ibig::float8, p.tax::float8,
           p.net_pay::float8, p.status
    FROM payroll_records p
    JOIN employees e ON p.employee_id = e.id
    ORDER BY p.id
  `

func scanPayroll(row pgx.CollectableRow) (PayrollRecord, error) {
	var p PayrollRecord
	var status string
	d := &p.Deductions
	if err := row.Scan(&p.ID, &p.Employee.ID, &p.Employee.Name, &p.Employee.Position, &p.Period,
		&p.BaseSalary, &p.Overtime, &p.Bonuses,
		&d.SSS, &d.PhilHealth, &d.PagIbig, &d.Tax,
		&p.NetPay, &status); err != nil {
		return PayrollRecord{}, err
	}
	p.Status = PayrollStatus(status)
	return p, nil
}

const compensationSQL = `
    SELECT c.id, e.id, e.name, e.position, c.current_salary::float8, c.salary_grade,
           c.last_increase_date, c.last_increase_amount::float8, c.last_increase_percentage::float8, c.last_increase_reason,
           c.next_review, c.performance_rating::float8,
           c.market_min::float8, c.market_max::float8, c.market_median::float8
    FROM compensation_records c
    JOIN employees e ON c.employee_id = e.id
    ORDER BY c.id
  `

func scanCompensation(row pgx.CollectableRow) (CompensationRecord, error) {
	var c CompensationRecord
	var increaseDate, nextReview time.Time
	li := &c.LastIncrease
	mv := &c.MarketValue
	if err := row.Scan(&c.ID, &c.Employee.ID, &c.Employee.Name, &c.Employee.Position, &c.CurrentSalary, &c.SalaryGrade,
		&increaseDate, &li.Amount, &li.Percentage, &li.Reason,
		&nextReview, &c.PerformanceRating,
		&mv.Min, &mv.Max, &mv.Median); err != nil {
		return CompensationRecord{}, err
	}
	li.Date = calendar.FromTime(increaseDate, time.UTC)
	c.NextReview = calendar.FromTime(nextReview, time.UTC)
	return c, nil
}

const benefitsSQL = `
    SELECT b.id, e.id, e.name, e.position, b.hmo_provider, b.life, b.dental, b.travel, b.training,
           b.dependents, b.total_cost::float8, b.status
    FROM benefit_enrollments b
    JOIN employees e ON b.employee_id = e.id
    ORDER BY b.id
  `

func scanBenefit(row pgx.CollectableRow) (BenefitEnrollment, error) {
	var b BenefitEnrollment
	var hmo sql.NullString
	var status string
	en := &b.Enrollments
	if err := row.Scan(&b.ID, &b.Employee.ID, &b.Employee.Name, &b.Employee.Position, &hmo, &en.Life, &en.Dental, &en.Travel, &en.Training,
		&b.Dependents, &b.TotalCost, &status); err != nil {
		return BenefitEnrollment{}, err
	}
	en.HMO = nullString(hmo)
	b.Status = BenefitStatus(status)
	return b, nil
}

const providersSQL = `
    SELECT id, name, provider_type, coverage, monthly_premium::float8, max_benefit::float8, network
    FROM health_providers
    ORDER BY name
  `

func scanProvider(row pgx.CollectableRow) (HealthProvider, error) {
	var p HealthProvider
	var providerType string
	if err := row.Scan(&p.ID, &p.Name, &providerType, &p.Coverage, &p.MonthlyPremium, &p.MaxBenefit, &p.Network); err != nil {
		return HealthProvider{}, err
	}
	p.Type = ProviderType(providerType)
	return p, nil
}

const activitiesSQL = `
    SELECT id, activity_type, message, status, occurred_at
    FROM activities
    ORDER BY occurred_at DESC
    LIMIT 50
  `

func scanActivity(row pgx.CollectableRow) (Activity, error) {
	var a Activity
	var activityType, status string
	if err := row.Scan(&a.ID, &activityType, &a.Message, &status, &a.OccurredAt); err != nil {
		return Activity{}, err
	}
	a.Type = ActivityType(activityType)
	a.Status = ActivityStatus(status)
	return a, nil
}

const baselinesSQL = `
    SELECT metric, value::float8, period
    FROM metric_baselines
  `

func scanBaseline(row pgx.CollectableRow) (MetricBaseline, error) {
	var b MetricBaseline
	if err := row.Scan(&b.Metric, &b.Value, &b.Period); err != nil {
		return MetricBaseline{}, err
	}
	return b, nil
}

func nullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
