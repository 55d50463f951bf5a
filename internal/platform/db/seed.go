package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"hrdash/internal/domain/hr"
)

// Beginner is the part of a pool Seed needs.
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Seed loads ds into an empty database. It reports false without writing when
// employees already exist. Rows are inserted with ON CONFLICT (id) DO NOTHING.
func Seed(ctx context.Context, pool Beginner, ds hr.Dataset) (seeded bool, err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("db: seed begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var existing int
	if err = tx.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&existing); err != nil {
		return false, fmt.Errorf("db: seed count employees: %w", err)
	}
	if existing > 0 {
		err = tx.Rollback(ctx)
		return false, err
	}

	steps := []func(context.Context, pgx.Tx, hr.Dataset) error{
		seedEmployees,
		seedAttendance,
		seedPayroll,
		seedCompensation,
		seedProviders,
		seedBenefits,
		seedActivities,
		seedBaselines,
	}
	for _, step := range steps {
		if err = step(ctx, tx, ds); err != nil {
			return false, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("db: seed commit: %w", err)
	}
	return true, nil
}

func exec(ctx context.Context, tx pgx.Tx, table, id, sqlText string, args ...any) error {
	if _, err := tx.Exec(ctx, sqlText, args...); err != nil {
		return fmt.Errorf("db: seed %s %s: %w", table, id, err)
	}
	return nil
}

func seedEmployees(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, e := range ds.Employees {
		err := exec(ctx, tx, "employees", e.ID, `
      INSERT INTO employees (id, name, position, department, email, phone, status, start_date, salary)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
      ON CONFLICT (id) DO NOTHING`,
			e.ID, e.Name, e.Position, e.Department, e.Email, e.Phone, string(e.Status), e.StartDate.Time(time.UTC), e.Salary)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAttendance(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, a := range ds.Attendance {
		err := exec(ctx, tx, "attendance_records", a.ID, `
      INSERT INTO attendance_records (id, employee_id, work_date, check_in, check_out, status, total_hours)
      VALUES ($1, $2, $3, $4, $5, $6, $7)
      ON CONFLICT (id) DO NOTHING`,
			a.ID, a.Employee.ID, a.Date.Time(time.UTC), a.CheckIn, a.CheckOut, string(a.Status), a.TotalHours)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPayroll(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, p := range ds.Payroll {
		d := p.Deductions
		err := exec(ctx, tx, "payroll_records", p.ID, `
      INSERT INTO payroll_records (id, employee_id, period, base_salary, overtime, bonuses, sss, phil_health, pag_ibig, tax, net_pay, status)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
      ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Employee.ID, p.Period, p.BaseSalary, p.Overtime, p.Bonuses, d.SSS, d.PhilHealth, d.PagIbig, d.Tax, p.NetPay, string(p.Status))
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCompensation(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, c := range ds.Compensation {
		inc, mv := c.LastIncrease, c.MarketValue
		err := exec(ctx, tx, "compensation_records", c.ID, `
      INSERT INTO compensation_records (id, employee_id, current_salary, salary_grade,
        last_increase_date, last_increase_amount, last_increase_percentage, last_increase_reason,
        next_review, performance_rating, market_min, market_max, market_median)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
      ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Employee.ID, c.CurrentSalary, c.SalaryGrade,
			inc.Date.Time(time.UTC), inc.Amount, inc.Percentage, inc.Reason,
			c.NextReview.Time(time.UTC), c.PerformanceRating, mv.Min, mv.Max, mv.Median)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProviders(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, p := range ds.HealthProviders {
		err := exec(ctx, tx, "health_providers", p.ID, `
      INSERT INTO health_providers (id, name, provider_type, coverage, monthly_premium, max_benefit, network)
      VALUES ($1, $2, $3, $4, $5, $6, $7)
      ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, string(p.Type), p.Coverage, p.MonthlyPremium, p.MaxBenefit, p.Network)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBenefits(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, b := range ds.Benefits {
		en := b.Enrollments
		err := exec(ctx, tx, "benefit_enrollments", b.ID, `
      INSERT INTO benefit_enrollments (id, employee_id, hmo_provider, life, dental, travel, training, dependents, total_cost, status)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
      ON CONFLICT (id) DO NOTHING`,
			b.ID, b.Employee.ID, en.HMO, en.Life, en.Dental, en.Travel, en.Training, b.Dependents, b.TotalCost, string(b.Status))
		if err != nil {
			return err
		}
	}
	return nil
}

func seedActivities(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, a := range ds.Activities {
		err := exec(ctx, tx, "activities", a.ID, `
      INSERT INTO activities (id, activity_type, message, status, occurred_at)
      VALUES ($1, $2, $3, $4, $5)
      ON CONFLICT (id) DO NOTHING`,
			a.ID, string(a.Type), a.Message, string(a.Status), a.OccurredAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBaselines(ctx context.Context, tx pgx.Tx, ds hr.Dataset) error {
	for _, b := range ds.Baselines {
		err := exec(ctx, tx, "metric_baselines", b.Metric, `
      INSERT INTO metric_baselines (metric, value, period)
      VALUES ($1, $2, $3)
      ON CONFLICT (metric) DO NOTHING`,
			b.Metric, b.Value, b.Period)
		if err != nil {
			return err
		}
	}
	return nil
}
