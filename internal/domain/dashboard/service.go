package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

// Service builds page view-models from one store snapshot per call.
type Service struct {
	store     hr.StoreAPI
	loc       *time.Location
	threshold int
	now       func() time.Time
	logger    *zap.Logger
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithReviewThreshold(days int) Option {
	return func(s *Service) {
		if days >= 0 {
			s.threshold = days
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(store hr.StoreAPI, opts ...Option) *Service {
	s := &Service{
		store:     store,
		loc:       time.UTC,
		threshold: metrics.DefaultReviewThresholdDays,
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar day in the service location.
func (s *Service) Today() calendar.Date {
	return calendar.Today(s.now(), s.loc)
}

func (s *Service) ReviewThreshold() int {
	return s.threshold
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) snapshot(ctx context.Context) (hr.Dataset, error) {
	ds, err := s.store.Snapshot(ctx)
	if err != nil {
		return hr.Dataset{}, fmt.Errorf("dashboard: snapshot: %w", err)
	}
	return ds, nil
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return Overview{}, err
	}
	now := s.now()
	today := calendar.Today(now, s.loc)
	attendanceDate := today
	if len(onDate(ds.Attendance, today)) == 0 {
		if latest, ok := LatestAttendanceDate(ds.Attendance); ok {
			attendanceDate = latest
		}
	}
	return BuildOverview(OverviewInput{
		Dataset:        ds,
		Now:            now,
		Today:          today,
		AttendanceDate: attendanceDate,
		ThresholdDays:  s.threshold,
	}), nil
}

func (s *Service) Employees(ctx context.Context, filter DirectoryFilter) (EmployeeDirectory, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return EmployeeDirectory{}, err
	}
	return BuildEmployeeDirectory(ds.Employees, filter), nil
}

// Attendance summarises date, or the latest recorded date when date is zero.
func (s *Service) Attendance(ctx context.Context, date calendar.Date) (AttendanceSummary, []ChartDay, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return AttendanceSummary{}, nil, err
	}
	if date.IsZero() {
		latest, ok := LatestAttendanceDate(ds.Attendance)
		if !ok {
			latest = s.Today()
		}
		date = latest
	}
	return BuildAttendanceSummary(ds.Attendance, date), BuildWeeklyChart(ds.Attendance, date), nil
}

func (s *Service) Payroll(ctx context.Context) (PayrollSummary, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return PayrollSummary{}, err
	}
	summary := BuildPayrollSummary(ds.Payroll)
	if !summary.Reconciled {
		s.logger.Warn("payroll records do not reconcile", zap.Error(metrics.ReconcilePayroll(ds.Payroll)))
	}
	return summary, nil
}

// Compensation evaluates reviews as of asOf, or today when asOf is zero.
func (s *Service) Compensation(ctx context.Context, asOf calendar.Date) (CompensationSummary, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return CompensationSummary{}, err
	}
	if asOf.IsZero() {
		asOf = s.Today()
	}
	return BuildCompensationSummary(ds.Compensation, asOf, s.threshold), nil
}

func (s *Service) Benefits(ctx context.Context) (BenefitsSummary, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return BenefitsSummary{}, err
	}
	return BuildBenefitsSummary(ds.Benefits, ds.HealthProviders), nil
}

// PayrollRecord returns hr.ErrNotFound for an unknown id.
func (s *Service) PayrollRecord(ctx context.Context, id string) (hr.PayrollRecord, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return hr.PayrollRecord{}, err
	}
	return ds.PayrollByID(id)
}

func (s *Service) ReviewsDue(ctx context.Context, asOf calendar.Date) ([]CompensationRow, error) {
	ds, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.Today()
	}
	return DueReviews(ds.Compensation, asOf, s.threshold), nil
}
