package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/dashboard"
)

const digestTimeout = 2 * time.Minute

// ReviewSource lists compensation reviews due on a date.
type ReviewSource interface {
	Today() calendar.Date
	ReviewsDue(ctx context.Context, asOf calendar.Date) ([]dashboard.CompensationRow, error)
}

// Digest summarises the reviews found by one run.
type Digest struct {
	AsOf    calendar.Date
	Due     int
	Overdue int
	Names   []string
}

// Scheduler runs the review-due digest on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	reviews  ReviewSource
	logger   *zap.Logger
}

// NewScheduler validates schedule up front. Times are interpreted in loc.
func NewScheduler(schedule string, loc *time.Location, reviews ReviewSource, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("jobs: schedule %q: %w", schedule, err)
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		schedule: schedule,
		reviews:  reviews,
		logger:   logger,
	}, nil
}

func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	if _, err := s.cron.AddFunc(s.schedule, s.runScheduled); err != nil {
		return fmt.Errorf("jobs: add review digest: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop waits for a running digest to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("stopping scheduler")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()
	if _, err := s.RunNow(ctx); err != nil {
		s.logger.Error("review digest failed", zap.Error(err))
	}
}

// RunNow builds and logs the digest for today.
func (s *Scheduler) RunNow(ctx context.Context) (Digest, error) {
	asOf := s.reviews.Today()
	rows, err := s.reviews.ReviewsDue(ctx, asOf)
	if err != nil {
		return Digest{}, fmt.Errorf("jobs: review digest: %w", err)
	}

	digest := Digest{AsOf: asOf, Due: len(rows), Names: make([]string, 0, len(rows))}
	for _, row := range rows {
		if row.ReviewOverdue {
			digest.Overdue++
		}
		digest.Names = append(digest.Names, row.Name)
	}

	s.logger.Info("review digest",
		zap.String("asOf", asOf.String()),
		zap.Int("due", digest.Due),
		zap.Int("overdue", digest.Overdue),
		zap.Strings("employees", digest.Names),
	)
	return digest, nil
}
