package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/dashboard"
	"hrdash/internal/platform/fixtures"
)

type failingSource struct{}

func (failingSource) Today() calendar.Date { return calendar.New(2024, time.November, 27) }

func (failingSource) ReviewsDue(context.Context, calendar.Date) ([]dashboard.CompensationRow, error) {
	return nil, errors.New("store offline")
}

func newSource(t *testing.T) *dashboard.Service {
	t.Helper()
	ds, err := fixtures.Load("")
	require.NoError(t, err)
	manila := time.FixedZone("PHT", 8*60*60)
	return dashboard.NewService(fixtures.NewStore(ds),
		dashboard.WithClock(func() time.Time { return time.Date(2024, time.November, 27, 8, 0, 0, 0, manila) }),
		dashboard.WithLocation(manila),
	)
}

func TestRunNowLogsDigest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s, err := NewScheduler("0 8 * * 1", time.UTC, newSource(t), zap.New(core))
	require.NoError(t, err)

	digest, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calendar.New(2024, time.November, 27), digest.AsOf)
	assert.Equal(t, 3, digest.Due)
	assert.Equal(t, 2, digest.Overdue)
	assert.Equal(t, []string{"Robert Garcia", "Sarah Wilson", "John Dela Cruz"}, digest.Names)

	entries := logs.FilterMessage("review digest").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(3), fields["due"])
	assert.Equal(t, int64(2), fields["overdue"])
	assert.Equal(t, "2024-11-27", fields["asOf"])
}

func TestRunNowWrapsSourceError(t *testing.T) {
	s, err := NewScheduler("@daily", nil, failingSource{}, nil)
	require.NoError(t, err)

	_, err = s.RunNow(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store offline")
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	if _, err := NewScheduler("every monday", time.UTC, failingSource{}, nil); err == nil {
		t.Fatal("expected invalid schedule error")
	}
}

func TestStartStop(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s, err := NewScheduler("0 8 * * 1", time.UTC, failingSource{}, zap.New(core))
	require.NoError(t, err)

	require.NoError(t, s.Start())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	assert.Equal(t, 1, logs.FilterMessage("starting scheduler").Len())
	assert.Equal(t, 1, logs.FilterMessage("stopping scheduler").Len())
}
