package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record("/api/v1/dashboard/overview", 200, 10*time.Millisecond)
	c.Record("/api/v1/dashboard/overview", 400, 20*time.Millisecond)
	c.Record("/api/v1/payroll/{recordID}/payslip", 500, 30*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(3) {
		t.Fatalf("expected 3 requests, got %v", snap["requestsTotal"])
	}
	if snap["clientErrorsTotal"] != uint64(1) {
		t.Fatalf("expected 1 client error, got %v", snap["clientErrorsTotal"])
	}
	if snap["serverErrorsTotal"] != uint64(1) {
		t.Fatalf("expected 1 server error, got %v", snap["serverErrorsTotal"])
	}
	if snap["avgDurationMs"] != float64(20) {
		t.Fatalf("expected avg 20ms, got %v", snap["avgDurationMs"])
	}
	routes := snap["requestsByRoute"].(map[string]uint64)
	if routes["/api/v1/dashboard/overview"] != 2 {
		t.Fatalf("expected 2 overview requests, got %v", routes)
	}
}

func TestCollectorEmptySnapshot(t *testing.T) {
	snap := New().Snapshot()
	if snap["avgDurationMs"] != float64(0) {
		t.Fatalf("expected zero average, got %v", snap["avgDurationMs"])
	}
}

func TestCollectorConcurrentRecord(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Record("/healthz", 200, time.Millisecond)
		}()
	}
	wg.Wait()
	if got := c.Snapshot()["requestsTotal"]; got != uint64(50) {
		t.Fatalf("expected 50 requests, got %v", got)
	}
}
