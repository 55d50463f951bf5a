package shared

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"hrdash/internal/domain/calendar"
)

func TestParseDate(t *testing.T) {
	req := httptest.NewRequest("GET", "/?date=2024-11-27", nil)
	d, err := ParseDate(req, "date")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != calendar.New(2024, time.November, 27) {
		t.Fatalf("expected 2024-11-27, got %v", d)
	}
}

func TestParseDateMissing(t *testing.T) {
	d, err := ParseDate(httptest.NewRequest("GET", "/", nil), "date")
	if err != nil || !d.IsZero() {
		t.Fatalf("expected zero date, got %v (%v)", d, err)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate(httptest.NewRequest("GET", "/?asOf=2024-02-30", nil), "asOf")
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}
