package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"present": 4}, "req-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
	var env struct {
		Success   bool           `json:"success"`
		Data      map[string]int `json:"data"`
		Error     *Error         `json:"error"`
		RequestID string         `json:"requestId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Data["present"] != 4 || env.Error != nil || env.RequestID != "req-1" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestFailWithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	FailWithDetails(rec, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", map[string]string{"param": "date"}, "req-2")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error == nil || env.Error.Code != "invalid_date" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	details, ok := env.Error.Details.(map[string]any)
	if !ok || details["param"] != "date" {
		t.Fatalf("expected details with param, got %#v", env.Error.Details)
	}
}
