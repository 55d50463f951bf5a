package requestctx

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
	ctx := WithRequestID(context.Background(), "req-7")
	if got := GetRequestID(ctx); got != "req-7" {
		t.Fatalf("expected req-7, got %q", got)
	}
}
