package logging

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID(empty) = %q, want empty", got)
	}

	ctx := WithRequestID(context.Background(), "abc123")
	if got := RequestID(ctx); got != "abc123" {
		t.Errorf("RequestID() = %q, want %q", got, "abc123")
	}

	inner := WithRequestID(ctx, "def456")
	if got := RequestID(inner); got != "def456" {
		t.Errorf("RequestID(inner) = %q, want %q", got, "def456")
	}
	if got := RequestID(ctx); got != "abc123" {
		t.Errorf("RequestID(outer) = %q after shadowing, want %q", got, "abc123")
	}
}
