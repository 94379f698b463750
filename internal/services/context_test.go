package services_test

import (
	"context"
	"testing"

	"medsum/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "req-123")
	ctx = services.WithFileName(ctx, "report.pdf")

	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
	if name, ok := services.FileNameFromContext(ctx); !ok || name != "report.pdf" {
		t.Fatalf("unexpected file name: %v %v", name, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "")
	ctx = services.WithFileName(ctx, "")
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id value")
	}
	if _, ok := services.FileNameFromContext(ctx); ok {
		t.Fatal("expected no file name value")
	}
}
