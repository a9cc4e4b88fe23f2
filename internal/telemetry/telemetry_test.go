package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background())
	if err != nil {
		t.Fatalf("newResource() error: %v", err)
	}

	got, ok := res.Set().Value(attribute.Key("service.name"))
	if !ok || got.AsString() != serviceName {
		t.Errorf("service.name = %v, want %q", got.AsString(), serviceName)
	}
}

func TestExporterOptions(t *testing.T) {
	tests := []struct {
		endpoint string
		want     int
	}{
		{"", 0},
		{"   ", 0},
		{"http://localhost:4318", 1},
		{"collector:4318", 2},
	}
	for _, tt := range tests {
		if got := len(exporterOptions(tt.endpoint)); got != tt.want {
			t.Errorf("exporterOptions(%q) has %d options, want %d", tt.endpoint, got, tt.want)
		}
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("noop tracer produced a valid span context")
	}
}
