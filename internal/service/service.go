// Package service is the runtime-facing entry point: it serves level
// definitions through an optional cache, settles yields and payouts, and
// records a ledger of finished runs. It is an explicitly constructed object;
// nothing here is global.
package service

import (
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/runevault/internal/storage"
	"github.com/samdwyer/runevault/internal/telemetry"
	"github.com/samdwyer/runevault/internal/yield"
)

// ErrNotConfigured is returned by operations that need a store when none was
// provided.
var ErrNotConfigured = errors.New("service: storage is not configured")

// Service coordinates generation, scoring and persistence.
type Service struct {
	levels  storage.LevelStore
	payouts storage.PayoutStore
	engine  yield.Engine
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithStore uses store for both the level cache and the payout ledger.
func WithStore(store storage.Store) Option {
	return func(s *Service) {
		s.levels = store
		s.payouts = store
	}
}

// WithEngine sets the yield engine, e.g. to apply a combo cap.
func WithEngine(engine yield.Engine) Option {
	return func(s *Service) { s.engine = engine }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithTracer sets the tracer used for service spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) { s.tracer = tracer }
}

// New creates a Service. By default it has no stores, discards logs and
// uses the global tracer provider.
func New(opts ...Option) *Service {
	s := &Service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: telemetry.Tracer("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
