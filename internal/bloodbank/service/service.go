// Package service is the command/query façade over the bloodbank domain.
// Each operation validates input, evaluates the matching/eligibility rules,
// and touches the store under its locking discipline, returning a typed
// domain error (never a panic) on failure. This is the only surface the
// transport adapter calls.
package service

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"lifeline/internal/bloodbank/metrics"
	"lifeline/internal/bloodbank/models"
	"lifeline/internal/bloodbank/store"
)

// Service orchestrates validators, the matching engine, and the store.
type Service struct {
	store   *store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures optional service dependencies.
type Option func(s *Service)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics attaches the bloodbank metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the default tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs the façade over the given store.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		tracer: otel.Tracer("lifeline/bloodbank"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// RegisterDonorInput carries the raw registration fields. LastDonated is
// optional; nil means the donor has never donated.
type RegisterDonorInput struct {
	Name        string
	Email       string
	Mobile      string
	BloodType   string
	Location    string
	Gender      string
	LastDonated *time.Time
}

// RegisterReceiverInput carries the raw registration fields for a receiver.
type RegisterReceiverInput struct {
	Name     string
	Email    string
	Mobile   string
	Location string
	Gender   string
}

// PostRequestInput carries the raw fields of a new blood request.
type PostRequestInput struct {
	RequesterID  string
	BloodType    string
	HospitalArea string
	UnitsNeeded  int
	Seriousness  string
}

// DonationReceipt confirms a recorded donation.
type DonationReceipt struct {
	DonationID     models.DonationID
	RequestID      models.RequestID
	UnitsRemaining int
	RequestStatus  models.RequestStatus
	OccurredAt     time.Time
}

// DonorProfile is the read model for a single donor, including the
// time-dependent eligibility flag. LastDonatedAt is nil for donors who have
// never donated (rendered "Never" by the adapter).
type DonorProfile struct {
	ID            models.UserID
	Name          string
	Email         string
	BloodType     models.BloodType
	Location      string
	Mobile        string
	Gender        models.Gender
	LastDonatedAt *time.Time
	Eligible      bool
}
