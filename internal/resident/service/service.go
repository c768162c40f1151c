package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"residents/internal/platform/metrics"
	"residents/internal/resident/models"
	dErrors "residents/pkg/domain-errors"
	"residents/pkg/platform/sentinel"
	"residents/pkg/requestcontext"
)

const tracerName = "residents/internal/resident/service"

// Store is the registry's backing collection.
type Store interface {
	Create(ctx context.Context, in models.NewResident) (models.Resident, error)
	List(ctx context.Context) ([]models.Resident, error)
	Delete(ctx context.Context, id int64) error
}

// Service orchestrates resident registry operations.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a validated resident and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, in models.NewResident) (models.Resident, error) {
	ctx, span := s.tracer.Start(ctx, "resident.create")
	defer span.End()

	r, err := s.store.Create(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return models.Resident{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create resident")
	}
	span.SetAttributes(attribute.Int64("resident.id", r.ID))

	s.logger.InfoContext(ctx, "resident created",
		"resident_id", r.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.IncrementResidentsCreated()
	}
	return r, nil
}

// List returns every resident in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Resident, error) {
	ctx, span := s.tracer.Start(ctx, "resident.list")
	defer span.End()

	residents, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list residents")
	}
	span.SetAttributes(attribute.Int("resident.count", len(residents)))
	return residents, nil
}

// Delete removes the resident with the given ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "resident.delete", trace.WithAttributes(attribute.Int64("resident.id", id)))
	defer span.End()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, models.MessageResidentNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete resident")
	}

	s.logger.InfoContext(ctx, "resident deleted",
		"resident_id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.IncrementResidentsDeleted()
	}
	return nil
}
