package service

import (
	"context"

	"devlog/internal/models"
	"devlog/internal/observability"
	"devlog/internal/repository"
	"devlog/internal/validation"
)

// MetricsService wraps the per-slug view/like counters. Calls are not
// idempotent: every call increments. Client-side dedup (an "already liked"
// flag) is the caller's concern.
type MetricsService struct {
	metricsRepo repository.MetricsRepository
}

// NewMetricsService returns a MetricsService backed by the given repository.
func NewMetricsService(metricsRepo repository.MetricsRepository) *MetricsService {
	return &MetricsService{metricsRepo: metricsRepo}
}

// RecordView increments the view counter for slug and returns the
// post-increment snapshot.
func (s *MetricsService) RecordView(ctx context.Context, slug string) (models.MetricsSnapshot, error) {
	if err := validation.ValidateSlug(slug); err != nil {
		return models.MetricsSnapshot{}, models.NewValidationError(err.Error())
	}
	m, err := s.metricsRepo.IncrementView(ctx, slug)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	observability.CounterEvents.WithLabelValues("view").Inc()
	return m.Snapshot(), nil
}

// RecordLike increments the like counter for slug and returns the
// post-increment snapshot.
func (s *MetricsService) RecordLike(ctx context.Context, slug string) (models.MetricsSnapshot, error) {
	if err := validation.ValidateSlug(slug); err != nil {
		return models.MetricsSnapshot{}, models.NewValidationError(err.Error())
	}
	m, err := s.metricsRepo.IncrementLike(ctx, slug)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	observability.CounterEvents.WithLabelValues("like").Inc()
	return m.Snapshot(), nil
}

// GetMetrics returns the current counters for slug. Slugs that were never
// recorded read as zeros, never as an error.
func (s *MetricsService) GetMetrics(ctx context.Context, slug string) (models.MetricsSnapshot, error) {
	m, err := s.metricsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	if m == nil {
		return models.MetricsSnapshot{}, nil
	}
	return m.Snapshot(), nil
}
