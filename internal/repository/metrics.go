package repository

import (
	"context"
	"errors"

	"devlog/internal/models"

	"gorm.io/gorm"
)

// MetricsRepository defines persistence operations for per-slug view/like
// counters. Increments are single atomic statements evaluated at the store;
// there is no read-modify-write path that could lose concurrent updates.
type MetricsRepository interface {
	IncrementView(ctx context.Context, slug string) (*models.PostMetrics, error)
	IncrementLike(ctx context.Context, slug string) (*models.PostMetrics, error)
	GetBySlug(ctx context.Context, slug string) (*models.PostMetrics, error)
}

type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository returns a new MetricsRepository implementation.
func NewMetricsRepository(db *gorm.DB) MetricsRepository {
	return &metricsRepository{db: db}
}

const incrementViewSQL = `
INSERT INTO post_metrics (slug, views, likes, updated_at)
VALUES (?, 1, 0, NOW())
ON CONFLICT (slug) DO UPDATE
SET views = post_metrics.views + 1, updated_at = NOW()
RETURNING slug, views, likes, updated_at`

const incrementLikeSQL = `
INSERT INTO post_metrics (slug, views, likes, updated_at)
VALUES (?, 0, 1, NOW())
ON CONFLICT (slug) DO UPDATE
SET likes = post_metrics.likes + 1, updated_at = NOW()
RETURNING slug, views, likes, updated_at`

func (r *metricsRepository) upsertIncrement(ctx context.Context, query, slug string) (*models.PostMetrics, error) {
	var m models.PostMetrics
	if err := r.db.WithContext(ctx).Raw(query, slug).Scan(&m).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &m, nil
}

// IncrementView records one view for the slug, creating the row lazily, and
// returns the post-increment snapshot.
func (r *metricsRepository) IncrementView(ctx context.Context, slug string) (*models.PostMetrics, error) {
	return r.upsertIncrement(ctx, incrementViewSQL, slug)
}

// IncrementLike records one like for the slug, creating the row lazily, and
// returns the post-increment snapshot.
func (r *metricsRepository) IncrementLike(ctx context.Context, slug string) (*models.PostMetrics, error) {
	return r.upsertIncrement(ctx, incrementLikeSQL, slug)
}

// GetBySlug returns (nil, nil) for slugs that have never been recorded;
// callers render that as a zero-valued snapshot.
func (r *metricsRepository) GetBySlug(ctx context.Context, slug string) (*models.PostMetrics, error) {
	var m models.PostMetrics
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &m, nil
}
