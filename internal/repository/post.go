package repository

import (
	"context"
	"errors"

	"devlog/internal/cache"
	"devlog/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for articles.
type PostRepository interface {
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Post, error)
	ListPublished(ctx context.Context, limit, offset int, categorySlug string) ([]*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// GetBySlug loads a post by its slug. The public read path (published only)
// goes through the cache-aside helper; admin reads that include drafts always
// hit the store.
func (r *postRepository) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Post, error) {
	var post models.Post

	fetch := func() error {
		q := r.db.WithContext(ctx).Preload("Author").Preload("Category").Where("slug = ?", slug)
		if !includeDrafts {
			q = q.Where("published = ?", true)
		}
		return q.First(&post).Error
	}

	var err error
	if includeDrafts {
		err = fetch()
	} else {
		err = cache.Aside(ctx, cache.PostKey(slug), &post, cache.PostTTL, fetch)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", slug)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListPublished returns published posts, newest first, optionally filtered by
// category slug.
func (r *postRepository) ListPublished(ctx context.Context, limit, offset int, categorySlug string) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("published = ?", true)

	if categorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	err := q.Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("A post with this slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.Slug)
	return nil
}
