package service

import (
	"context"
	"time"

	"devlog/internal/models"
	"devlog/internal/repository"
	"devlog/internal/validation"

	"github.com/google/uuid"
)

// PostService serves the thin content API: public reads of published
// articles and authenticated draft/update writes.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput is the admin payload for creating a draft.
type CreatePostInput struct {
	AuthorID   string
	Title      string
	Slug       string
	Content    string
	CategoryID *string
}

// UpdatePostInput is the admin payload for updating an article. Nil fields
// are left unchanged.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	Summary   *string
	SeoMeta   *string
	Published *bool
}

// NewPostService returns a PostService backed by the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListPublished returns published posts, newest first.
func (s *PostService) ListPublished(ctx context.Context, limit, offset int, categorySlug string) ([]*models.Post, error) {
	return s.postRepo.ListPublished(ctx, limit, offset, categorySlug)
}

// GetPublished returns a single published post by slug.
func (s *PostService) GetPublished(ctx context.Context, slug string) (*models.Post, error) {
	return s.postRepo.GetBySlug(ctx, slug, false)
}

// CreateDraft persists a new unpublished article owned by authorID.
func (s *PostService) CreateDraft(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}
	if err := validation.ValidateSlug(in.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	now := time.Now()
	post := &models.Post{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Slug:       in.Slug,
		Content:    in.Content,
		Published:  false,
		AuthorID:   in.AuthorID,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies the non-nil fields of in to the post identified by slug,
// drafts included, and bumps the updated timestamp.
func (s *PostService) UpdatePost(ctx context.Context, slug string, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Summary != nil {
		post.Summary = *in.Summary
	}
	if in.SeoMeta != nil {
		post.SeoMeta = *in.SeoMeta
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// SetCoverImage persists the uploaded cover URL on the post.
func (s *PostService) SetCoverImage(ctx context.Context, slug, coverURL string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	post.CoverImage = coverURL
	post.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
