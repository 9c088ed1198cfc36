package service

import (
	"context"
	"testing"

	"devlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByEmailFn func(context.Context, string) (*models.User, error)
	getByIDFn    func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByIDFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

// metricsRepoStub is a stub for repository.MetricsRepository.
type metricsRepoStub struct {
	incrementViewFn func(context.Context, string) (*models.PostMetrics, error)
	incrementLikeFn func(context.Context, string) (*models.PostMetrics, error)
	getBySlugFn     func(context.Context, string) (*models.PostMetrics, error)
}

func (s *metricsRepoStub) IncrementView(ctx context.Context, slug string) (*models.PostMetrics, error) {
	return s.incrementViewFn(ctx, slug)
}
func (s *metricsRepoStub) IncrementLike(ctx context.Context, slug string) (*models.PostMetrics, error) {
	return s.incrementLikeFn(ctx, slug)
}
func (s *metricsRepoStub) GetBySlug(ctx context.Context, slug string) (*models.PostMetrics, error) {
	return s.getBySlugFn(ctx, slug)
}

// subscriberRepoStub is a stub for repository.SubscriberRepository.
type subscriberRepoStub struct {
	getByEmailFn func(context.Context, string) (*models.Subscriber, error)
	createFn     func(context.Context, *models.Subscriber) error
}

func (s *subscriberRepoStub) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *subscriberRepoStub) Create(ctx context.Context, sub *models.Subscriber) error {
	return s.createFn(ctx, sub)
}

func noopSubscriberRepo() *subscriberRepoStub {
	return &subscriberRepoStub{
		getByEmailFn: func(_ context.Context, _ string) (*models.Subscriber, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.Subscriber) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	getBySlugFn     func(context.Context, string, bool) (*models.Post, error)
	listPublishedFn func(context.Context, int, int, string) ([]*models.Post, error)
	createFn        func(context.Context, *models.Post) error
	updateFn        func(context.Context, *models.Post) error
}

func (s *postRepoStub) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug, includeDrafts)
}
func (s *postRepoStub) ListPublished(ctx context.Context, limit, offset int, categorySlug string) ([]*models.Post, error) {
	return s.listPublishedFn(ctx, limit, offset, categorySlug)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getBySlugFn:     func(_ context.Context, _ string, _ bool) (*models.Post, error) { return &models.Post{}, nil },
		listPublishedFn: func(_ context.Context, _, _ int, _ string) ([]*models.Post, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.Post) error { return nil },
		updateFn:        func(_ context.Context, _ *models.Post) error { return nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func assertInvalidCredentials(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}
