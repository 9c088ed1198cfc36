package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devlog/internal/models"
	"devlog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMetricsRepository is a mock of the MetricsRepository interface
type MockMetricsRepository struct {
	mock.Mock
}

func (m *MockMetricsRepository) IncrementView(ctx context.Context, slug string) (*models.PostMetrics, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostMetrics), args.Error(1)
}

func (m *MockMetricsRepository) IncrementLike(ctx context.Context, slug string) (*models.PostMetrics, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostMetrics), args.Error(1)
}

func (m *MockMetricsRepository) GetBySlug(ctx context.Context, slug string) (*models.PostMetrics, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostMetrics), args.Error(1)
}

func newMetricsApp(mockRepo *MockMetricsRepository) *fiber.App {
	s := &Server{
		metricsService: service.NewMetricsService(mockRepo),
	}
	app := fiber.New()
	app.Post("/api/metrics/view", s.RecordView)
	app.Post("/api/metrics/like", s.RecordLike)
	app.Get("/api/metrics/:slug", s.GetMetrics)
	return app
}

func TestRecordView(t *testing.T) {
	t.Run("returns the incremented counters", func(t *testing.T) {
		mockRepo := new(MockMetricsRepository)
		mockRepo.On("IncrementView", mock.Anything, "my-first-post").
			Return(&models.PostMetrics{Slug: "my-first-post", Views: 6, Likes: 2}, nil)
		app := newMetricsApp(mockRepo)

		resp := postJSON(t, app, "/api/metrics/view", map[string]string{"slug": "my-first-post"})
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var snap models.MetricsSnapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
		assert.Equal(t, int64(6), snap.Views)
		assert.Equal(t, int64(2), snap.Likes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing slug is a 400", func(t *testing.T) {
		mockRepo := new(MockMetricsRepository)
		app := newMetricsApp(mockRepo)

		resp := postJSON(t, app, "/api/metrics/view", map[string]string{})
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockRepo.AssertNotCalled(t, "IncrementView")
	})

	t.Run("malformed slug is a 400", func(t *testing.T) {
		mockRepo := new(MockMetricsRepository)
		app := newMetricsApp(mockRepo)

		resp := postJSON(t, app, "/api/metrics/view", map[string]string{"slug": "Not A Slug"})
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockRepo.AssertNotCalled(t, "IncrementView")
	})
}

func TestRecordLike(t *testing.T) {
	mockRepo := new(MockMetricsRepository)
	mockRepo.On("IncrementLike", mock.Anything, "my-first-post").
		Return(&models.PostMetrics{Slug: "my-first-post", Views: 6, Likes: 3}, nil)
	app := newMetricsApp(mockRepo)

	resp := postJSON(t, app, "/api/metrics/like", map[string]string{"slug": "my-first-post"})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snap models.MetricsSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, int64(3), snap.Likes)
	mockRepo.AssertExpectations(t)
}

func TestGetMetrics(t *testing.T) {
	t.Run("known slug returns its counters", func(t *testing.T) {
		mockRepo := new(MockMetricsRepository)
		mockRepo.On("GetBySlug", mock.Anything, "my-first-post").
			Return(&models.PostMetrics{Slug: "my-first-post", Views: 10, Likes: 4}, nil)
		app := newMetricsApp(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/metrics/my-first-post", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Slug  string `json:"slug"`
			Views int64  `json:"views"`
			Likes int64  `json:"likes"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.Equal(t, "my-first-post", parsed.Slug)
		assert.Equal(t, int64(10), parsed.Views)
		assert.Equal(t, int64(4), parsed.Likes)
	})

	t.Run("unknown slug reads as zeros, not 404", func(t *testing.T) {
		mockRepo := new(MockMetricsRepository)
		mockRepo.On("GetBySlug", mock.Anything, "never-seen").Return(nil, nil)
		app := newMetricsApp(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/metrics/never-seen", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Views int64 `json:"views"`
			Likes int64 `json:"likes"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.Zero(t, parsed.Views)
		assert.Zero(t, parsed.Likes)
	})
}
