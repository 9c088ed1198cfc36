package server

import (
	"github.com/gofiber/fiber/v2"

	"devlog/internal/models"
)

// RecordView handles POST /api/metrics/view. Every call increments; client
// dedup of repeat views is not attempted here.
func (s *Server) RecordView(c *fiber.Ctx) error {
	slug, ok := parseSlugBody(c)
	if !ok {
		return nil
	}

	snap, err := s.metricsService.RecordView(c.Context(), slug)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(snap)
}

// RecordLike handles POST /api/metrics/like.
func (s *Server) RecordLike(c *fiber.Ctx) error {
	slug, ok := parseSlugBody(c)
	if !ok {
		return nil
	}

	snap, err := s.metricsService.RecordLike(c.Context(), slug)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(snap)
}

// GetMetrics handles GET /api/metrics/:slug. Unknown slugs read as zeros.
func (s *Server) GetMetrics(c *fiber.Ctx) error {
	slug := c.Params("slug")

	snap, err := s.metricsService.GetMetrics(c.Context(), slug)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"slug":  slug,
		"views": snap.Views,
		"likes": snap.Likes,
	})
}

// parseSlugBody extracts the slug from a {"slug": "..."} request body. On
// failure it writes the 400 response and reports false.
func parseSlugBody(c *fiber.Ctx) (string, bool) {
	var req struct {
		Slug string `json:"slug"`
	}
	if err := c.BodyParser(&req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return "", false
	}
	if req.Slug == "" {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Slug is required"))
		return "", false
	}
	return req.Slug, true
}
