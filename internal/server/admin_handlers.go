package server

import (
	"github.com/gofiber/fiber/v2"

	"devlog/internal/models"
	"devlog/internal/service"
)

// GenerateMeta handles POST /api/admin/generate-meta by delegating the post
// content to the AI gateway and returning the generated summary.
func (s *Server) GenerateMeta(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	summary, err := s.metaService.GenerateMeta(c.Context(), req.Content)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"summary": summary,
	})
}

// CreatePost handles POST /api/admin/posts. New posts start as drafts owned
// by the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title      string  `json:"title"`
		Slug       string  `json:"slug"`
		Content    string  `json:"content"`
		CategoryID *string `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	authorID, _ := c.Locals("userID").(string)

	post, err := s.postService.CreateDraft(c.Context(), service.CreatePostInput{
		AuthorID:   authorID,
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/admin/posts/:slug. Absent fields are left
// unchanged; drafts are addressable here.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req struct {
		Title     *string `json:"title"`
		Content   *string `json:"content"`
		Summary   *string `json:"summary"`
		SeoMeta   *string `json:"seo_meta"`
		Published *bool   `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), c.Params("slug"), service.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		SeoMeta:   req.SeoMeta,
		Published: req.Published,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// UploadCover handles POST /api/admin/posts/:slug/cover as a multipart form
// with a "cover" file field. Requires media storage to be configured.
func (s *Server) UploadCover(c *fiber.Ctx) error {
	if s.media == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewUpstreamError("Media storage is not configured", nil))
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A cover file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer file.Close()

	slug := c.Params("slug")
	coverURL, err := s.media.UploadCover(c.Context(), slug, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return respondAppError(c,
			models.NewUpstreamError("Cover upload failed", err))
	}

	post, err := s.postService.SetCoverImage(c.Context(), slug, coverURL)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
