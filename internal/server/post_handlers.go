package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts with limit/offset pagination and an
// optional category filter.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	categorySlug := c.Query("category")

	posts, err := s.postService.ListPublished(c.Context(), p.Limit, p.Offset, categorySlug)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":  posts,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetPost handles GET /api/posts/:slug for published posts only.
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPublished(c.Context(), c.Params("slug"))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
