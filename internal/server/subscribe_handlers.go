package server

import (
	"github.com/gofiber/fiber/v2"

	"devlog/internal/models"
)

// Subscribe handles POST /api/subscribe. A new email is a 201; an already
// registered one is a 200 with the same response shape.
func (s *Server) Subscribe(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, message, err := s.subscriptionService.Subscribe(c.Context(), req.Email, req.Name)
	if err != nil {
		return respondAppError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}
