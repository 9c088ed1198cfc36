package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"devlog/internal/models"
)

// Login handles POST /api/auth/login. On success it sets the session cookie
// and returns the public user identity; both failure modes (unknown email,
// wrong password) produce the same 401 body.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	token, user, err := s.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondAppError(c, err)
	}

	s.setSessionCookie(c, token, s.authService.TokenTTL())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
// Tokens are not revoked server-side; the cookie removal is best effort for
// browser clients.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.setSessionCookie(c, "", -1)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func (s *Server) setSessionCookie(c *fiber.Ctx, token string, maxAge int) {
	cookie := fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = maxAge
	} else {
		// Expire immediately (logout).
		cookie.Expires = time.Now().Add(-time.Hour)
	}
	c.Cookie(&cookie)
}
