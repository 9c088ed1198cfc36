package server

import (
	"errors"
	"strings"

	"devlog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header,
// returning "" when the header is absent or malformed.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// respondAppError maps an AppError code to its HTTP status and writes the
// standard error body. Upstream failures, unknown codes and plain errors all
// fall through to an opaque 500.
func respondAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "VALIDATION_ERROR":
		status = fiber.StatusBadRequest
	case "INVALID_CREDENTIALS", "UNAUTHORIZED":
		status = fiber.StatusUnauthorized
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	}
	return models.RespondWithError(c, status, appErr)
}
