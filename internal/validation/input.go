// Package validation contains input validation for the transport boundary.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const maxSlugLength = 200

// ValidateEmail checks presence and format of an email address.
// Presence and format are distinct failures by contract: a missing email is a
// hard input error, not an "already exists" case.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidateSlug checks a content slug: lowercase letters, digits and single
// hyphens, no leading/trailing hyphen.
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.New("slug is required")
	}
	if len(slug) > maxSlugLength {
		return fmt.Errorf("slug must be at most %d characters", maxSlugLength)
	}
	if !slugRegex.MatchString(slug) {
		return errors.New("slug may contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ValidatePassword enforces a minimal length for submitted passwords.
// Digest comparison happens downstream; this only rejects obvious junk early.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}
