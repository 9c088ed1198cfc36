// Package service contains the business logic sitting between handlers and repositories.
package service

import (
	"context"

	"devlog/internal/auth"
	"devlog/internal/models"
	"devlog/internal/observability"
	"devlog/internal/repository"
)

// AuthService verifies credentials and mints session tokens.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	salt     string
}

// NewAuthService wires the credential verifier with its dependencies.
// salt may be empty to use the application default.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, salt string) *AuthService {
	if salt == "" {
		salt = auth.DefaultSalt
	}
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		salt:     salt,
	}
}

// TokenTTL exposes the session lifetime so the transport can align cookie expiry.
func (s *AuthService) TokenTTL() int {
	return int(s.tokens.TTL().Seconds())
}

// Login verifies the email/password pair and returns a signed session token
// with the public identity projection. Unknown email and wrong password fail
// with the identical credentials error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.PublicUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		observability.LoginAttempts.WithLabelValues("error").Inc()
		return "", nil, err
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash, s.salt) {
		observability.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return "", nil, models.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		observability.LoginAttempts.WithLabelValues("error").Inc()
		return "", nil, models.NewInternalError(err)
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	return token, user.Public(), nil
}
