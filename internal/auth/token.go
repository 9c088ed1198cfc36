package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenIssuer and TokenAudience are checked on every verification.
	TokenIssuer   = "devlog-api"
	TokenAudience = "devlog-web"

	// DefaultTokenTTL is how long a minted session token stays valid.
	// There is no server-side revocation list; a leaked token remains valid
	// until expiry (known gap, out of scope here).
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed payload, wrong signing method, wrong issuer/audience, or expiry.
// Callers must treat it as "unauthenticated", never as a crash.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the verified claim set carried by a session token.
type Claims struct {
	UserID string
	Email  string
}

// TokenService mints and verifies HS256-signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with secret. A zero ttl
// falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (t *TokenService) TTL() time.Duration {
	return t.ttl
}

// Sign mints a session token for the given identity.
func (t *TokenService) Sign(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iss":   TokenIssuer,
		"aud":   TokenAudience,
		"exp":   now.Add(t.ttl).Unix(),
		"iat":   now.Unix(),
		"jti":   generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the token cryptographically plus issuer/audience/expiry and
// returns the identity claims. Any failure yields ErrInvalidToken; the
// function never returns a valid-looking claim set alongside an error.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != TokenIssuer {
		return nil, ErrInvalidToken
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != TokenAudience {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Claims{UserID: sub, Email: email}, nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
