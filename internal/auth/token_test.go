package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret"

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, ttl)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("empty secret is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewTokenService("", time.Hour)
		require.Error(t, err)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testSecret, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultTokenTTL, svc.TTL())
	})
}

func TestTokenRoundtrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Sign("user-1", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	signHMAC := func(claims jwt.MapClaims, secret string) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	baseClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "user-1",
			"iss": TokenIssuer,
			"aud": TokenAudience,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage input", token: "not-a-token"},
		{name: "empty input", token: ""},
		{
			name: "wrong signing secret",
			token: func() string {
				return signHMAC(baseClaims(), "some-other-secret")
			}(),
		},
		{
			name: "expired token",
			token: func() string {
				claims := baseClaims()
				claims["exp"] = time.Now().Add(-time.Minute).Unix()
				return signHMAC(claims, testSecret)
			}(),
		},
		{
			name: "wrong issuer",
			token: func() string {
				claims := baseClaims()
				claims["iss"] = "someone-else"
				return signHMAC(claims, testSecret)
			}(),
		},
		{
			name: "wrong audience",
			token: func() string {
				claims := baseClaims()
				claims["aud"] = "other-app"
				return signHMAC(claims, testSecret)
			}(),
		},
		{
			name: "missing subject",
			token: func() string {
				claims := baseClaims()
				delete(claims, "sub")
				return signHMAC(claims, testSecret)
			}(),
		},
		{
			name: "alg none",
			token: func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims()).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			}(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Sign("user-1", "admin@example.com")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	claims, err := svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
