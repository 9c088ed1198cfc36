// Package auth implements credential hashing and session token handling.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultSalt is the application-wide KDF salt. A shared static salt is a
	// known hardening gap (no per-user salting); it is kept because existing
	// digests were derived with it.
	DefaultSalt = "dynamic_blog_salt"

	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 32
)

// HashPassword derives a hex-encoded digest from the password using
// PBKDF2-SHA256 with 100k iterations. The iteration count is the cost knob
// against offline brute force; CPU time is the only side effect.
func HashPassword(password string, salt ...string) string {
	s := DefaultSalt
	if len(salt) > 0 {
		s = salt[0]
	}
	key := pbkdf2.Key([]byte(password), []byte(s), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword re-derives the digest and compares for exact equality.
// The comparison is not constant-time; flagged as a hardening gap rather
// than silently changed, since the stored format stays compatible either way.
func VerifyPassword(password, digest string, salt ...string) bool {
	return HashPassword(password, salt...) == digest
}
