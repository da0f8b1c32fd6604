// Package auth provides the anonymous contributor token scheme and
// validation of access tokens issued by the external identity provider.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// tokenBytes is the size of a raw contributor token (256 bits).
	tokenBytes = 32

	// hashIterations is the PBKDF2 round count. Raising it invalidates
	// every stored hash, so it is fixed rather than configurable.
	hashIterations = 120_000

	// hashKeyLen is the derived key size in bytes (128 hex chars).
	hashKeyLen = 64

	// DefaultTokenSalt is an insecure fallback used when AUTH_TOKEN_SALT
	// is unset. Test-only — never deploy with it.
	DefaultTokenSalt = "transpayra-dev-salt-do-not-use-in-production"
)

// GenerateToken returns a fresh 256-bit contributor token encoded as a
// 64-character lowercase hex string. The client holds the raw token; only
// its hash is ever stored.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// TokenHasher derives storage-safe hashes from raw contributor tokens.
// Hashing is deterministic for a fixed salt, so the hash doubles as the
// lookup key for anonymous submissions.
type TokenHasher struct {
	salt []byte
}

// NewTokenHasher creates a TokenHasher with the given salt. An empty salt
// falls back to DefaultTokenSalt.
func NewTokenHasher(salt string) *TokenHasher {
	if salt == "" {
		salt = DefaultTokenSalt
	}
	return &TokenHasher{salt: []byte(salt)}
}

// Hash derives a 128-character lowercase hex digest of the token using
// PBKDF2-SHA512 with 120k iterations.
func (h *TokenHasher) Hash(token string) string {
	key := pbkdf2.Key([]byte(token), h.salt, hashIterations, hashKeyLen, sha512.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the hash of token and compares it to expected in
// constant time. Mismatched lengths compare as non-equal, never panic.
func (h *TokenHasher) Verify(token, expected string) bool {
	computed := h.Hash(token)
	if len(computed) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}
