package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	// saltBytes is the number of random bytes in a password salt
	// (32 hex characters once encoded).
	saltBytes = 16

	// apiKeyBytes is the number of random bytes in an issued API key
	// (48 hex characters once encoded).
	apiKeyBytes = 24
)

// GenerateSalt produces a cryptographically random password salt,
// hex-encoded.
func GenerateSalt() (string, error) {
	return randomHex(saltBytes)
}

// GenerateAPIKey produces a cryptographically random bearer token,
// hex-encoded. The token is generated independently of any password salt.
func GenerateAPIKey() (string, error) {
	return randomHex(apiKeyBytes)
}

// HashPassword computes the hex-encoded SHA-256 digest of the salt string
// concatenated with the password. Deterministic for a given (password, salt)
// pair; no side effects.
func HashPassword(password, salt string) string {
	digest := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(digest[:])
}

// VerifyPassword recomputes the digest for password with the given salt and
// compares it to expectedDigest. The comparison is constant-time so that a
// mismatch reveals nothing about how close the guess was.
func VerifyPassword(password, salt, expectedDigest string) bool {
	digest := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(expectedDigest)) == 1
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
