// Package crypto implements the salted password hashing used by the user
// store: PBKDF2-HMAC-SHA256 with a per-user random salt, hex encoded.
package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 200000
	pbkdf2KeyLength  = 32
	saltLength       = 16
)

// GenerateSalt returns a fresh random salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives a key from the password and salt and returns it as a
// hex string, suitable for storing next to the hex-encoded salt.
func HashPassword(password string, salt []byte) string {
	dk := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(dk)
}

// VerifyPassword recomputes the hash for the candidate password and compares
// it against the stored hex hash in constant time.
func VerifyPassword(password string, salt []byte, storedHex string) bool {
	candidate := HashPassword(password, salt)
	return hmac.Equal([]byte(candidate), []byte(storedHex))
}
