package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Each increment doubles the hashing time.
const hashCost = 10

// HashPassword hashes a password using bcrypt. The salt is generated per call,
// so hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the bcrypt digest.
// A malformed digest is treated as a mismatch, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
