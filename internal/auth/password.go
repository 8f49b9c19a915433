package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// MaxPasswordLen is the longest accepted password in bytes. bcrypt only reads
// the first 72 bytes of input, so longer passwords are rejected outright
// instead of being silently truncated.
const MaxPasswordLen = 72

// ErrPasswordTooLong is returned when a password exceeds MaxPasswordLen.
var ErrPasswordTooLong = errors.New("password longer than 72 bytes")

// HashPassword returns a salted bcrypt hash of password. The salt is random,
// so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLen {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Malformed hashes compare as false rather than erroring.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
