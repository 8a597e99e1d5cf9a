// Package auth implements the authentication primitives of goboard:
// bcrypt password hashing and HMAC-signed access tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// maxPasswordBytes is the bcrypt input limit. Passwords longer than this are
// truncated before hashing and verification, so two passwords that differ
// only beyond byte 72 produce the same hash. This matches the behavior of
// the underlying primitive and is accepted, documented behavior.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword returns a bcrypt hash of the password with a fresh random
// salt. The hash encodes the salt and cost, so no extra storage is needed.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Comparison is delegated to bcrypt, which is constant-time with respect to
// the mismatch position. A malformed stored hash yields false, never a panic.
func VerifyPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
