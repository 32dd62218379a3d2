// Package hash wraps bcrypt for password storage. Hashing embeds a random
// per-call salt, so equal plaintexts produce different hashes.
package hash

import "golang.org/x/crypto/bcrypt"

// Password returns the bcrypt hash of a plaintext password.
func Password(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. Any failure,
// including a malformed or truncated hash, is reported as false.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
