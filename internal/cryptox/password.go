// Package cryptox contains the password hashing primitives used by the
// credential flows.
package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a one-way bcrypt hash of the given plaintext.
// bcrypt embeds its own salt and cost parameters in the output, so
// verification needs nothing besides the hash itself.
//
// Rejecting empty plaintexts is the caller's job; this function only
// fails if bcrypt itself does (e.g. plaintext longer than 72 bytes).
func HashPassword(plaintext []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(plaintext, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// Any failure, including a malformed hash, is reported as false — the
// caller never has to distinguish "wrong password" from "broken record".
func VerifyPassword(plaintext []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), plaintext) == nil
}
