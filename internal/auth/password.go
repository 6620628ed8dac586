package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt hash of the plaintext. Cost is the
// library default (10 rounds), matching every hash the store has ever held.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// bcrypt's compare primitive is constant-time on the digest.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
