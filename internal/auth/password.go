// ABOUTME: Password hashing and verification using bcrypt
// ABOUTME: Includes a dummy comparison to keep unknown-user logins constant time

package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a bcrypt hash of an unused password. Login paths that bail out
// before reaching a real hash still burn one comparison against it so response
// timing does not reveal whether a username exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a salted bcrypt hash from the plaintext password.
// A hashing fault indicates a broken runtime, not a bad request.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnComparison performs a bcrypt comparison against the dummy hash.
// Call it on paths that reject before a real password check.
func BurnComparison(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
