// ABOUTME: Unit tests for bcrypt password hashing and verification

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash %q is not a bcrypt hash", hash)
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() = false for the right password")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() = true for the wrong password")
	}
}

func TestHashPassword_SaltVaries(t *testing.T) {
	h1, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ by salt")
	}
	if !CheckPassword("pw", h1) || !CheckPassword("pw", h2) {
		t.Error("both hashes should verify")
	}
}

func TestCheckPassword_RejectsGarbageHash(t *testing.T) {
	if CheckPassword("pw", "not-a-bcrypt-hash") {
		t.Error("CheckPassword() should reject a malformed hash")
	}
}
