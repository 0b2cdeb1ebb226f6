// ABOUTME: Tests for the SQLite credential store
// ABOUTME: Covers user creation, lookup, duplicate detection, and partial profile updates

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateUser(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := store.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
	if user.PasswordHash != "hash-1" {
		t.Errorf("PasswordHash = %q, want %q", user.PasswordHash, "hash-1")
	}
	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.FirstName != nil {
		t.Errorf("FirstName = %v, want nil", *user.FirstName)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateUser(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	err := store.CreateUser(ctx, "alice", "hash-2")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("CreateUser duplicate error = %v, want ErrUserExists", err)
	}
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUserByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByUsername error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfile_Partial(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateUser(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	first := "Alice"
	email := "alice@example.com"
	if err := store.UpdateProfile(ctx, "alice", ProfileUpdate{
		FirstName: &first,
		Email:     &email,
	}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	// A second partial update must not clobber the fields it omits.
	dob := "1990-04-01"
	if err := store.UpdateProfile(ctx, "alice", ProfileUpdate{
		DateOfBirth: &dob,
	}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	user, err := store.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}

	if user.FirstName == nil || *user.FirstName != "Alice" {
		t.Errorf("FirstName = %v, want Alice", user.FirstName)
	}
	if user.Email == nil || *user.Email != "alice@example.com" {
		t.Errorf("Email = %v, want alice@example.com", user.Email)
	}
	if user.DateOfBirth == nil || *user.DateOfBirth != "1990-04-01" {
		t.Errorf("DateOfBirth = %v, want 1990-04-01", user.DateOfBirth)
	}
	if user.LastName != nil {
		t.Errorf("LastName = %v, want nil", *user.LastName)
	}
	if user.PasswordHash != "hash-1" {
		t.Errorf("PasswordHash changed to %q", user.PasswordHash)
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	store := newTestStore(t)

	first := "Nobody"
	err := store.UpdateProfile(context.Background(), "nobody", ProfileUpdate{FirstName: &first})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateProfile error = %v, want ErrUserNotFound", err)
	}
}
