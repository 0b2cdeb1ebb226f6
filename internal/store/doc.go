// Package store provides credential persistence for taskgate.
//
// The Store interface owns the username-to-password-hash mapping plus the
// optional profile fields attached to each user. The SQLite implementation
// uses modernc.org/sqlite with goose-managed embedded migrations and is safe
// for concurrent use by request handlers; no additional locking is needed by
// callers.
//
// Per-call failures are returned to the caller as-is (wrapped with context);
// the store performs no retries. Connectivity retries happen once, at
// startup, in the process entry point.
package store
