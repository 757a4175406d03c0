package ports

import "context"

// SessionStore is the persistence boundary for the one admin credential.
// It performs no network calls and no validation.
type SessionStore interface {
	// Get returns the persisted token, or "" when none is stored.
	Get(ctx context.Context) (string, error)
	// Set persists token, overwriting any prior value. An empty token
	// removes the stored credential.
	Set(ctx context.Context, token string) error
	// IsActive reports whether a non-empty token is stored. Read failures
	// count as absent.
	IsActive(ctx context.Context) bool
}
