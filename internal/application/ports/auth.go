package ports

import (
	"context"
)

type Auth interface {
	Login(ctx context.Context, username, password string) (string, error)
	// EnsureAdmin seeds the configured admin account once at startup.
	// Safe to call from multiple instances booting concurrently.
	EnsureAdmin(ctx context.Context) error
}
