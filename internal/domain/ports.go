package domain

import (
	"context"
	"time"
)

// StateStore is durable key-value storage for explorer state.
type StateStore interface {
	// Read returns the record stored under key.
	// Returns ErrStateNotFound when nothing is stored.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write overwrites the record stored under key.
	Write(ctx context.Context, key string, value []byte) error
}

// NopStateStore never stores anything. Used for headless sessions.
type NopStateStore struct{}

// Read always reports ErrStateNotFound.
func (NopStateStore) Read(context.Context, string) ([]byte, error) {
	return nil, ErrStateNotFound
}

// Write discards value.
func (NopStateStore) Write(context.Context, string, []byte) error {
	return nil
}

// Overlay presents and dismisses the saved-issues panel on the host surface.
type Overlay interface {
	// Present is called when the panel opens.
	Present()
	// Dismiss is called when the panel closes.
	Dismiss()
}

// NopOverlay ignores panel transitions.
type NopOverlay struct{}

// Present does nothing.
func (NopOverlay) Present() {}

// Dismiss does nothing.
func (NopOverlay) Dismiss() {}

// LinkOpener opens an outbound link in a new context without blocking.
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(string, string) {}

// Info does nothing.
func (NopLogger) Info(string, string) {}

// Warn does nothing.
func (NopLogger) Warn(string, string) {}

// Error does nothing.
func (NopLogger) Error(string, string) {}

// CatalogProvider supplies the catalog once at startup.
type CatalogProvider interface {
	Load() (*Catalog, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigManager reads and creates the config file.
type ConfigManager interface {
	Info() ConfigInfo
	Init(cfg *Config) error
}

// CollectionMatcher selects the members of a spotlight collection.
type CollectionMatcher interface {
	Members(c *Catalog, col Collection) ([]Issue, error)
}
