// Package store is the string-keyed persistence layer the repository writes
// its collections through. Values are opaque strings; callers encode them.
package store

import "context"

// Store is a last-write-wins key-value store with no versioning.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// SetMulti writes every entry or none of them.
	SetMulti(ctx context.Context, entries map[string]string) error
}
