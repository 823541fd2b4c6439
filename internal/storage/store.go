// Package storage implements the persistent key-value store backing every
// WebStash repository. Values are strings; structured data is JSON-encoded
// by the caller, so the store itself stays schema-free.
package storage

import "context"

// Store is a synchronous string-keyed store.
//
// Contract:
//   - Get returns common.ErrNotFound when the key is absent.
//   - Set is an upsert.
//   - Remove is idempotent; removing an absent key is not an error.
//   - List returns every key-value pair (used by tests and diagnostics).
//   - Clear wipes the whole store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
