// Package storage is the persistence boundary of the ledger: named JSON
// blobs in a local key-value store, one blob per logical record set.
//
// Corrupted blobs are never surfaced to callers. Load reports them the
// same way as an absent key, so the caller falls back to its default
// value and the system keeps running.
package storage

// Adapter reads and writes named JSON blobs.
type Adapter interface {
	// Load decodes the blob stored under key into dst. It returns false
	// when the key is absent or the stored JSON cannot be decoded into
	// dst; in both cases the caller keeps its default value and must not
	// rely on dst being untouched.
	Load(key string, dst any) bool

	// Save encodes v as JSON and stores it under key, replacing any
	// previous blob.
	Save(key string, v any) error

	// Delete removes the blob stored under key. Deleting an absent key is
	// a no-op.
	Delete(key string) error
}
