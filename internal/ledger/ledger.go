package ledger

import (
	"context"
	"errors"
)

// Well-known ledger keys. Every collection is stored as one JSON blob under
// its key; callers own parsing and validation.
const (
	KeyAccount  = "user"
	KeySession  = "session"
	KeyPosts    = "posts"
	KeyArchived = "archivedPosts"
)

// ErrKeyNotFound is returned by Read when no value exists for the key.
var ErrKeyNotFound = errors.New("ledger: key not found")

// Ledger is the durable key-to-value store underlying all persistence.
// Values are opaque bytes; a Write replaces the previous value and is durable
// on return. WriteAll commits every entry atomically, so cross-collection
// moves cannot be half-applied.
type Ledger interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	WriteAll(ctx context.Context, entries map[string][]byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
