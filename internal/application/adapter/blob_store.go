// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// BlobStore is a key-value store of serialized collections.
// Connections handed to a BlobStore stay owned by the caller.
type BlobStore interface {
	// Load returns the value stored under key. found is false when the key is absent.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)

	// SaveAll writes every entry of blobs. Backends that support it apply all writes atomically.
	SaveAll(ctx context.Context, blobs map[string][]byte) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
