// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UnitOfWork mutates a working copy of every collection.
// Returning an error discards the working copy.
type UnitOfWork func(ctx context.Context, c *entity.Collections) error

// EntityStore owns the in-memory collections and their persistence.
type EntityStore interface {
	// Load reads every collection from the blob store, replacing the in-memory state.
	Load(ctx context.Context) error

	// Read runs fn against a consistent snapshot. fn must not mutate it.
	Read(ctx context.Context, fn func(c *entity.Collections) error) error

	// Mutate runs fn against a working copy and, when fn succeeds, persists every
	// collection that changed in one save before publishing the new state.
	// Mutations are serialized.
	Mutate(ctx context.Context, fn UnitOfWork) error
}
