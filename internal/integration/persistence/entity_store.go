// Package persistence keeps the tracker's collections in memory and flushes them
// to a blob store, one serialized blob per collection.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// entityStore implements the adapter.EntityStore interface.
type entityStore struct {
	blobs     adapter.BlobStore
	keyPrefix string

	// writeMu serializes units of work; mu guards state and persisted.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	state     *entity.Collections
	persisted map[entity.Collection][]byte
}

// NewEntityStore creates an empty entity store backed by blobs.
// Collection keys are keyPrefix followed by the collection name.
func NewEntityStore(blobs adapter.BlobStore, keyPrefix string) adapter.EntityStore {
	return &entityStore{
		blobs:     blobs,
		keyPrefix: keyPrefix,
		state:     &entity.Collections{},
		persisted: map[entity.Collection][]byte{},
	}
}

func (s *entityStore) key(name entity.Collection) string {
	return s.keyPrefix + string(name)
}

// Load reads every collection from the blob store.
func (s *entityStore) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded := &entity.Collections{}
	persisted := map[entity.Collection][]byte{}
	for _, name := range entity.AllCollections {
		data, found, err := s.blobs.Load(ctx, s.key(name))
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		if !found {
			continue
		}
		if err := decodeCollection(loaded, name, data); err != nil {
			return err
		}
		persisted[name] = data
	}

	if rewritten := normalize(loaded); rewritten > 0 {
		slog.Info("Normalized legacy budgets", "count", rewritten)
	}

	s.mu.Lock()
	s.state = loaded
	s.persisted = persisted
	s.mu.Unlock()

	slog.Info("Collections loaded",
		"accounts", len(loaded.Accounts),
		"categories", len(loaded.Categories),
		"budgets", len(loaded.Budgets),
		"transactions", len(loaded.Transactions),
	)
	return nil
}

// Read runs fn against the current state.
func (s *entityStore) Read(ctx context.Context, fn func(c *entity.Collections) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// Mutate runs fn against a working copy. Only collections whose serialized form
// changed are written, all in one SaveAll call. The new state is published only
// after the save succeeds.
func (s *entityStore) Mutate(ctx context.Context, fn adapter.UnitOfWork) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	working := s.state.Clone()
	s.mu.RUnlock()

	if err := fn(ctx, working); err != nil {
		return err
	}

	encoded := make(map[entity.Collection][]byte, len(entity.AllCollections))
	changed := map[string][]byte{}
	for _, name := range entity.AllCollections {
		data, err := encodeCollection(working, name)
		if err != nil {
			return err
		}
		encoded[name] = data
		if string(data) != string(s.persisted[name]) {
			changed[s.key(name)] = data
		}
	}

	if len(changed) > 0 {
		if err := s.blobs.SaveAll(ctx, changed); err != nil {
			slog.Error("Failed to persist collections", "error", err, "keys", len(changed))
			return fmt.Errorf("failed to persist collections: %w", err)
		}
	}

	s.mu.Lock()
	s.state = working
	s.persisted = encoded
	s.mu.Unlock()

	slog.Debug("Unit of work committed", "changed_keys", len(changed))
	return nil
}
