// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// uuidGenerator implements the adapter.IDGenerator interface with time-ordered UUIDs.
type uuidGenerator struct{}

// NewIDGenerator creates a new UUIDv7 id generator.
func NewIDGenerator() adapter.IDGenerator {
	return uuidGenerator{}
}

// NewID returns a fresh UUIDv7. It falls back to a random UUID if the clock sequence fails.
func (uuidGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
