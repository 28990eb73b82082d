// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator provides fresh entity ids.
type IDGenerator interface {
	NewID() string
}
