package adapters

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewIDGenerator()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("id %q is not a uuid: %v", id, err)
		}
		if parsed.Version() != 7 {
			t.Errorf("id %q has version %d, want 7", id, parsed.Version())
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSequentialIDs(t *testing.T) {
	ids := &SequentialIDs{Prefix: "tx"}
	if got := ids.NewID(); got != "tx-1" {
		t.Errorf("first id = %q", got)
	}
	if got := ids.NewID(); got != "tx-2" {
		t.Errorf("second id = %q", got)
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	clock := &FixedClock{T: start}
	clock.Advance(24 * time.Hour)
	if !clock.Now().Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("now = %s", clock.Now())
	}
	if NewSystemClock(time.UTC).Now().Location() != time.UTC {
		t.Error("system clock ignored its location")
	}
}
