package analytics

import (
	"context"
	"sync"
	"time"
)

// Store is the append-only event log plus the sticky variant assignments.
type Store interface {
	Append(ctx context.Context, e Event) error
	Since(ctx context.Context, cutoff time.Time) ([]Event, error)
	Variant(ctx context.Context, userID, test string) (string, bool, error)
	SaveVariant(ctx context.Context, userID, test, variant string) error
}

// MemoryStore keeps the most recent events in a fixed-size ring.
type MemoryStore struct {
	mu       sync.RWMutex
	cap      int
	events   []Event
	next     int
	full     bool
	variants map[string]string
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &MemoryStore{
		cap:      capacity,
		events:   make([]Event, capacity),
		variants: make(map[string]string),
	}
}

func (m *MemoryStore) Append(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[m.next] = e
	m.next = (m.next + 1) % m.cap
	if m.next == 0 {
		m.full = true
	}
	return nil
}

// All returns the retained events, oldest first.
func (m *MemoryStore) All() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.full {
		return append([]Event(nil), m.events[:m.next]...)
	}
	out := make([]Event, 0, m.cap)
	out = append(out, m.events[m.next:]...)
	return append(out, m.events[:m.next]...)
}

func (m *MemoryStore) Since(_ context.Context, cutoff time.Time) ([]Event, error) {
	ms := cutoff.UnixMilli()
	var out []Event
	for _, e := range m.All() {
		if e.Timestamp > ms {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStore) Variant(_ context.Context, userID, test string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.variants[variantKey(userID, test)]
	return v, ok, nil
}

func (m *MemoryStore) SaveVariant(_ context.Context, userID, test, variant string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.variants[variantKey(userID, test)] = variant
	return nil
}

func variantKey(userID, test string) string {
	return userID + "\x00ab_" + test
}
