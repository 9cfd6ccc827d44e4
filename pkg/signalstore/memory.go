package signalstore

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/swipekit/pkg/device"
)

type memoryEntry struct {
	clientID  string
	signals   device.Signals
	expiresAt time.Time
}

// MemoryStore is a thread-safe LRU of reported signals.
// When full, the least recently used client is evicted.
type MemoryStore struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates a store holding at most capacity clients for ttl each.
// A zero ttl keeps entries until evicted. Panics if capacity is not positive.
func NewMemoryStore(capacity int, ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	if capacity <= 0 {
		panic("signalstore: capacity must be positive")
	}
	s := &MemoryStore{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Save(_ context.Context, clientID string, sig device.Signals) error {
	if clientID == "" {
		return ErrEmptyClientID
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[clientID]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.signals = sig
		entry.expiresAt = expiresAt
		s.eviction.MoveToFront(elem)
		return nil
	}

	s.items[clientID] = s.eviction.PushFront(&memoryEntry{
		clientID:  clientID,
		signals:   sig,
		expiresAt: expiresAt,
	})
	if s.eviction.Len() > s.capacity {
		s.removeElement(s.eviction.Back())
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, clientID string) (device.Signals, error) {
	if clientID == "" {
		return device.Signals{}, ErrEmptyClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[clientID]
	if !ok {
		return device.Signals{}, ErrNotFound
	}
	entry := elem.Value.(*memoryEntry)
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		s.removeElement(elem)
		return device.Signals{}, ErrNotFound
	}
	s.eviction.MoveToFront(elem)
	return entry.signals, nil
}

func (s *MemoryStore) Delete(_ context.Context, clientID string) error {
	if clientID == "" {
		return ErrEmptyClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[clientID]; ok {
		s.removeElement(elem)
	}
	return nil
}

// Len returns the number of stored clients, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}

// removeElement must be called with mu held.
func (s *MemoryStore) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	entry := s.eviction.Remove(elem).(*memoryEntry)
	delete(s.items, entry.clientID)
}
