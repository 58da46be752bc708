package notify

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps notifications for the lifetime of the process. It is
// used when history persistence is turned off.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	items  []Notification
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n.ID = s.nextID
	s.items = append(s.items, n)
	return n.ID, nil
}

// List returns all notifications ordered by newest first.
func (s *MemoryStore) List(_ context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.items)), nil
}
