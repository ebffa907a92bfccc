package cart

import "sync"

// InMemoryStore keeps one cart per session. Nothing survives a restart, which
// matches the demo's reload-resets-everything behavior.
type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{carts: make(map[string]*Cart)}
}

// Get returns the session's cart, creating it on first use.
func (s *InMemoryStore) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = NewCart()
		s.carts[sessionID] = c
	}
	return c
}

func (s *InMemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
