package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

type InMemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{orders: make(map[string]*Order)}
}

func (s *InMemoryStore) Save(o *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Number] = o
}

func (s *InMemoryStore) FindByNumber(number string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[number]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *InMemoryStore) Exists(number string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.orders[number]
	return ok
}

func (s *InMemoryStore) All() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}
