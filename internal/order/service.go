package order

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/cart"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/restaurant"
)

var ErrEmptyOrder = errors.New("order has no items")

type Service struct {
	store    *InMemoryStore
	dwell    time.Duration
	interval time.Duration

	mu        sync.Mutex
	bySession map[string]*Order
}

func NewService(store *InMemoryStore) *Service {
	return &Service{
		store:     store,
		dwell:     DefaultDwell,
		interval:  progressInterval,
		bySession: make(map[string]*Order),
	}
}

// Place creates an order from a checked-out cart and starts its tracking
// simulation. A session tracks one order at a time: placing a new one stops
// the previous simulation, like navigating away from the tracking page.
func (s *Service) Place(
	sessionID string,
	rest *restaurant.Restaurant,
	lines []cart.Line,
	subtotal decimal.Decimal,
	paymentMethod string,
	promoCode string,
) (*Order, error) {

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	o := &Order{
		Number:         s.nextNumber(),
		SessionID:      sessionID,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Lines:          lines,
		Subtotal:       subtotal,
		DeliveryFee:    rest.DeliveryFee,
		Total:          subtotal.Add(rest.DeliveryFee),
		PaymentMethod:  paymentMethod,
		PromoCode:      promoCode,
		PlacedAt:       time.Now(),
		sim:            NewSimulator(s.dwell),
		courier:        NewCourier(),
		done:           make(chan struct{}),
	}

	s.mu.Lock()
	if prev, ok := s.bySession[sessionID]; ok {
		prev.Stop()
	}
	s.bySession[sessionID] = o
	s.mu.Unlock()

	s.store.Save(o)
	o.start(s.interval)

	return o, nil
}

func (s *Service) Track(number string) (*Order, error) {
	return s.store.FindByNumber(number)
}

// CancelForSession stops the session's live simulation, if any. Called on
// session teardown.
func (s *Service) CancelForSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := s.bySession[sessionID]; ok {
		o.Stop()
		delete(s.bySession, sessionID)
	}
}

// Shutdown stops every live simulation. Called when the process exits.
func (s *Service) Shutdown() {
	for _, o := range s.store.All() {
		o.Stop()
	}
}

func (s *Service) nextNumber() string {
	for {
		number := fmt.Sprintf("FF-%06d", rand.Intn(1000000))
		if !s.store.Exists(number) {
			return number
		}
	}
}
