package checkout

import (
	"errors"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/cart"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/order"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/restaurant"
)

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	carts       *cart.Service
	restaurants *restaurant.Service
	orders      *order.Service
}

func NewService(carts *cart.Service, restaurants *restaurant.Service, orders *order.Service) *Service {
	return &Service{carts: carts, restaurants: restaurants, orders: orders}
}

// PlaceOrder turns the session's cart into a tracked order and empties the
// cart. Callers validate the request first.
func (s *Service) PlaceOrder(sessionID string, req *Request) (*order.Order, error) {
	c := s.carts.Snapshot(sessionID)
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	rest, err := s.restaurants.GetRestaurant(c.RestaurantID())
	if err != nil {
		return nil, err
	}

	o, err := s.orders.Place(
		sessionID,
		rest,
		c.Lines(),
		c.Subtotal(),
		req.PaymentMethod,
		req.PromoCode,
	)
	if err != nil {
		return nil, err
	}

	s.carts.Clear(sessionID)
	return o, nil
}
