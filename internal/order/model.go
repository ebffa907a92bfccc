package order

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/cart"
)

// Order is a placed order together with its live tracking simulation.
type Order struct {
	Number         string
	SessionID      string
	RestaurantID   string
	RestaurantName string
	Lines          []cart.Line
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	PromoCode      string
	PlacedAt       time.Time

	sim      *Simulator
	courier  *Courier
	done     chan struct{}
	stopOnce sync.Once
}

// start arms the status timer and the courier ticker.
func (o *Order) start(interval time.Duration) {
	o.sim.Start()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-o.done:
				return
			case <-ticker.C:
				if o.courier.Advance() {
					return
				}
			}
		}
	}()
}

// Stop cancels both simulations. Idempotent; required before discarding the
// order so no timer fires against it afterwards.
func (o *Order) Stop() {
	o.stopOnce.Do(func() {
		o.sim.Stop()
		close(o.done)
	})
}

func (o *Order) Status() Status {
	return o.sim.Status()
}

func (o *Order) Courier() *Courier {
	return o.courier
}
