package order

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	progressStart    = 10.0
	progressStep     = 2.5
	progressMax      = 100.0
	progressInterval = 2 * time.Second
	tripMinutes      = 15.0
)

// Courier models the delivery-progress indicator: a value that climbs by a
// fixed step on a fixed interval until it hits 100 and stays there.
type Courier struct {
	mu       sync.Mutex
	progress float64
}

func NewCourier() *Courier {
	return &Courier{progress: progressStart}
}

// Advance moves the courier one step. Reports whether the courier has arrived;
// once arrived, further calls are no-ops.
func (t *Courier) Advance() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.progress < progressMax {
		t.progress += progressStep
		if t.progress > progressMax {
			t.progress = progressMax
		}
	}
	return t.progress >= progressMax
}

func (t *Courier) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// ETA derives the minutes-remaining estimate from progress. Floors at
// "Arrived" once the courier reaches 100.
func (t *Courier) ETA() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.progress >= progressMax {
		return "Arrived"
	}
	minutes := int(math.Round(tripMinutes * (1 - t.progress/progressMax)))
	return fmt.Sprintf("%d min remaining", minutes)
}
