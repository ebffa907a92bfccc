package order

import (
	"sync"
	"time"
)

// DefaultDwell is how long the simulation holds each status before advancing.
const DefaultDwell = 8 * time.Second

// Transition is one scheduled step of the simulation.
type Transition struct {
	Delay time.Duration
	Next  Status
}

// Simulator advances an order through the status sequence on a fixed clock.
// Nothing else changes the status: no user trigger, no skips, no regression.
// Stop cancels the pending timer so a discarded order can never be mutated by
// a late firing.
type Simulator struct {
	mu      sync.Mutex
	status  Status
	dwell   time.Duration
	timer   *time.Timer
	stopped bool
}

func NewSimulator(dwell time.Duration) *Simulator {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Simulator{status: StatusConfirmed, dwell: dwell}
}

func (s *Simulator) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Schedule returns the remaining (delay, next-state) pairs from the current
// status to the terminal state.
func (s *Simulator) Schedule() []Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Transition
	cur := s.status
	for {
		next, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, Transition{Delay: s.dwell, Next: next})
		cur = next
	}
}

// Start arms the first transition timer. Safe to call once per simulator.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.status.Terminal() || s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(s.dwell, s.advance)
}

// Stop cancels any pending transition. The status freezes where it is.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

// advance is the single pure step: move one status forward and, while not
// terminal, re-arm the timer. Also the hook tests use to drive the machine
// without waiting on wall clocks.
func (s *Simulator) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	next, ok := s.status.Next()
	if !ok {
		return
	}
	s.status = next

	if !s.status.Terminal() && s.timer != nil {
		s.timer = time.AfterFunc(s.dwell, s.advance)
	}
}
