// Package latency simulates network round-trip time in front of in-memory calls.
package latency

import (
	"context"
	"time"
)

// Simulator delays callers by a fixed amount.
type Simulator struct {
	delay time.Duration
}

// New returns a Simulator with the given delay. A zero or negative delay disables it.
func New(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay}
}

// Delay returns the configured delay.
func (s *Simulator) Delay() time.Duration {
	if s == nil {
		return 0
	}
	return s.delay
}

// Wait blocks for the configured delay or until ctx is done, whichever comes first.
func (s *Simulator) Wait(ctx context.Context) error {
	if s == nil || s.delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
