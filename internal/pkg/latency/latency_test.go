package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitDelays(t *testing.T) {
	s := New(20 * time.Millisecond)
	start := time.Now()
	assert.NoError(t, s.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWaitHonoursCancellation(t *testing.T) {
	s := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Wait(ctx), context.Canceled)
}

func TestZeroAndNilSimulators(t *testing.T) {
	assert.NoError(t, New(0).Wait(context.Background()))
	assert.Equal(t, time.Duration(0), New(-time.Second).Delay())

	var s *Simulator
	assert.NoError(t, s.Wait(context.Background()))
}
