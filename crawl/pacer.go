package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/mailscout"
)

var _ mailscout.Pacer = (*JitterPacer)(nil)

// Default politeness delay bounds.
const (
	DefaultMinDelay = 200 * time.Millisecond
	DefaultMaxDelay = 500 * time.Millisecond
)

// JitterPacer waits a random interval drawn uniformly from [Min, Max).
// It holds no per-crawl state and may be shared between crawls.
type JitterPacer struct {
	Min time.Duration
	Max time.Duration
}

// NewJitterPacer creates a JitterPacer. If max is not above min, every
// wait lasts exactly min.
func NewJitterPacer(min, max time.Duration) *JitterPacer {
	return &JitterPacer{Min: min, Max: max}
}

// Wait blocks for a random interval.
// Returns an error if the context is canceled before the wait completes.
func (p *JitterPacer) Wait(ctx context.Context) error {
	d := p.Delay()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Delay draws the next interval.
func (p *JitterPacer) Delay() time.Duration {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + rand.N(p.Max-p.Min)
}
