// Package pacing spaces out child-process invocations so consecutive
// trials do not bleed cache or thermal effects into each other.
package pacing

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a minimum interval between trials. A nil Pacer or a zero
// cooldown never waits.
type Pacer struct {
	limiter *rate.Limiter
	mu      sync.RWMutex
}

// NewPacer creates a Pacer with the given cooldown between invocations.
func NewPacer(cooldown time.Duration) *Pacer {
	if cooldown <= 0 {
		return &Pacer{}
	}
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(cooldown), 1),
	}
}

// Wait blocks until the next invocation is allowed or ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	limiter := p.limiter
	p.mu.RUnlock()

	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}

// SetCooldown replaces the interval between invocations.
func (p *Pacer) SetCooldown(cooldown time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cooldown <= 0 {
		p.limiter = nil
		return
	}
	p.limiter = rate.NewLimiter(rate.Every(cooldown), 1)
}
