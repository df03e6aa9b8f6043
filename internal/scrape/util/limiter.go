package util

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// NavLimiter enforces a minimum spacing between page navigations, to
// stay under anti-automation radar. Unlike a fixed sleep it doesn't
// wait when the previous step already took long enough.
type NavLimiter struct {
	lim *rate.Limiter
}

func NewNavLimiter(minDelay time.Duration) *NavLimiter {
	if minDelay <= 0 {
		minDelay = time.Millisecond
	}
	return &NavLimiter{
		lim: rate.NewLimiter(rate.Every(minDelay), 1),
	}
}

func (n *NavLimiter) Wait(ctx context.Context) error {
	return n.lim.Wait(ctx)
}
