package service

import (
	"context"
	"time"
)

// Throttle paces consecutive outbound sends so the provider's rate
// limit is respected. Implementations must return early when the
// context is cancelled.
type Throttle interface {
	Wait(ctx context.Context)
}

// intervalThrottle waits a fixed interval between sends.
type intervalThrottle struct {
	interval time.Duration
}

// NewIntervalThrottle returns a Throttle that pauses for the given
// interval on every Wait call.
func NewIntervalThrottle(interval time.Duration) Throttle {
	return &intervalThrottle{interval: interval}
}

func (t *intervalThrottle) Wait(ctx context.Context) {
	if t.interval <= 0 {
		return
	}
	timer := time.NewTimer(t.interval)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// NoThrottle waits for nothing. Used in tests.
type NoThrottle struct{}

func (NoThrottle) Wait(context.Context) {}
