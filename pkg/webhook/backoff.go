package webhook

import (
	"math"
	"math/rand"
	"time"
)

// Backoff computes the wait before a retry attempt. Attempts are counted
// from zero (the first retry).
type Backoff interface {
	Next(attempt int) time.Duration
}

// ExponentialBackoff grows the interval by Multiplier each attempt, capped
// at MaxInterval, with optional proportional jitter to spread out retry
// storms.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

// DefaultBackoff is used when no backoff is configured.
var DefaultBackoff = ExponentialBackoff{
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     30 * time.Second,
	Multiplier:      2.0,
	JitterFactor:    0.1,
}

func (b ExponentialBackoff) Next(attempt int) time.Duration {
	initial := b.InitialInterval
	if initial <= 0 {
		initial = DefaultBackoff.InitialInterval
	}
	mult := b.Multiplier
	if mult < 1 {
		mult = DefaultBackoff.Multiplier
	}

	d := time.Duration(float64(initial) * math.Pow(mult, float64(attempt)))
	if b.MaxInterval > 0 && d > b.MaxInterval {
		d = b.MaxInterval
	}

	if b.JitterFactor > 0 {
		jitter := (rand.Float64()*2 - 1) * b.JitterFactor * float64(d)
		d += time.Duration(jitter)
		if d < 0 {
			d = 0
		}
	}
	return d
}
