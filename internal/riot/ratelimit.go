package riot

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outgoing Riot API requests against both enforced ceilings:
// requests per second and requests per rolling window (two minutes for
// development keys). Wait blocks until both buckets permit a request, so
// sustained throughput stays under the window ceiling no matter how many
// jobs the orchestrator drains back to back.
type Limiter struct {
	perSecond *rate.Limiter
	perWindow *rate.Limiter
}

func NewLimiter(perSecond, perWindow int, window time.Duration) *Limiter {
	return &Limiter{
		perSecond: rate.NewLimiter(rate.Limit(perSecond), perSecond),
		perWindow: rate.NewLimiter(rate.Limit(float64(perWindow)/window.Seconds()), perWindow),
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	// Window bucket first: it is the tighter long-run constraint, and
	// draining it before the per-second bucket keeps a burst from
	// consuming per-second tokens it cannot use.
	if err := l.perWindow.Wait(ctx); err != nil {
		return err
	}
	return l.perSecond.Wait(ctx)
}
