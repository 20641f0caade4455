package rpc

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
)

// Ensure ThrottledInvoker implements the interface.
var _ driven.RemoteInvoker = (*ThrottledInvoker)(nil)

// ThrottledInvoker paces calls to the wrapped invoker with a token bucket.
type ThrottledInvoker struct {
	next    driven.RemoteInvoker
	limiter *rate.Limiter
}

// Throttle limits next to perSecond calls per second with a burst of one.
// A non-positive rate returns next unchanged.
func Throttle(next driven.RemoteInvoker, perSecond float64) driven.RemoteInvoker {
	if perSecond <= 0 {
		return next
	}
	return &ThrottledInvoker{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Invoke waits for a token, then calls the wrapped invoker.
func (t *ThrottledInvoker) Invoke(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait for %s: %w", method, err)
	}
	return t.next.Invoke(ctx, method, params)
}
