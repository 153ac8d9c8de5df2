package resource

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer holds query issuance to a target rate. A zero-value target means
// unpaced: queries run as fast as the caller drives them.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer targeting qps queries per second. qps <= 0
// means unpaced.
func NewPacer(qps float64) *Pacer {
	if qps <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(qps), 1)}
}

// Wait blocks until the next query is allowed to proceed, or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
