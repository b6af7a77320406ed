package dbx

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds RetryTx. Attempts counts the first try.
type RetryPolicy struct {
	Attempts uint64
	Base     time.Duration
	Jitter   time.Duration
}

// DefaultRetryPolicy is used when a caller passes a zero policy.
var DefaultRetryPolicy = RetryPolicy{Attempts: 5, Base: 5 * time.Millisecond, Jitter: 5 * time.Millisecond}

func (p RetryPolicy) backoff() retry.Backoff {
	if p.Attempts == 0 {
		p = DefaultRetryPolicy
	}
	base := p.Base
	if base <= 0 {
		base = time.Millisecond
	}
	b := retry.NewExponential(base)
	if p.Jitter > 0 {
		b = retry.WithJitter(p.Jitter, b)
	}
	b = retry.WithCappedDuration(250*time.Millisecond, b)
	return retry.WithMaxRetries(p.Attempts-1, b)
}

// RetryTx runs fn in a fresh transaction per attempt. When fn (or the commit)
// fails with an error for which retryable reports true, the transaction is
// rolled back and the whole unit is attempted again, up to the policy's
// attempt count. The last error is returned unchanged.
func RetryTx(ctx context.Context, r Runner, p RetryPolicy, retryable func(error) bool, fn TxFunc) error {
	return retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		err := r.InTx(ctx, fn)
		if err != nil && retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
