package dbx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConflict = errors.New("conflict")

// countingRunner runs fn without a database and counts attempts.
type countingRunner struct {
	calls int
}

func (r *countingRunner) Conn() DBTX { return nil }

func (r *countingRunner) InTx(ctx context.Context, fn TxFunc) error {
	r.calls++
	return fn(ctx, nil)
}

func isConflict(err error) bool { return errors.Is(err, errConflict) }

var fastPolicy = RetryPolicy{Attempts: 3, Base: time.Microsecond}

func TestRetryTx_SucceedsFirstTime(t *testing.T) {
	r := &countingRunner{}
	err := RetryTx(context.Background(), r, fastPolicy, isConflict, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
}

func TestRetryTx_RetriesConflictsUntilSuccess(t *testing.T) {
	r := &countingRunner{}
	err := RetryTx(context.Background(), r, fastPolicy, isConflict, func(ctx context.Context, tx DBTX) error {
		if r.calls < 3 {
			return errConflict
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, r.calls)
}

func TestRetryTx_ExhaustedReturnsLastError(t *testing.T) {
	r := &countingRunner{}
	err := RetryTx(context.Background(), r, fastPolicy, isConflict, func(ctx context.Context, tx DBTX) error {
		return errConflict
	})
	require.ErrorIs(t, err, errConflict)
	assert.Equal(t, 3, r.calls)
}

func TestRetryTx_NonRetryableStopsImmediately(t *testing.T) {
	r := &countingRunner{}
	boom := errors.New("boom")
	err := RetryTx(context.Background(), r, fastPolicy, isConflict, func(ctx context.Context, tx DBTX) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, r.calls)
}

func TestRetryTx_ZeroPolicyUsesDefault(t *testing.T) {
	r := &countingRunner{}
	err := RetryTx(context.Background(), r, RetryPolicy{}, isConflict, func(ctx context.Context, tx DBTX) error {
		return errConflict
	})
	require.ErrorIs(t, err, errConflict)
	assert.Equal(t, int(DefaultRetryPolicy.Attempts), r.calls)
}
