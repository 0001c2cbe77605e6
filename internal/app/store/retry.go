package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"

	"postboard/internal/pkg/logx"
)

// retryDelay is the fixed backoff before the single retry of a transient
// store failure.
const retryDelay = 500 * time.Millisecond

// withRetry runs op, retrying exactly once after retryDelay if the failure is
// transient. A transient failure that survives the retry surfaces as
// ErrUnavailable wrapping the cause; non-transient failures surface
// immediately and are never retried.
func withRetry[T any](ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	var result T

	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var opErr error
		result, opErr = op(ctx)

		if opErr != nil && isTransient(opErr) {
			logx.Warn("Transient store error, retrying.", "error", opErr.Error())
			return retry.RetryableError(opErr)
		}

		return opErr
	})

	if err != nil && isTransient(err) {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return result, err
}

// isTransient reports whether the error looks like an intermittent
// connectivity failure that is likely to succeed on immediate retry.
// Context cancellation is never transient.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if pgconn.SafeToRetry(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
