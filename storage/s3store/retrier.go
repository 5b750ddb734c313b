package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/aws/smithy-go"

	"github.com/grafana/s3remote/retry"
)

// Retrier wraps another retrier and only retries errors that S3 documents
// as transient:
//   - 5xx responses and 429 Too Many Requests
//   - throttling and server fault error codes (SlowDown, InternalError, ...)
//   - network errors and truncated responses
//
// Matching errors are marked with retry.ErrTemporary before being handed to
// the wrapped retrier, which keeps control of backoff and attempt limits.
type Retrier struct {
	wrapped retry.Retrier
}

// NewRetrier creates a Retrier that wraps the given retrier.
func NewRetrier(wrapped retry.Retrier) *Retrier {
	if wrapped == nil {
		wrapped = &retry.NoopRetrier{}
	}
	return &Retrier{wrapped: wrapped}
}

// ShouldRetry classifies err and delegates retryable errors to the wrapped retrier.
func (r *Retrier) ShouldRetry(err error, attempt int) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if !IsRetryable(err) {
		return false
	}

	return r.wrapped.ShouldRetry(fmt.Errorf("%w: %w", retry.ErrTemporary, err), attempt)
}

// Wait delegates to the wrapped retrier.
func (r *Retrier) Wait(ctx context.Context, attempt int) error {
	return r.wrapped.Wait(ctx, attempt)
}

// MaxAttempts delegates to the wrapped retrier.
func (r *Retrier) MaxAttempts() int {
	return r.wrapped.MaxAttempts()
}

var retryableCodes = map[string]bool{
	"SlowDown":                true,
	"Throttling":              true,
	"ThrottlingException":     true,
	"RequestLimitExceeded":    true,
	"RequestTimeout":          true,
	"RequestTimeoutException": true,
	"InternalError":           true,
	"ServiceUnavailable":      true,
}

// IsRetryable reports whether err is worth retrying against S3.
func IsRetryable(err error) bool {
	var status interface{ HTTPStatusCode() int }
	if errors.As(err, &status) {
		code := status.HTTPStatusCode()
		if code >= 500 || code == 429 {
			return true
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if retryableCodes[apiErr.ErrorCode()] || apiErr.ErrorFault() == smithy.FaultServer {
			return true
		}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
