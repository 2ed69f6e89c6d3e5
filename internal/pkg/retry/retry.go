// Package retry runs an operation a bounded number of times with a fixed
// pause between attempts. Errors the caller classifies as non-retryable stop
// the loop immediately.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy is a fixed-delay retry policy.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Default is three attempts two seconds apart.
func Default() Policy {
	return Policy{MaxAttempts: 3, Delay: 2 * time.Second}
}

type options struct {
	retryable func(error) bool
	notify    func(attempt int, err error, next time.Duration)
}

type Option func(*options)

// WithRetryable sets the classifier. Errors for which it returns false are
// returned without further attempts. By default every error is retried.
func WithRetryable(fn func(error) bool) Option {
	return func(o *options) { o.retryable = fn }
}

// WithNotify is called after each failed attempt that will be retried.
func WithNotify(fn func(attempt int, err error, next time.Duration)) Option {
	return func(o *options) { o.notify = fn }
}

// Run calls op until it succeeds, returns a non-retryable error, the policy
// runs out of attempts or ctx is done. The last error is returned unwrapped.
func Run[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{retryable: func(error) bool { return true }}
	for _, opt := range opts {
		opt(&o)
	}

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := op(ctx)
		if err != nil && !o.retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(p.Delay)),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithMaxElapsedTime(0),
	}
	if o.notify != nil {
		retryOpts = append(retryOpts, backoff.WithNotify(func(err error, next time.Duration) {
			o.notify(attempt, err, next)
		}))
	}

	v, err := backoff.Retry(ctx, operation, retryOpts...)
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}
	return v, err
}

// Do is Run for operations without a result.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error, opts ...Option) error {
	_, err := Run(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, opts...)
	return err
}
