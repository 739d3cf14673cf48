package retry

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"auditqc/pkg"
)

const (
	DefaultMaxRetries     = 2
	DefaultInitialBackoff = 250 * time.Millisecond
)

// Policy re-issues failed operations a bounded number of times.
//
// Only transport-level failures (pkg.ErrBadGateway) are retried. Credential
// rejections (pkg.ErrUnauthorized) propagate immediately so the caller can
// redirect to re-authentication; every other error is assumed to be
// deterministic and is returned on the first attempt.
type Policy struct {
	// MaxRetries is the number of retries beyond the first attempt.
	MaxRetries     int
	InitialBackoff time.Duration
	Logger         *logrus.Logger
}

func NewPolicy(logger *logrus.Logger) Policy {
	return Policy{
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: DefaultInitialBackoff,
		Logger:         logger,
	}
}

// Do runs op, retrying retryable failures with doubling backoff. The sleep
// between attempts honors ctx cancellation.
func (p Policy) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	maxRetries := p.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoff := p.InitialBackoff
	if backoff <= 0 {
		backoff = DefaultInitialBackoff
	}

	var err error
	for attempt := 0; ; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = op(ctx)
		if err == nil {
			return nil
		}
		if !pkg.IsRetryable(err) || attempt >= maxRetries {
			return err
		}
		if p.Logger != nil {
			p.Logger.WithFields(logrus.Fields{
				"module":  "retry",
				"op":      name,
				"attempt": attempt + 1,
				"backoff": backoff.String(),
			}).Warn(err.Error())
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
