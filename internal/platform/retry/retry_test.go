package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"auditqc/pkg"
)

func fastPolicy() Policy {
	return Policy{MaxRetries: 2, InitialBackoff: time.Millisecond}
}

func TestPolicy_Do(t *testing.T) {
	t.Run("success first try", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(context.Background(), "op", func(ctx context.Context) error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("retries transport failures then succeeds", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(context.Background(), "op", func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: connection refused", pkg.ErrBadGateway)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(context.Background(), "op", func(ctx context.Context) error {
			calls++
			return fmt.Errorf("%w: connection refused", pkg.ErrBadGateway)
		})
		if !errors.Is(err, pkg.ErrBadGateway) {
			t.Fatalf("expected ErrBadGateway, got %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls (1 + 2 retries), got %d", calls)
		}
	})

	t.Run("unauthorized is never retried", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(context.Background(), "op", func(ctx context.Context) error {
			calls++
			return fmt.Errorf("%w: session expired", pkg.ErrUnauthorized)
		})
		if !errors.Is(err, pkg.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("other errors fail fast", func(t *testing.T) {
		boom := errors.New("bad payload")
		calls := 0
		err := fastPolicy().Do(context.Background(), "op", func(ctx context.Context) error {
			calls++
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected bad payload, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		p := Policy{MaxRetries: 5, InitialBackoff: 50 * time.Millisecond}
		err := p.Do(ctx, "op", func(ctx context.Context) error {
			calls++
			cancel()
			return fmt.Errorf("%w: connection reset", pkg.ErrBadGateway)
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})
}
