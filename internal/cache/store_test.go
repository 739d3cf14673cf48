package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const testStale = 5 * time.Minute

func TestStore_Get_FreshHitSkipsFetch(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})

	var fetches int32
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&fetches, 1)
		return "v1", nil
	}

	for i := 0; i < 3; i++ {
		got, err := Get(context.Background(), s, key, testStale, fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "v1" {
			t.Fatalf("got %q, want v1", got)
		}
	}

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Fatalf("expected exactly one fetch, got %d", n)
	}
}

func TestStore_Get_CoalescesConcurrentFetches(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-reviews")

	var fetches int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&fetches, 1)
		<-release
		return []string{"a-1", "a-2"}, nil
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			got, err := Get(context.Background(), s, key, testStale, fetch)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if len(got) != 2 {
				t.Errorf("got %v", got)
			}
		}()
	}
	close(start)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Fatalf("expected one coalesced fetch, got %d", n)
	}
}

func TestStore_Get_StaleServedWhileRevalidating(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})

	current := time.Now()
	var mu sync.Mutex
	s.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	})
	advance := func(d time.Duration) {
		mu.Lock()
		current = current.Add(d)
		mu.Unlock()
	}

	var fetches int32
	fetch := func(ctx context.Context) (string, error) {
		n := atomic.AddInt32(&fetches, 1)
		if n == 1 {
			return "v1", nil
		}
		return "v2", nil
	}

	got, err := Get(context.Background(), s, key, testStale, fetch)
	if err != nil || got != "v1" {
		t.Fatalf("first Get = %q, %v", got, err)
	}

	advance(testStale + time.Second)

	// Stale entry: the old snapshot comes back immediately, the refresh runs
	// behind the request.
	got, err = Get(context.Background(), s, key, testStale, fetch)
	if err != nil || got != "v1" {
		t.Fatalf("stale Get = %q, %v, want v1", got, err)
	}

	s.WaitRefreshes()

	got, err = Get(context.Background(), s, key, testStale, fetch)
	if err != nil || got != "v2" {
		t.Fatalf("post-refresh Get = %q, %v, want v2", got, err)
	}
	if n := atomic.LoadInt32(&fetches); n != 2 {
		t.Fatalf("expected 2 fetches, got %d", n)
	}
}

func TestStore_Invalidate_ForcesSynchronousRefetch(t *testing.T) {
	s := New(nil)
	entityKey := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})
	listKey := NewKey("audit-reviews", Filter{Field: "status", Value: "completed"})
	otherKey := NewKey("facilities")

	counts := map[string]*int32{
		entityKey.String(): new(int32),
		listKey.String():   new(int32),
		otherKey.String():  new(int32),
	}
	fetchFor := func(ks, val string) func(ctx context.Context) (string, error) {
		return func(ctx context.Context) (string, error) {
			atomic.AddInt32(counts[ks], 1)
			return val, nil
		}
	}

	ctx := context.Background()
	if _, err := Get(ctx, s, entityKey, testStale, fetchFor(entityKey.String(), "entity")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(ctx, s, listKey, testStale, fetchFor(listKey.String(), "list")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(ctx, s, otherKey, testStale, fetchFor(otherKey.String(), "other")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Invalidate(ctx, Prefix("audit-review"))

	// Both review keys must refetch even though their entries are still young.
	if _, err := Get(ctx, s, entityKey, testStale, fetchFor(entityKey.String(), "entity2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(ctx, s, listKey, testStale, fetchFor(listKey.String(), "list2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(ctx, s, otherKey, testStale, fetchFor(otherKey.String(), "other2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := atomic.LoadInt32(counts[entityKey.String()]); n != 2 {
		t.Fatalf("entity key fetched %d times, want 2", n)
	}
	if n := atomic.LoadInt32(counts[listKey.String()]); n != 2 {
		t.Fatalf("list key fetched %d times, want 2", n)
	}
	if n := atomic.LoadInt32(counts[otherKey.String()]); n != 1 {
		t.Fatalf("unrelated key fetched %d times, want 1", n)
	}
}

func TestStore_Invalidate_DiscardsInFlightRefresh(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})

	current := time.Now()
	var mu sync.Mutex
	s.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	})

	var fetches int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		switch atomic.AddInt32(&fetches, 1) {
		case 1:
			return "v1", nil
		case 2:
			close(started)
			<-release
			return "v1-refreshed", nil
		default:
			return "v2", nil
		}
	}

	ctx := context.Background()
	if got, err := Get(ctx, s, key, testStale, fetch); err != nil || got != "v1" {
		t.Fatalf("first Get = %q, %v", got, err)
	}

	mu.Lock()
	current = current.Add(testStale + time.Second)
	mu.Unlock()

	// Stale serve starts a background refresh that blocks inside fetch.
	if got, err := Get(ctx, s, key, testStale, fetch); err != nil || got != "v1" {
		t.Fatalf("stale Get = %q, %v", got, err)
	}
	<-started

	// A mutation lands while the refresh is still in flight.
	s.Invalidate(ctx, Prefix("audit-review"))
	close(release)
	s.WaitRefreshes()

	// The refresh result predates the mutation and must not have been stored;
	// the next Get refetches instead of serving the pre-mutation snapshot.
	got, err := Get(ctx, s, key, testStale, fetch)
	if err != nil || got != "v2" {
		t.Fatalf("post-mutation Get = %q, %v, want v2", got, err)
	}
	if n := atomic.LoadInt32(&fetches); n != 3 {
		t.Fatalf("expected 3 fetches, got %d", n)
	}
}

func TestStore_Invalidate_DiscardsInFlightInitialFetch(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})

	var fetches int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			close(started)
			<-release
			return "pre-mutation", nil
		}
		return "post-mutation", nil
	}

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		defer close(done)
		if got, err := Get(ctx, s, key, testStale, fetch); err != nil || got != "pre-mutation" {
			t.Errorf("in-flight Get = %q, %v", got, err)
		}
	}()
	<-started

	s.Invalidate(ctx, Prefix("audit-review"))
	close(release)
	<-done

	// The first fetch began before the mutation, so its result is discarded.
	got, err := Get(ctx, s, key, testStale, fetch)
	if err != nil || got != "post-mutation" {
		t.Fatalf("post-mutation Get = %q, %v", got, err)
	}
}

func TestStore_Get_FetchErrorNotCached(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})

	boom := errors.New("backend down")
	var fetches int32
	fetch := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			return "", boom
		}
		return "recovered", nil
	}

	if _, err := Get(context.Background(), s, key, testStale, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	got, err := Get(context.Background(), s, key, testStale, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "recovered" {
		t.Fatalf("got %q, want recovered", got)
	}
}

func TestStore_Get_FailedRefreshKeepsServingStale(t *testing.T) {
	s := New(nil)
	key := NewKey("audit-review", Filter{Field: "auditId", Value: "a-1"})

	current := time.Now()
	var mu sync.Mutex
	s.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	})

	var fetches int32
	fetch := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			return "v1", nil
		}
		return "", errors.New("backend down")
	}

	ctx := context.Background()
	if _, err := Get(ctx, s, key, testStale, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	current = current.Add(testStale + time.Second)
	mu.Unlock()

	got, err := Get(ctx, s, key, testStale, fetch)
	if err != nil || got != "v1" {
		t.Fatalf("stale Get = %q, %v", got, err)
	}
	s.WaitRefreshes()

	// Refresh failed; the stale snapshot stays available.
	got, err = Get(ctx, s, key, testStale, fetch)
	if err != nil || got != "v1" {
		t.Fatalf("Get after failed refresh = %q, %v", got, err)
	}
	s.WaitRefreshes()
}
