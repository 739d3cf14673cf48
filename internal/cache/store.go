package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"auditqc/internal/platform/logging"
)

// Store is a keyed, time-bounded read cache with explicit invalidation.
//
// Semantics:
//   - a fresh entry (age < staleTime) is served without fetching;
//   - a stale entry is served immediately while one background refresh runs
//     (stale-while-revalidate);
//   - a missing or invalidated entry blocks on a fetch; concurrent callers of
//     the same key share one outstanding fetch (singleflight);
//   - Invalidate marks every entry under a key prefix as forced-stale, so the
//     next Get refetches synchronously; a forced-stale entry is never served.
//     Fetches already in flight when Invalidate runs are discarded on
//     completion (their results predate the mutation), and later Gets never
//     join them.
//
// Entries are immutable snapshots: writes replace the stored value wholesale.
//
// The Redis tier is optional and nil-safe: with a client configured, fetched
// values are mirrored with a TTL and invalidation deletes the mirrored keys,
// so sibling instances see mutations too. The redislock client, when present,
// keeps sibling instances from fetching the same key at the same time.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	// gens tracks a per-key invalidation generation. A fetch snapshots the
	// generation before it starts; its result is dropped when Invalidate
	// advanced the generation while the fetch was in flight.
	gens map[string]uint64

	group   singleflight.Group
	refresh sync.WaitGroup

	rdb    *redis.Client
	locker *redislock.Client
	logger *logrus.Logger

	now func() time.Time
}

type entry struct {
	value       any
	fetchedAt   time.Time
	forcedStale bool
}

func New(logger *logrus.Logger) *Store {
	return &Store{
		entries: make(map[string]entry),
		gens:    make(map[string]uint64),
		logger:  logger,
		now:     time.Now,
	}
}

// NewWithRedis builds a store backed by a shared Redis tier. Both rdb and
// locker may be nil; the store degrades to in-process behavior.
func NewWithRedis(logger *logrus.Logger, rdb *redis.Client, locker *redislock.Client) *Store {
	s := New(logger)
	s.rdb = rdb
	s.locker = locker
	return s
}

// SetClock overrides the time source. Tests only.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// Get returns the cached value for key, fetching through fetch when the entry
// is missing, invalidated, or stale. See Store for the full contract.
func Get[T any](ctx context.Context, s *Store, key Key, staleTime time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	ks := key.String()

	// resolve runs inside the singleflight group: Redis tier first, then the
	// caller's fetch, storing whichever produced the value.
	resolve := func(ctx context.Context) (any, error) {
		gen := s.fetchGen(ks)

		if raw, ok := s.redisGet(ctx, ks); ok {
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				s.put(ks, out, gen)
				return out, nil
			}
			// Undecodable mirror entry; fall through to a real fetch.
		}

		if lock := s.obtainLock(ctx, ks); lock != nil {
			defer func() { _ = lock.Release(context.WithoutCancel(ctx)) }()
		}

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if s.put(ks, v, gen) {
			s.redisSet(ctx, ks, v, staleTime)
		}
		return v, nil
	}

	s.mu.RLock()
	e, ok := s.entries[ks]
	age := s.now().Sub(e.fetchedAt)
	s.mu.RUnlock()

	if ok && !e.forcedStale {
		if cached, valid := e.value.(T); valid {
			if age < staleTime {
				return cached, nil
			}
			// Serve the stale snapshot, refresh behind the request.
			s.refreshInBackground(ctx, ks, resolve)
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(ks, func() (any, error) {
		return resolve(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, valid := v.(T)
	if !valid {
		var zero T
		return zero, errors.New("cache: value type mismatch for key " + ks)
	}
	return out, nil
}

func (s *Store) refreshInBackground(ctx context.Context, ks string, resolve func(ctx context.Context) (any, error)) {
	// Detach from the request lifetime; the caller already has its answer.
	bg := context.WithoutCancel(ctx)
	ch := s.group.DoChan(ks, func() (any, error) {
		return resolve(bg)
	})
	s.refresh.Add(1)
	go func() {
		defer s.refresh.Done()
		res := <-ch
		if res.Err != nil {
			logging.LogError(s.logger, "cache", "refreshInBackground", ks, nil, res.Err)
		}
	}()
}

// WaitRefreshes blocks until in-flight background refreshes finish. Used at
// shutdown and by tests that assert on refresh effects.
func (s *Store) WaitRefreshes() { s.refresh.Wait() }

// fetchGen snapshots the invalidation generation for ks before a fetch
// starts. The key is recorded so a concurrent Invalidate can advance it even
// when no entry exists yet.
func (s *Store) fetchGen(ks string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.gens[ks]
	s.gens[ks] = g
	return g
}

// put stores a fetched value unless the key was invalidated after the fetch
// began, in which case the pre-mutation result is dropped and put reports
// false.
func (s *Store) put(ks string, v any, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[ks] != gen {
		return false
	}
	s.entries[ks] = entry{value: v, fetchedAt: s.now()}
	return true
}

// Invalidate marks every cached entry whose key starts with prefix as
// forced-stale and drops the mirrored Redis keys. It runs synchronously:
// mutation usecases call it before returning, so any Get issued after the
// mutation result is visible refetches. Matching keys also get their
// generation advanced and their singleflight slot forgotten, so in-flight
// fetches cannot store pre-mutation data and later Gets cannot join them.
func (s *Store) Invalidate(ctx context.Context, prefix string) {
	s.mu.Lock()
	for ks, e := range s.entries {
		if strings.HasPrefix(ks, prefix) {
			e.forcedStale = true
			s.entries[ks] = e
		}
	}
	var forget []string
	for ks := range s.gens {
		if strings.HasPrefix(ks, prefix) {
			s.gens[ks]++
			forget = append(forget, ks)
		}
	}
	s.mu.Unlock()

	for _, ks := range forget {
		s.group.Forget(ks)
	}

	s.redisDeletePrefix(ctx, prefix)
}

/* Redis tier (nil-safe) */

func (s *Store) redisGet(ctx context.Context, ks string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}
	val, err := s.rdb.Get(ctx, ks).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.LogError(s.logger, "cache", "redisGet", ks, nil, err)
		}
		return nil, false
	}
	return val, true
}

func (s *Store) redisSet(ctx context.Context, ks string, v any, ttl time.Duration) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		logging.LogError(s.logger, "cache", "redisSet", ks, nil, err)
		return
	}
	if err := s.rdb.Set(ctx, ks, b, ttl).Err(); err != nil {
		logging.LogError(s.logger, "cache", "redisSet", ks, nil, err)
	}
}

func (s *Store) redisDeletePrefix(ctx context.Context, prefix string) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			logging.LogError(s.logger, "cache", "redisDeletePrefix", prefix, nil, err)
		}
	}
	if err := iter.Err(); err != nil {
		logging.LogError(s.logger, "cache", "redisDeletePrefix", prefix, nil, err)
	}
}

func (s *Store) obtainLock(ctx context.Context, ks string) *redislock.Lock {
	if s.locker == nil {
		return nil
	}
	lock, err := s.locker.Obtain(ctx, "fetchlock:"+ks, 10*time.Second, nil)
	if err != nil {
		// Not obtaining the lock only costs a duplicate fetch elsewhere.
		if !errors.Is(err, redislock.ErrNotObtained) {
			logging.LogError(s.logger, "cache", "obtainLock", ks, nil, err)
		}
		return nil
	}
	return lock
}
