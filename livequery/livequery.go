// Package livequery keeps query results fresh through two independent
// triggers: a fixed polling interval that guarantees eventual consistency even
// when the push channel is down, and change feed events that refetch sooner
// than the next tick. The refresh policy is defined once here and reused for
// every entity instead of being re-derived per hook.
package livequery

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"room-rental-app/changefeed"
)

// Poll intervals used by the access layers. Listings and inquiry views poll
// fast; the city aggregate changes rarely and polls slow.
const (
	PollFast = 3 * time.Second
	PollSlow = 10 * time.Second
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Key builds a logical query key from its segments, e.g.
// Key("my-rooms", ownerID) -> "my-rooms/<id>". Invalidation matches on key
// prefixes, so "my-rooms" invalidates every owner's list at once.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

type liveQuery interface {
	Key() string
	poke()
	Close()
}

// Cache is the process-wide registry of running live queries, keyed per
// logical query. It is constructed explicitly at startup and torn down (or
// reset per user) on logout; nothing here is a package-level singleton.
type Cache struct {
	sync.Mutex
	log     *logrus.Logger
	queries map[liveQuery]bool
}

func NewCache(log *logrus.Logger) *Cache {
	return &Cache{
		log:     log,
		queries: make(map[liveQuery]bool),
	}
}

// Invalidate marks every registered query whose key starts with one of the
// prefixes stale, scheduling an out-of-band refetch. All prefixes are flagged
// before Invalidate returns, so a mutation's invalidations land together.
func (c *Cache) Invalidate(prefixes ...string) {
	c.Lock()
	defer c.Unlock()
	for q := range c.queries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(q.Key(), prefix) {
				q.poke()
				break
			}
		}
	}
}

// Drop closes every query whose key contains the given segment. Used on
// logout to clear queries keyed by the departing user's id.
func (c *Cache) Drop(segment string) {
	c.Lock()
	stale := make([]liveQuery, 0)
	for q := range c.queries {
		if strings.Contains(q.Key(), segment) {
			stale = append(stale, q)
		}
	}
	c.Unlock()

	for _, q := range stale {
		q.Close()
	}
}

func (c *Cache) register(q liveQuery) {
	c.Lock()
	defer c.Unlock()
	c.queries[q] = true
}

func (c *Cache) deregister(q liveQuery) {
	c.Lock()
	defer c.Unlock()
	delete(c.queries, q)
}

// Len reports how many live queries are currently registered.
func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.queries)
}

// Query is one registered live query. Get returns the last fetched value;
// the background loop replaces it on every poll tick, cache invalidation, or
// feed event. Close stops the loop and releases the feed subscription.
type Query[T any] struct {
	cache    *Cache
	key      string
	fetch    FetchFunc[T]
	interval time.Duration
	sub      *changefeed.Subscription

	mu    sync.Mutex
	value T
	err   error
	ready bool

	refresh   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Watch runs fetch once synchronously, registers the query, and starts the
// refresh loop. sub may be nil when no push channel applies; polling alone
// then keeps the result fresh.
func Watch[T any](cache *Cache, key string, fetch FetchFunc[T], interval time.Duration, sub *changefeed.Subscription) *Query[T] {
	q := &Query[T]{
		cache:    cache,
		key:      key,
		fetch:    fetch,
		interval: interval,
		sub:      sub,
		refresh:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	q.refetch()
	cache.register(q)
	go q.run()
	return q
}

func (q *Query[T]) Key() string {
	return q.key
}

// Get returns the last fetched value. After a failed refresh the previous
// good value is kept alongside the error; callers decide which to show.
func (q *Query[T]) Get() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.value, q.err
}

// Ready reports whether at least one fetch has succeeded.
func (q *Query[T]) Ready() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ready
}

func (q *Query[T]) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
		if q.sub != nil {
			q.sub.Close()
		}
		q.cache.deregister(q)
	})
}

func (q *Query[T]) poke() {
	select {
	case q.refresh <- struct{}{}:
	default:
	}
}

func (q *Query[T]) run() {
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	var events chan changefeed.Event
	if q.sub != nil {
		events = q.sub.C
	}

	for {
		select {
		case <-q.done:
			return
		case <-ticker.C:
			q.refetch()
		case <-q.refresh:
			q.refetch()
		case _, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			q.refetch()
		}
	}
}

func (q *Query[T]) refetch() {
	value, err := q.fetch(context.Background())

	q.mu.Lock()
	defer q.mu.Unlock()
	q.err = err
	if err != nil {
		if q.cache.log != nil {
			q.cache.log.WithError(err).Warnf("live query %s refresh failed", q.key)
		}
		return
	}
	q.value = value
	q.ready = true
}
