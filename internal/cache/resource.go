// Package cache owns the three polled snapshots the enrollment screens are
// derived from: the course catalog, the caller's memberships and the caller's
// waitlist positions. Each resource is read-through and independently stale;
// consumers never mutate cached values, they derive fresh views per call.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
)

// Loader fetches the current remote value of a resource.
type Loader[T any] func(ctx context.Context) (T, error)

// FetchError reports a failed read of a named resource. The previous value, if
// any, stays in place; only the caller that requested the read sees the error.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Resource is one named cached value with an injected loader.
//
// Get semantics: the first call blocks on a fetch shared by all concurrent
// callers; once a value exists it is always served immediately, and a stale
// value additionally kicks one background refetch. Invalidate marks the value
// stale without discarding it, so the UI is never blocked on network latency.
type Resource[T any] struct {
	name         string
	loader       Loader[T]
	pollInterval time.Duration

	mu        sync.Mutex
	value     T
	loaded    bool
	stale     bool
	inflight  *call[T]
	observers int
	stopPoll  chan struct{}
}

// Option configures a Resource.
type Option func(*options)

type options struct {
	pollInterval time.Duration
}

// WithPollInterval enables periodic refetching while the resource is observed.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) { o.pollInterval = d }
}

// NewResource builds a resource around the given loader.
func NewResource[T any](name string, loader Loader[T], opts ...Option) *Resource[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T]{
		name:         name,
		loader:       loader,
		pollInterval: o.pollInterval,
	}
}

// Get returns the last successfully loaded value, fetching when none exists
// yet. Concurrent first reads share a single in-flight fetch. A stale value is
// returned as-is while one refetch proceeds in the background.
func (r *Resource[T]) Get(ctx context.Context) (T, error) {
	r.mu.Lock()
	if r.loaded {
		v := r.value
		if r.stale && r.inflight == nil {
			r.startFetchLocked()
		}
		r.mu.Unlock()
		return v, nil
	}
	c := r.inflight
	if c == nil {
		c = r.startFetchLocked()
	}
	r.mu.Unlock()

	var zero T
	select {
	case <-c.done:
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	if c.err != nil {
		return zero, &FetchError{Resource: r.name, Err: c.err}
	}
	return c.val, nil
}

// Peek returns the cached value without triggering any fetch.
func (r *Resource[T]) Peek() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.loaded
}

// Invalidate marks the cached value stale. The next Get triggers a refetch but
// keeps serving the previous value until the refetch resolves. Invalidating an
// already-stale resource is a no-op.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return
	}
	r.stale = true
}

// Observe registers a consumer. While at least one observer exists and a poll
// interval is configured, the resource refetches periodically. The returned
// release func is idempotent; at zero observers polling stops, though a fetch
// already in flight completes and its result is kept.
func (r *Resource[T]) Observe() (release func()) {
	r.mu.Lock()
	r.observers++
	if r.observers == 1 && r.pollInterval > 0 {
		stop := make(chan struct{})
		r.stopPoll = stop
		go r.pollLoop(stop)
	}
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			r.observers--
			if r.observers == 0 && r.stopPoll != nil {
				close(r.stopPoll)
				r.stopPoll = nil
			}
			r.mu.Unlock()
		})
	}
}

func (r *Resource[T]) pollLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			c := r.inflight
			if c == nil {
				c = r.startFetchLocked()
			}
			r.mu.Unlock()
			// One refetch at a time; a slow registry must not pile up polls.
			<-c.done
		}
	}
}

// startFetchLocked spawns the shared fetch. The loader runs detached from any
// caller's context so a cancelled consumer does not abort a fetch other
// consumers are waiting on; its result is cached either way.
func (r *Resource[T]) startFetchLocked() *call[T] {
	c := &call[T]{done: make(chan struct{})}
	r.inflight = c
	go func() {
		val, err := r.loader(context.Background())
		r.mu.Lock()
		if err == nil {
			r.value = val
			r.loaded = true
			r.stale = false
		} else if r.loaded {
			// Background refresh failure: keep the last good value.
			logs.Warn("cache: refresh of %s failed, serving stale value: %v", r.name, err)
		}
		r.inflight = nil
		r.mu.Unlock()
		c.val, c.err = val, err
		close(c.done)
	}()
	return c
}
