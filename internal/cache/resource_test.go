package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingLoader counts fetches and lets the test control when each completes.
type blockingLoader struct {
	mu      sync.Mutex
	calls   int32
	results []int
	errs    []error
	gate    chan struct{}
}

func (l *blockingLoader) load(ctx context.Context) (int, error) {
	n := int(atomic.AddInt32(&l.calls, 1))
	if l.gate != nil {
		<-l.gate
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := n - 1
	if idx >= len(l.results) {
		idx = len(l.results) - 1
	}
	var err error
	if idx < len(l.errs) {
		err = l.errs[idx]
	}
	return l.results[idx], err
}

func (l *blockingLoader) count() int {
	return int(atomic.LoadInt32(&l.calls))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestGetFetchesOnce(t *testing.T) {
	loader := &blockingLoader{results: []int{42}}
	r := NewResource("test", loader.load)

	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, loader.count())
}

func TestConcurrentFirstReadsShareOneFetch(t *testing.T) {
	loader := &blockingLoader{results: []int{7}, gate: make(chan struct{})}
	r := NewResource("test", loader.load)

	const readers = 8
	var wg sync.WaitGroup
	values := make([]int, readers)
	errs := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = r.Get(context.Background())
		}(i)
	}

	waitFor(t, func() bool { return loader.count() == 1 })
	close(loader.gate)
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 7, values[i])
	}
	assert.Equal(t, 1, loader.count())
}

func TestFirstFetchFailureSurfacesFetchError(t *testing.T) {
	boom := errors.New("registry down")
	loader := &blockingLoader{results: []int{0, 9}, errs: []error{boom, nil}}
	r := NewResource("catalog", loader.load)

	_, err := r.Get(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "catalog", fe.Resource)
	assert.ErrorIs(t, err, boom)

	// Nothing was cached; the next Get retries and succeeds.
	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestInvalidateServesStaleWhileRefetching(t *testing.T) {
	loader := &blockingLoader{results: []int{1, 2}}
	r := NewResource("test", loader.load)

	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	r.Invalidate()

	// The stale value is returned immediately; the refetch runs in background.
	v, err = r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	waitFor(t, func() bool {
		val, _ := r.Peek()
		return val == 2
	})
	v, err = r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, loader.count())
}

func TestInvalidateIsIdempotent(t *testing.T) {
	loader := &blockingLoader{results: []int{1, 2}}
	r := NewResource("test", loader.load)

	_, err := r.Get(context.Background())
	require.NoError(t, err)

	r.Invalidate()
	r.Invalidate()
	r.Invalidate()

	_, _ = r.Get(context.Background())
	waitFor(t, func() bool {
		val, _ := r.Peek()
		return val == 2
	})
	// Repeated invalidations collapse into a single refetch.
	assert.Equal(t, 2, loader.count())
}

func TestInvalidateBeforeFirstLoadIsNoOp(t *testing.T) {
	loader := &blockingLoader{results: []int{5}}
	r := NewResource("test", loader.load)

	r.Invalidate()
	assert.Equal(t, 0, loader.count())

	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, loader.count())
}

func TestRefreshFailureKeepsLastGoodValue(t *testing.T) {
	loader := &blockingLoader{results: []int{1, 0}, errs: []error{nil, errors.New("boom")}}
	r := NewResource("test", loader.load)

	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	r.Invalidate()
	_, _ = r.Get(context.Background())
	waitFor(t, func() bool { return loader.count() == 2 })

	// Consumers keep seeing the previous value, not an error.
	v, err = r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestGetHonorsCallerCancellation(t *testing.T) {
	loader := &blockingLoader{results: []int{1}, gate: make(chan struct{})}
	r := NewResource("test", loader.load)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The fetch itself keeps running and its result is cached.
	close(loader.gate)
	waitFor(t, func() bool {
		_, loaded := r.Peek()
		return loaded
	})
	v, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, loader.count())
}

func TestObservePollsWhileObserved(t *testing.T) {
	loader := &blockingLoader{results: []int{1, 2, 3, 4, 5}}
	r := NewResource("test", loader.load, WithPollInterval(20*time.Millisecond))

	release := r.Observe()
	waitFor(t, func() bool { return loader.count() >= 2 })
	release()

	settled := loader.count()
	time.Sleep(100 * time.Millisecond)
	// A fetch already in flight may land after release; no new polls start.
	assert.LessOrEqual(t, loader.count(), settled+1)
}

func TestObserveReleaseIsIdempotent(t *testing.T) {
	loader := &blockingLoader{results: []int{1, 2, 3, 4, 5, 6, 7, 8}}
	r := NewResource("test", loader.load, WithPollInterval(10*time.Millisecond))

	first := r.Observe()
	second := r.Observe()

	// Releasing the same handle twice must not cancel the other observer.
	first()
	first()

	before := loader.count()
	waitFor(t, func() bool { return loader.count() > before })
	second()
}
