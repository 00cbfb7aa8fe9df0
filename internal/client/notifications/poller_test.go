package notifications

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	calls atomic.Int32
	value atomic.Int32
	err   error
	gate  chan struct{}
}

func (f *fakeCounter) UnreadCount(ctx context.Context) (int, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	if f.err != nil {
		return 0, f.err
	}
	return int(f.value.Load()), nil
}

func TestPoller_StartRefreshesImmediatelyAndOnTicks(t *testing.T) {
	fc := &fakeCounter{}
	fc.value.Store(3)
	p := NewPoller(fc, 10*time.Millisecond, logging.Discard())

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return p.Count() == 3 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return fc.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, p.Running())
}

func TestPoller_StartIsIdempotentAndStopWaits(t *testing.T) {
	fc := &fakeCounter{}
	p := NewPoller(fc, time.Hour, logging.Discard())

	p.Start(context.Background())
	p.Start(context.Background())
	require.Eventually(t, func() bool { return fc.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	p.Stop()
	assert.False(t, p.Running())
	assert.Zero(t, p.Count())

	p.Stop()
}

func TestPoller_ConcurrentRefreshSharesOneCall(t *testing.T) {
	fc := &fakeCounter{gate: make(chan struct{})}
	fc.value.Store(7)
	p := NewPoller(fc, time.Hour, logging.Discard())

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := p.Refresh(context.Background())
			assert.NoError(t, err)
			results[i] = n
		}(i)
	}

	require.Eventually(t, func() bool { return fc.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(fc.gate)
	wg.Wait()

	assert.Equal(t, int32(1), fc.calls.Load())
	assert.Equal(t, []int{7, 7, 7, 7, 7}, results)
}

func TestPoller_RefreshErrorKeepsLastCount(t *testing.T) {
	fc := &fakeCounter{}
	fc.value.Store(2)
	p := NewPoller(fc, time.Hour, logging.Discard())

	n, err := p.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	fc.err = errors.New("boom")
	n, err = p.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, n)
}

func TestPoller_FollowTracksSession(t *testing.T) {
	fc := &fakeCounter{}
	p := NewPoller(fc, time.Hour, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	states := make(chan session.State)
	done := make(chan struct{})
	go func() {
		p.Follow(ctx, session.StateAnonymous, states)
		close(done)
	}()

	assert.Never(t, p.Running, 30*time.Millisecond, 5*time.Millisecond)

	states <- session.StateAuthenticated
	require.Eventually(t, p.Running, time.Second, 5*time.Millisecond)

	states <- session.StateAnonymous
	require.Eventually(t, func() bool { return !p.Running() }, time.Second, 5*time.Millisecond)

	states <- session.StateAuthenticated
	require.Eventually(t, p.Running, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.False(t, p.Running())
}
