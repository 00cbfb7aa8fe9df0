// Package notifications keeps the unread-notification badge fresh while a
// session is active.
package notifications

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
	"golang.org/x/sync/singleflight"
)

// Counter is the one backend call the poller needs.
type Counter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// Poller refreshes the unread count on a fixed interval. A tick and a
// manual Refresh that overlap share one request.
type Poller struct {
	counter  Counter
	interval time.Duration
	log      logging.Logger

	group singleflight.Group
	count atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(counter Counter, interval time.Duration, log logging.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{counter: counter, interval: interval, log: log}
}

// Start begins polling. It refreshes once right away and is a no-op when
// the poller is already running.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.loop(ctx, p.done)
	p.log.Debug(ctx, "notification poller started", "interval", p.interval.String())
}

// Stop cancels polling and waits for the loop to exit. The cached count
// is reset.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.count.Store(0)
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Count is the last unread count seen.
func (p *Poller) Count() int {
	return int(p.count.Load())
}

// Refresh fetches the unread count now, joining an in-flight fetch if
// there is one.
func (p *Poller) Refresh(ctx context.Context) (int, error) {
	v, err, _ := p.group.Do("unread", func() (any, error) {
		return p.counter.UnreadCount(ctx)
	})
	if err != nil {
		return p.Count(), err
	}
	n := v.(int)
	p.count.Store(int64(n))
	return n, nil
}

// Follow starts and stops the poller as the session state changes, until
// ctx is done or states is closed. The poller is stopped on return.
func (p *Poller) Follow(ctx context.Context, initial session.State, states <-chan session.State) {
	defer p.Stop()

	apply := func(st session.State) {
		if st == session.StateAuthenticated {
			p.Start(ctx)
		} else {
			p.Stop()
		}
	}
	apply(initial)

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok {
				return
			}
			apply(st)
		}
	}
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	n, err := p.Refresh(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Warn(ctx, "unread count refresh failed", "error", err)
		}
		return
	}
	p.log.Debug(ctx, "unread count", "count", n)
}
