package logger

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// flushFunc performs one bulk write of buffered entries to a sink.
type flushFunc func(ctx context.Context, entries []Entry) error

// batcher buffers entries and flushes them as a single batch once the buffer
// reaches max entries or the flush interval elapses, whichever comes first.
// All buffer access happens on one background goroutine; producers only talk
// to it through channels, so enqueueing never blocks on a slow sink.
type batcher struct {
	in       chan Entry
	flushReq chan chan error
	quit     chan struct{}
	stopped  chan struct{}

	max      int
	interval time.Duration
	flush    flushFunc
	onError  func(error)

	closed   atomic.Bool
	quitOnce sync.Once
}

func newBatcher(max int, interval time.Duration, flush flushFunc, onError func(error)) *batcher {
	if max <= 0 {
		max = 100
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}

	b := &batcher{
		in:       make(chan Entry, max*2),
		flushReq: make(chan chan error),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
		max:      max,
		interval: interval,
		flush:    flush,
		onError:  onError,
	}
	go b.run()
	return b
}

// add enqueues an entry. When the buffer channel is saturated (the sink is
// far behind) the entry is dropped rather than blocking the caller.
func (b *batcher) add(e Entry) {
	if b.closed.Load() {
		return
	}
	select {
	case b.in <- e:
	default:
	}
}

func (b *batcher) run() {
	defer close(b.stopped)

	buf := make([]Entry, 0, b.max)
	timer := time.NewTimer(b.interval)
	defer timer.Stop()

	doFlush := func() error {
		if len(buf) == 0 {
			return nil
		}
		batch := buf
		buf = make([]Entry, 0, b.max)
		err := b.flush(context.Background(), batch)
		if err != nil && b.onError != nil {
			b.onError(err)
		}
		return err
	}

	resetTimer := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(b.interval)
	}

	// drain moves everything already enqueued into the buffer without
	// blocking, so flush and shutdown observe prior writes.
	drain := func() {
		for {
			select {
			case e := <-b.in:
				buf = append(buf, e)
			default:
				return
			}
		}
	}

	for {
		select {
		case e := <-b.in:
			buf = append(buf, e)
			if len(buf) >= b.max {
				_ = doFlush()
				resetTimer()
			}
		case <-timer.C:
			_ = doFlush()
			timer.Reset(b.interval)
		case reply := <-b.flushReq:
			drain()
			reply <- doFlush()
			resetTimer()
		case <-b.quit:
			drain()
			_ = doFlush()
			return
		}
	}
}

// Flush forces a bulk write of everything buffered so far and reports the
// write error, if any.
func (b *batcher) Flush(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case b.flushReq <- reply:
	case <-b.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-b.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains and flushes the remaining entries, then stops the background
// goroutine. Entries added after Close are discarded.
func (b *batcher) Close(ctx context.Context) error {
	b.closed.Store(true)
	b.quitOnce.Do(func() { close(b.quit) })
	select {
	case <-b.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
