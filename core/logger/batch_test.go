package logger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushRecorder struct {
	mu      sync.Mutex
	batches [][]Entry
	notify  chan int
}

func newFlushRecorder() *flushRecorder {
	return &flushRecorder{notify: make(chan int, 16)}
}

func (r *flushRecorder) flush(_ context.Context, entries []Entry) error {
	r.mu.Lock()
	batch := make([]Entry, len(entries))
	copy(batch, entries)
	r.batches = append(r.batches, batch)
	r.mu.Unlock()
	r.notify <- len(entries)
	return nil
}

func (r *flushRecorder) batchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func testEntry(msg string) Entry {
	return Entry{ID: msg, Time: time.Now(), Level: "INFO", Message: msg}
}

func TestBatcher_FlushesAtMaxSize(t *testing.T) {
	t.Parallel()

	rec := newFlushRecorder()
	b := newBatcher(3, time.Hour, rec.flush, nil)
	defer b.Close(context.Background())

	b.add(testEntry("a"))
	b.add(testEntry("b"))
	b.add(testEntry("c"))

	select {
	case n := <-rec.notify:
		assert.Equal(t, 3, n, "batch flushed with exactly max entries")
	case <-time.After(2 * time.Second):
		t.Fatal("expected size-triggered flush")
	}
	assert.Equal(t, 1, rec.batchCount())
}

func TestBatcher_FlushesOnInterval(t *testing.T) {
	t.Parallel()

	rec := newFlushRecorder()
	b := newBatcher(100, 50*time.Millisecond, rec.flush, nil)
	defer b.Close(context.Background())

	b.add(testEntry("only"))

	select {
	case n := <-rec.notify:
		assert.Equal(t, 1, n, "timer flushed the partial batch")
	case <-time.After(2 * time.Second):
		t.Fatal("expected timer-triggered flush")
	}
}

func TestBatcher_ManualFlushDrainsPendingEntries(t *testing.T) {
	t.Parallel()

	rec := newFlushRecorder()
	b := newBatcher(100, time.Hour, rec.flush, nil)
	defer b.Close(context.Background())

	b.add(testEntry("a"))
	b.add(testEntry("b"))

	require.NoError(t, b.Flush(context.Background()))

	select {
	case n := <-rec.notify:
		assert.Equal(t, 2, n)
	default:
		t.Fatal("manual flush did not write the batch")
	}
}

func TestBatcher_FlushWithNothingBufferedIsNoop(t *testing.T) {
	t.Parallel()

	rec := newFlushRecorder()
	b := newBatcher(10, time.Hour, rec.flush, nil)
	defer b.Close(context.Background())

	require.NoError(t, b.Flush(context.Background()))
	assert.Equal(t, 0, rec.batchCount())
}

func TestBatcher_CloseFlushesRemaining(t *testing.T) {
	t.Parallel()

	rec := newFlushRecorder()
	b := newBatcher(100, time.Hour, rec.flush, nil)

	b.add(testEntry("a"))
	b.add(testEntry("b"))
	b.add(testEntry("c"))

	require.NoError(t, b.Close(context.Background()))

	select {
	case n := <-rec.notify:
		assert.Equal(t, 3, n, "close drained and flushed the buffer")
	default:
		t.Fatal("close did not flush remaining entries")
	}

	// Writes after close are discarded, not panics.
	b.add(testEntry("late"))
	require.NoError(t, b.Close(context.Background()))
}

func TestBatcher_ReportsFlushErrors(t *testing.T) {
	t.Parallel()

	errs := make(chan error, 1)
	b := newBatcher(1, time.Hour,
		func(context.Context, []Entry) error { return assert.AnError },
		func(err error) { errs <- err },
	)
	defer b.Close(context.Background())

	b.add(testEntry("boom"))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(2 * time.Second):
		t.Fatal("flush error was not reported")
	}
}
