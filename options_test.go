package headlessterm

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultOptionsMatchNewDefaults(t *testing.T) {
	o := DefaultOptions()

	if o.Rows != DEFAULT_ROWS || o.Cols != DEFAULT_COLS {
		t.Errorf("expected defaults %dx%d, got %dx%d", DEFAULT_ROWS, DEFAULT_COLS, o.Rows, o.Cols)
	}
	if o.ReadBufferCapacity != DefaultReadBufferCapacity {
		t.Errorf("expected ReadBufferCapacity %d, got %d", DefaultReadBufferCapacity, o.ReadBufferCapacity)
	}
	if o.SyncUpdateTimeout != DefaultSyncUpdateTimeout {
		t.Errorf("expected SyncUpdateTimeout %v, got %v", DefaultSyncUpdateTimeout, o.SyncUpdateTimeout)
	}
}

func TestWithOptionsAppliesSize(t *testing.T) {
	term := New(WithOptions(Options{Rows: 10, Cols: 30}))

	if term.Rows() != 10 || term.Cols() != 30 {
		t.Errorf("expected 10x30, got %dx%d", term.Rows(), term.Cols())
	}
}

func TestWithOptionsZeroFieldsFallBackToDefaults(t *testing.T) {
	term := New(WithOptions(Options{}))

	if term.Rows() != DEFAULT_ROWS || term.Cols() != DEFAULT_COLS {
		t.Errorf("expected default size, got %dx%d", term.Rows(), term.Cols())
	}
	if term.ReadBufferCapacity() != DefaultReadBufferCapacity {
		t.Errorf("expected default read buffer capacity, got %d", term.ReadBufferCapacity())
	}
}

func TestWithOptionsAppliesTabInterval(t *testing.T) {
	term := New(WithOptions(Options{TabInterval: 4}))

	if term.TabInterval() != 4 {
		t.Errorf("expected tab interval 4, got %d", term.TabInterval())
	}
}

func TestWithOptionsAppliesSyncUpdateTimeout(t *testing.T) {
	frame := &countingFrame{}
	term := New(WithOptions(Options{SyncUpdateTimeout: 5 * time.Millisecond}), WithFrame(frame))

	term.BeginSync()
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) && !termFrameFired(frame) {
		time.Sleep(2 * time.Millisecond)
	}
	if !termFrameFired(frame) {
		t.Fatal("expected the configured short sync timeout to force a frame")
	}
}

func termFrameFired(f *countingFrame) bool {
	return atomic.LoadInt32(&f.count) > 0
}
