package headlessterm

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingFrame struct {
	count int32
}

func (c *countingFrame) Frame() {
	atomic.AddInt32(&c.count, 1)
}

func TestWriteEmitsOneFramePerCall(t *testing.T) {
	frame := &countingFrame{}
	term := New(WithSize(5, 10), WithFrame(frame))

	term.WriteString("hello")

	if got := atomic.LoadInt32(&frame.count); got != 1 {
		t.Errorf("expected 1 frame, got %d", got)
	}
}

func TestSyncBatchEmitsOneFrameOnEnd(t *testing.T) {
	frame := &countingFrame{}
	term := New(WithSize(5, 10), WithFrame(frame))

	term.BeginSync()
	term.WriteString("one")
	term.WriteString("two")
	if got := atomic.LoadInt32(&frame.count); got != 0 {
		t.Errorf("expected no frame before EndSync, got %d", got)
	}
	term.EndSync()

	if got := atomic.LoadInt32(&frame.count); got != 1 {
		t.Errorf("expected exactly 1 frame after EndSync, got %d", got)
	}
}

func TestSyncNestingFlushesOnOutermostEnd(t *testing.T) {
	frame := &countingFrame{}
	term := New(WithSize(5, 10), WithFrame(frame))

	term.BeginSync()
	term.BeginSync()
	term.WriteString("x")
	term.EndSync()
	if !term.IsSyncActive() {
		t.Error("expected sync still active after inner EndSync")
	}
	if got := atomic.LoadInt32(&frame.count); got != 0 {
		t.Errorf("expected no frame until outermost EndSync, got %d", got)
	}

	term.EndSync()
	if term.IsSyncActive() {
		t.Error("expected sync inactive after outermost EndSync")
	}
	if got := atomic.LoadInt32(&frame.count); got != 1 {
		t.Errorf("expected 1 frame after outermost EndSync, got %d", got)
	}
}

func TestSyncWatchdogForcesFrameOnTimeout(t *testing.T) {
	frame := &countingFrame{}
	term := New(WithSize(5, 10), WithFrame(frame), WithSyncUpdateTimeout(20*time.Millisecond))

	term.BeginSync()
	term.WriteString("stuck")

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if atomic.LoadInt32(&frame.count) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := atomic.LoadInt32(&frame.count); got != 1 {
		t.Fatalf("expected watchdog to force exactly 1 frame, got %d", got)
	}
	if term.IsSyncActive() {
		t.Error("expected watchdog to close the sync batch")
	}
}

func TestSyncModeViaWriteSuppressesFrameUntilEnd(t *testing.T) {
	frame := &countingFrame{}
	term := New(WithSize(5, 10), WithFrame(frame))

	term.WriteString("\x1b[?2026hone")
	if term.IsSyncActive() != true {
		t.Fatal("expected \\x1b[?2026h to open a synchronized-update batch")
	}
	if got := atomic.LoadInt32(&frame.count); got != 0 {
		t.Errorf("expected no frame while the batch is open, got %d", got)
	}

	term.WriteString("two\x1b[?2026l")
	if term.IsSyncActive() {
		t.Error("expected \\x1b[?2026l to close the batch")
	}
	if got := atomic.LoadInt32(&frame.count); got != 1 {
		t.Errorf("expected exactly 1 frame once the batch closes, got %d", got)
	}
	if got := term.LineContent(0); got != "onetwo" {
		t.Errorf("expected the bracketed text to still reach the buffer, got %q", got)
	}
}

func TestSyncModeSplitAcrossWritesStillOpensBatch(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("\x1b[?2026h")
	if !term.IsSyncActive() {
		t.Fatal("expected the batch to open even when the toggle arrives alone")
	}
	term.WriteString("\x1b[?2026l")
	if term.IsSyncActive() {
		t.Error("expected the matching close toggle to end the batch")
	}
}

func TestEndSyncWithoutBeginIsNoop(t *testing.T) {
	term := New(WithSize(5, 10))

	term.EndSync()

	if term.IsSyncActive() {
		t.Error("expected sync inactive")
	}
}
