package headlessterm

import (
	"bytes"
	"time"
)

// DefaultSyncUpdateTimeout bounds how long a synchronized-update batch (mode
// 2026) can withhold a Frame notification before the watchdog forces one,
// so a host that never sends EndSync can't starve renderers indefinitely.
const DefaultSyncUpdateTimeout = 150 * time.Millisecond

// BeginSync starts (or extends, if already active) a synchronized-update
// batch: Frame notifications are withheld until the matching number of
// EndSync calls bring the nesting depth back to zero, or the watchdog
// fires first. Nesting is ref-counted so middleware and application code
// can both bracket overlapping regions safely.
func (t *Terminal) BeginSync() {
	t.beginSyncLocked()
}

// EndSync closes one level of synchronized-update nesting. When the nesting
// depth reaches zero, exactly one Frame notification is emitted for the
// whole batch.
func (t *Terminal) EndSync() {
	if t.endSyncLocked() {
		t.emitFrame()
	}
}

// beginSyncLocked holds the state transition BeginSync performs, without
// the public method's guarantee of emitting nothing (it never does).
// Split out so scanSyncSequences can drive the same bookkeeping from
// inside Write, which emits its own single Frame for the whole call.
func (t *Terminal) beginSyncLocked() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.syncDepth++
	if t.syncTimer != nil {
		t.syncTimer.Stop()
	}
	t.syncTimer = time.AfterFunc(t.syncTimeout, t.syncWatchdogFired)
}

// endSyncLocked holds the state transition EndSync performs and reports
// whether the batch just closed, but leaves emitting the Frame to the
// caller - EndSync emits immediately for direct callers, while
// scanSyncSequences defers to Write's own end-of-call emission so a
// Write that opens and closes a batch in one call emits exactly once.
func (t *Terminal) endSyncLocked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.syncDepth > 0 {
		t.syncDepth--
	}
	flush := t.syncDepth == 0
	if flush && t.syncTimer != nil {
		t.syncTimer.Stop()
		t.syncTimer = nil
	}
	return flush
}

// IsSyncActive reports whether a synchronized-update batch is open.
func (t *Terminal) IsSyncActive() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.syncDepth > 0
}

// syncWatchdogFired force-closes a synchronized-update batch that exceeded
// its timeout without a matching EndSync, so a misbehaving or crashed
// application can't suppress rendering forever.
func (t *Terminal) syncWatchdogFired() {
	t.mu.Lock()
	t.syncDepth = 0
	t.syncTimer = nil
	t.mu.Unlock()

	t.emitFrame()
}

var (
	oscSyncBegin = []byte("\x1b[?2026h")
	oscSyncEnd   = []byte("\x1b[?2026l")
)

// scanSyncSequences extracts synchronized-update mode toggles (DEC private
// mode 2026, CSI ? 2026 h/l) ahead of the decoder, the same way
// scanUserVarSequences pulls OSC 1337 sequences out before go-ansicode ever
// sees them. go-ansicode's TerminalMode enum has no case for 2026 (every
// ansicode.TerminalMode* constant this codebase references is enumerated in
// setModeLocked's switch, and 2026 isn't among them), so without this
// prescan BeginSync/EndSync would never be reachable from real input.
func (t *Terminal) scanSyncSequences(data []byte) []byte {
	if !bytes.Contains(data, oscSyncBegin) && !bytes.Contains(data, oscSyncEnd) {
		return data
	}

	var out []byte
	rest := data
	for len(rest) > 0 {
		beginIdx := bytes.Index(rest, oscSyncBegin)
		endIdx := bytes.Index(rest, oscSyncEnd)

		switch {
		case beginIdx < 0 && endIdx < 0:
			out = append(out, rest...)
			rest = nil
		case beginIdx >= 0 && (endIdx < 0 || beginIdx < endIdx):
			out = append(out, rest[:beginIdx]...)
			rest = rest[beginIdx+len(oscSyncBegin):]
			t.beginSyncLocked()
		default:
			out = append(out, rest[:endIdx]...)
			rest = rest[endIdx+len(oscSyncEnd):]
			t.endSyncLocked()
		}
	}
	return out
}

// emitFrame notifies the frame provider. Outside of a synchronized-update
// batch, callers invoke this after every mutating Write so renderers see
// one Frame per batch in both modes.
func (t *Terminal) emitFrame() {
	t.mu.RLock()
	provider := t.frameProvider
	t.mu.RUnlock()

	if provider != nil {
		provider.Frame()
	}
}
