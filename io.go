package headlessterm

import "sync"

// WriteRequest is one queued mutation request for [Terminal.QueueWrite],
// letting a host that drives the terminal from an event loop (rather than
// calling Write synchronously) hand off bytes without blocking its own
// readiness callback.
type WriteRequest struct {
	Data []byte
}

// pendingWrites is a small FIFO of byte chunks queued via QueueWrite and
// drained by OnReadable, decoupling "bytes arrived" from "bytes applied"
// for hosts built around a single-threaded readiness-driven event loop.
type pendingWrites struct {
	mu    sync.Mutex
	queue [][]byte
}

func (p *pendingWrites) push(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	p.queue = append(p.queue, cp)
}

func (p *pendingWrites) drain() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.queue
	p.queue = nil
	return out
}

func (p *pendingWrites) has() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) > 0
}

// QueueWrite enqueues bytes to be applied on the next OnReadable call,
// for hosts that want to decouple "data arrived on the PTY" from "apply it
// to the terminal now" (e.g. to batch several reads before a render pass).
// Terminal.Write remains the direct, synchronous equivalent.
func (t *Terminal) QueueWrite(data []byte) {
	t.pending.push(data)
}

// HasPendingOutput reports whether QueueWrite has data not yet drained by
// OnReadable.
func (t *Terminal) HasPendingOutput() bool {
	return t.pending.has()
}

// OnReadable applies all bytes queued via QueueWrite since the last call,
// in order, as a single mutation batch (one Frame notification for the
// whole drain, matching Write's per-call framing).
func (t *Terminal) OnReadable() (int, error) {
	chunks := t.pending.drain()
	if len(chunks) == 0 {
		return 0, nil
	}

	total := 0
	for _, chunk := range chunks {
		t.recordingProvider.Record(chunk)
		data := t.scanUserVarSequences(chunk)
		data = t.scanNotificationSequences(data)
		data = t.scanSyncSequences(data)
		data = t.scanCharsetDesignations(data)
		data = t.scanSingleShiftSequences(data)
		data = t.scanRepeatSequences(data)
		if _, err := t.decoder.Write(data); err != nil {
			return total, err
		}
		total += len(chunk)
	}
	t.mu.Lock()
	t.generation++
	t.mu.Unlock()
	if !t.IsSyncActive() {
		t.emitFrame()
	}
	return total, nil
}

// OnWritable is a no-op hook for symmetry with OnReadable: this terminal has
// no owned output socket of its own (responses go through ResponseProvider,
// which is assumed to accept writes synchronously), so there is nothing to
// flush here. Present so a host's generic readiness-driven event loop can
// treat every driven resource uniformly.
func (t *Terminal) OnWritable() error {
	return nil
}

// Tick is a documented no-op: the synchronized-update watchdog (mode 2026)
// drives itself via an internal timer and does not need a host-polled
// clock. Tick exists so a host's generic readiness-driven event loop can
// call it unconditionally alongside OnReadable/OnWritable without special
// casing this terminal.
func (t *Terminal) Tick() {}
