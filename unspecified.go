package headlessterm

// UnspecifiedAction describes a sequence this terminal could not fully
// interpret: a recognized OSC/CSI family whose body didn't parse (bad
// base64, a malformed REP count), or a private sequence entirely outside
// this library's dispatch table. The parser never fails on these; it
// reports them here, for diagnostic logging, and moves on.
type UnspecifiedAction struct {
	// Control is the dispatching byte associated with the sequence (the
	// OSC/CSI final byte, or the identifying byte of the family involved).
	Control byte
	// Intermediates carries whatever raw bytes of the sequence body could
	// not be interpreted.
	Intermediates []byte
}

// DiagnosticsProvider receives sequences this terminal recognized the
// shape of but could not carry out. Defaults to a no-op.
type DiagnosticsProvider interface {
	Unspecified(action UnspecifiedAction)
}

// NoopDiagnostics discards all diagnostic reports.
type NoopDiagnostics struct{}

func (NoopDiagnostics) Unspecified(UnspecifiedAction) {}

var _ DiagnosticsProvider = NoopDiagnostics{}

// Unspecified reports a sequence that could not be fully interpreted to
// the configured diagnostics provider.
//
// This only covers parsing this library owns directly (the OSC 1337, OSC 99
// and REP prescans, Kitty graphics APC and sixel DCS bodies): go-ansicode
// exposes no generic fallback
// callback on Handler for sequences it decodes and fails to recognize
// internally, so fully-unrecognized CSI/ESC sequences decoded purely
// inside go-ansicode are not observable here.
func (t *Terminal) Unspecified(action UnspecifiedAction) {
	t.mu.RLock()
	provider := t.diagnosticsProvider
	t.mu.RUnlock()

	if provider == nil {
		return
	}
	provider.Unspecified(action)
}

// SetDiagnosticsProvider sets the diagnostics provider at runtime.
func (t *Terminal) SetDiagnosticsProvider(p DiagnosticsProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.diagnosticsProvider = p
}

// DiagnosticsProvider returns the current diagnostics provider.
func (t *Terminal) DiagnosticsProvider() DiagnosticsProvider {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.diagnosticsProvider
}
