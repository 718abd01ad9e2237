package headlessterm

import "time"

// Options bundles the configuration knobs that would otherwise be a long
// list of individual functional options, for hosts that build their
// terminal configuration from a single record (e.g. deserialized from a
// config file) rather than literal Option values.
type Options struct {
	Rows               int
	Cols               int
	ReadBufferCapacity int
	SyncUpdateTimeout  time.Duration
	ScrollbackRows     int
	TabInterval        int
}

// DefaultOptions returns the same defaults New() uses when no options are given.
func DefaultOptions() Options {
	return Options{
		Rows:               DEFAULT_ROWS,
		Cols:               DEFAULT_COLS,
		ReadBufferCapacity: DefaultReadBufferCapacity,
		SyncUpdateTimeout:  DefaultSyncUpdateTimeout,
		TabInterval:        8,
	}
}

// WithOptions applies a full Options record in one call. Zero-valued fields
// fall back to New()'s usual defaults (so a caller can start from
// DefaultOptions() and override only what they care about, or build an
// Options from scratch and leave fields unset for "use the default").
func WithOptions(o Options) Option {
	return func(t *Terminal) {
		rows, cols := o.Rows, o.Cols
		if rows == 0 {
			rows = DEFAULT_ROWS
		}
		if cols == 0 {
			cols = DEFAULT_COLS
		}
		WithSize(rows, cols)(t)

		if o.ReadBufferCapacity > 0 {
			WithReadBufferCapacity(o.ReadBufferCapacity)(t)
		}
		if o.SyncUpdateTimeout > 0 {
			WithSyncUpdateTimeout(o.SyncUpdateTimeout)(t)
		}
		if o.TabInterval > 0 {
			WithTabInterval(o.TabInterval)(t)
		}
		if o.ScrollbackRows > 0 {
			WithScrollback(NewMemoryScrollback(o.ScrollbackRows))(t)
		}
	}
}

// ReadBufferCapacity returns the read-buffer capacity a host should use
// when feeding bytes to Write (see [WithReadBufferCapacity]).
func (t *Terminal) ReadBufferCapacity() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.readBufferCapacity
}

// TabInterval returns the spacing of default tab stops in columns.
func (t *Terminal) TabInterval() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tabInterval
}
