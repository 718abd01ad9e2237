package headlessterm

import "sync"

// MemoryScrollback is an in-memory [ScrollbackProvider] that retains up to
// MaxLines() of scrolled-off history, dropping the oldest line once the
// limit is exceeded.
type MemoryScrollback struct {
	mu       sync.Mutex
	lines    [][]Cell
	maxLines int
}

// NewMemoryScrollback creates an in-memory scrollback store capped at
// maxLines. A non-positive maxLines means unlimited.
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{maxLines: maxLines}
}

// Push appends a line, evicting the oldest line if MaxLines() is exceeded.
func (m *MemoryScrollback) Push(line []Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]Cell, len(line))
	copy(cp, line)
	m.lines = append(m.lines, cp)

	if m.maxLines > 0 && len(m.lines) > m.maxLines {
		drop := len(m.lines) - m.maxLines
		m.lines = m.lines[drop:]
	}
}

// Len returns the number of stored lines.
func (m *MemoryScrollback) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Line returns the line at index (0 = oldest), or nil if out of range.
func (m *MemoryScrollback) Line(index int) []Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.lines) {
		return nil
	}
	return m.lines[index]
}

// Clear removes all stored lines.
func (m *MemoryScrollback) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
}

// SetMaxLines changes the capacity, trimming oldest lines if now over limit.
func (m *MemoryScrollback) SetMaxLines(max int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxLines = max
	if max > 0 && len(m.lines) > max {
		drop := len(m.lines) - max
		m.lines = m.lines[drop:]
	}
}

// MaxLines returns the current capacity (non-positive means unlimited).
func (m *MemoryScrollback) MaxLines() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxLines
}

var _ ScrollbackProvider = (*MemoryScrollback)(nil)
