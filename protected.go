package headlessterm

// SetProtectedMode toggles DECSCA character protection for subsequently written
// cells. Protected cells are exempt from selective erase (see
// [Terminal.EraseInLineSelective] and [Terminal.EraseInDisplaySelective]).
func (t *Terminal) SetProtectedMode(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if on {
		t.template.SetFlag(CellFlagProtected)
	} else {
		t.template.ClearFlag(CellFlagProtected)
	}
}

// ProtectedMode reports whether new characters are currently marked protected.
func (t *Terminal) ProtectedMode() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.template.HasFlag(CellFlagProtected)
}

// EraseInLineSelective clears the given region of the current line, skipping
// protected cells (DECSEL). go-ansicode's Handler interface does not
// distinguish selective from non-selective erase at the CSI-dispatch
// boundary, so this is exposed as a direct API rather than wired to an
// escape sequence.
func (t *Terminal) EraseInLineSelective(startCol, endCol int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.ClearRowRangeSelective(t.cursor.Row, startCol, endCol)
}

// EraseInDisplaySelective clears rows [startRow, endRow) entirely, skipping
// protected cells (DECSED).
func (t *Terminal) EraseInDisplaySelective(startRow, endRow int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for row := startRow; row < endRow; row++ {
		t.activeBuffer.ClearRowSelective(row)
	}
}
