package headlessterm

// RowDamage bounds the dirty columns of one row: cells in [MinCol, MaxCol]
// changed since the last ClearDirty call. Computed from the per-cell dirty
// bits already tracked by Buffer, so it augments rather than replaces them.
type RowDamage struct {
	Row    int
	MinCol int
	MaxCol int
}

// DamageFlags records screen-wide changes that a per-cell or per-row damage
// range cannot express (a renderer needs to react to these even when no
// single cell's range communicates them).
type DamageFlags struct {
	FullClear      bool // the screen was cleared, scrolled to a fresh buffer, or swapped screens
	TitleChanged   bool
	PaletteChanged bool
	CursorMoved    bool
	ModeChanged    bool
}

// Any reports whether at least one flag is set.
func (d DamageFlags) Any() bool {
	return d.FullClear || d.TitleChanged || d.PaletteChanged || d.CursorMoved || d.ModeChanged
}

// damageSnapshot captures the state DamageFlags diffs against, refreshed
// every time DamageFlags or ClearDirty is called.
type damageSnapshot struct {
	title          string
	modes          TerminalMode
	cursorRow      int
	cursorCol      int
	paletteVersion int
	valid          bool
}

// RowDamage returns the per-row dirty column bounds of the active buffer
// since the last ClearDirty call.
func (t *Terminal) RowDamage() []RowDamage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rowDamageLocked()
}

// rowDamageLocked is RowDamage's body for callers already holding t.mu.
func (t *Terminal) rowDamageLocked() []RowDamage {
	var damage []RowDamage
	rows := t.activeBuffer.Rows()
	cols := t.activeBuffer.Cols()
	for row := 0; row < rows; row++ {
		minCol, maxCol := -1, -1
		for col := 0; col < cols; col++ {
			cell := t.activeBuffer.Cell(row, col)
			if cell == nil || !cell.IsDirty() {
				continue
			}
			if minCol == -1 {
				minCol = col
			}
			maxCol = col
		}
		if minCol != -1 {
			damage = append(damage, RowDamage{Row: row, MinCol: minCol, MaxCol: maxCol})
		}
	}
	return damage
}

// DamageFlags returns the global damage flags accumulated since the last
// call to DamageFlags or ClearDirty. Title/mode/cursor changes are detected
// by diffing against the state observed at the previous call; full-clear
// events are latched explicitly by the few operations that cause them
// (ED 2/3, RIS, primary/alternate screen swap, Resize) since a content diff cannot
// reliably distinguish "cleared" from "coincidentally unchanged".
func (t *Terminal) DamageFlags() DamageFlags {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.computeAndLatchDamageLocked()
}

func (t *Terminal) computeAndLatchDamageLocked() DamageFlags {
	flags := t.damageFlags
	prev := t.damagePrev

	if prev.valid {
		if prev.title != t.title {
			flags.TitleChanged = true
		}
		if prev.modes != t.modes {
			flags.ModeChanged = true
		}
		if prev.cursorRow != t.cursor.Row || prev.cursorCol != t.cursor.Col {
			flags.CursorMoved = true
		}
		if prev.paletteVersion != t.paletteVersion {
			flags.PaletteChanged = true
		}
	}

	t.damagePrev = damageSnapshot{
		title:          t.title,
		modes:          t.modes,
		cursorRow:      t.cursor.Row,
		cursorCol:      t.cursor.Col,
		paletteVersion: t.paletteVersion,
		valid:          true,
	}
	t.damageFlags = DamageFlags{}

	return flags
}

// markFullClear records that the whole screen changed (ED 2/3, RIS, alt-screen swap, resize).
// Caller must hold t.mu.
func (t *Terminal) markFullClear() {
	t.damageFlags.FullClear = true
}
