package headlessterm

import "testing"

func TestMemoryScrollbackPushAndLine(t *testing.T) {
	sb := NewMemoryScrollback(10)

	sb.Push([]Cell{{Char: 'A'}, {Char: 'B'}})
	sb.Push([]Cell{{Char: 'C'}})

	if sb.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", sb.Len())
	}
	if got := sb.Line(0); len(got) != 2 || got[0].Char != 'A' {
		t.Errorf("unexpected line 0: %+v", got)
	}
	if got := sb.Line(1); len(got) != 1 || got[0].Char != 'C' {
		t.Errorf("unexpected line 1: %+v", got)
	}
}

func TestMemoryScrollbackLineOutOfBounds(t *testing.T) {
	sb := NewMemoryScrollback(10)
	sb.Push([]Cell{{Char: 'A'}})

	if sb.Line(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if sb.Line(5) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestMemoryScrollbackDropsOldestPastMaxLines(t *testing.T) {
	sb := NewMemoryScrollback(2)

	sb.Push([]Cell{{Char: '1'}})
	sb.Push([]Cell{{Char: '2'}})
	sb.Push([]Cell{{Char: '3'}})

	if sb.Len() != 2 {
		t.Fatalf("expected 2 lines after exceeding cap, got %d", sb.Len())
	}
	if sb.Line(0)[0].Char != '2' || sb.Line(1)[0].Char != '3' {
		t.Error("expected the oldest line to be dropped")
	}
}

func TestMemoryScrollbackUnlimitedWhenNonPositive(t *testing.T) {
	sb := NewMemoryScrollback(0)

	for i := 0; i < 100; i++ {
		sb.Push([]Cell{{Char: 'x'}})
	}

	if sb.Len() != 100 {
		t.Errorf("expected unlimited growth, got %d lines", sb.Len())
	}
}

func TestMemoryScrollbackClear(t *testing.T) {
	sb := NewMemoryScrollback(10)
	sb.Push([]Cell{{Char: 'A'}})

	sb.Clear()

	if sb.Len() != 0 {
		t.Error("expected 0 lines after Clear")
	}
}

func TestMemoryScrollbackSetMaxLinesTrimsExisting(t *testing.T) {
	sb := NewMemoryScrollback(10)
	for i := 0; i < 5; i++ {
		sb.Push([]Cell{{Char: rune('0' + i)}})
	}

	sb.SetMaxLines(2)

	if sb.Len() != 2 {
		t.Fatalf("expected trimming to 2 lines, got %d", sb.Len())
	}
	if sb.Line(0)[0].Char != '3' || sb.Line(1)[0].Char != '4' {
		t.Error("expected the oldest lines to be dropped on SetMaxLines")
	}
	if sb.MaxLines() != 2 {
		t.Errorf("expected MaxLines() to report 2, got %d", sb.MaxLines())
	}
}

func TestMemoryScrollbackImplementsProvider(t *testing.T) {
	var _ ScrollbackProvider = NewMemoryScrollback(10)
}
