package headlessterm

import "bytes"

// charsetDesignators maps the ESC intermediate byte that selects a G-set
// slot to that slot's index (ESC ( = G0, ESC ) = G1, ESC * = G2, ESC + = G3).
var charsetDesignators = map[byte]CharsetIndex{
	'(': CharsetIndexG0,
	')': CharsetIndexG1,
	'*': CharsetIndexG2,
	'+': CharsetIndexG3,
}

// charsetFinals maps the final byte of a charset designation sequence to
// the local Charset it selects. Only the finals this terminal actually
// distinguishes are listed; any other final is left untouched for
// go-ansicode's own ConfigureCharset dispatch.
var charsetFinals = map[byte]Charset{
	'A': CharsetUK,
	'B': CharsetASCII,
	'0': CharsetLineDrawing,
}

// scanCharsetDesignations extracts ESC ( / ) / * / + <final> charset
// designations ahead of the decoder and applies them directly against the
// local Charset enum, instead of going through ConfigureCharset's blind
// numeric cast from ansicode.Charset (whose ordinal alignment with this
// library's Charset enum can't be verified without go-ansicode's source).
// This is the real dispatch path for ESC ( A and friends; ConfigureCharset
// remains in place for any designation this map doesn't recognize.
func (t *Terminal) scanCharsetDesignations(data []byte) []byte {
	if bytes.IndexByte(data, 0x1b) < 0 {
		return data
	}

	var out []byte
	i := 0
	for i < len(data) {
		esc := bytes.IndexByte(data[i:], 0x1b)
		if esc < 0 {
			out = append(out, data[i:]...)
			break
		}
		esc += i
		out = append(out, data[i:esc]...)

		if esc+1 >= len(data) {
			out = append(out, data[esc:]...)
			break
		}
		idx, isDesignator := charsetDesignators[data[esc+1]]
		if !isDesignator {
			out = append(out, data[esc])
			i = esc + 1
			continue
		}
		if esc+2 >= len(data) {
			// The final byte hasn't arrived yet in this chunk.
			out = append(out, data[esc:]...)
			break
		}
		cs, known := charsetFinals[data[esc+2]]
		if !known {
			out = append(out, data[esc:esc+3]...)
			i = esc + 3
			continue
		}
		t.designateCharset(idx, cs)
		i = esc + 3
	}
	return out
}

func (t *Terminal) designateCharset(index CharsetIndex, cs Charset) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index >= 0 && index <= CharsetIndexG3 {
		t.charsets[index] = cs
	}
}

var (
	ss2Escape = []byte("\x1bN")
	ss3Escape = []byte("\x1bO")
)

// scanSingleShiftSequences extracts SS2 (ESC N) and SS3 (ESC O) ahead of
// the decoder. Neither SingleShift2 nor SingleShift3 exists on the
// teacher's Handler implementation (go-headless-term has no single-shift
// support at all), so there's no evidence go-ansicode's Handler interface
// requires - or even calls - methods by these names; without this prescan
// they were only ever reachable by calling them directly, never from a
// real ESC N/O byte sequence.
func (t *Terminal) scanSingleShiftSequences(data []byte) []byte {
	if !bytes.Contains(data, ss2Escape) && !bytes.Contains(data, ss3Escape) {
		return data
	}

	var out []byte
	rest := data
	for len(rest) > 0 {
		ss2Idx := bytes.Index(rest, ss2Escape)
		ss3Idx := bytes.Index(rest, ss3Escape)

		switch {
		case ss2Idx < 0 && ss3Idx < 0:
			out = append(out, rest...)
			rest = nil
		case ss2Idx >= 0 && (ss3Idx < 0 || ss2Idx < ss3Idx):
			out = append(out, rest[:ss2Idx]...)
			rest = rest[ss2Idx+len(ss2Escape):]
			t.SingleShift2()
		default:
			out = append(out, rest[:ss3Idx]...)
			rest = rest[ss3Idx+len(ss3Escape):]
			t.SingleShift3()
		}
	}
	return out
}
