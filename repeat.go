package headlessterm

import (
	"bytes"
	"strconv"
)

// MaxRepeatCount bounds CSI n b (REP) so a corrupt or hostile count can't
// force an unbounded number of synthesized Input calls.
const MaxRepeatCount = 65535

// scanRepeatSequences extracts CSI Pn b (REP) sequences ahead of the
// decoder and replays the preceding printable character directly, the same
// way scanUserVarSequences pulls a family of sequences out of the raw
// stream before go-ansicode sees them. go-ansicode's Handler interface has
// no Repeat-style callback (Terminal implements no such method and the
// teacher's own Handler satisfies the interface without one), so REP has
// no dispatch path unless this library recognizes it itself.
func (t *Terminal) scanRepeatSequences(data []byte) []byte {
	if !bytes.Contains(data, []byte("\x1b[")) {
		return data
	}

	var out []byte
	i := 0
	for i < len(data) {
		start := bytes.Index(data[i:], []byte("\x1b["))
		if start < 0 {
			out = append(out, data[i:]...)
			break
		}
		start += i
		out = append(out, data[i:start]...)

		j := start + 2
		for j < len(data) && data[j] >= '0' && data[j] <= '9' {
			j++
		}
		if j >= len(data) {
			// The parameter run hasn't closed yet; it may still become
			// "...b" once more bytes arrive on the next Write/OnReadable.
			out = append(out, data[start:]...)
			break
		}
		if data[j] != 'b' {
			// Not REP (digits followed by some other final byte, or no
			// digits at all) - leave the introducer for the real decoder.
			out = append(out, data[start:start+2]...)
			i = start + 2
			continue
		}

		n := 1
		if j > start+2 {
			parsed, err := strconv.Atoi(string(data[start+2 : j]))
			if err != nil {
				t.Unspecified(UnspecifiedAction{Control: 'b', Intermediates: data[start+2 : j]})
				i = j + 1
				continue
			}
			n = parsed
		}
		if n > MaxRepeatCount {
			n = MaxRepeatCount
		}
		t.applyRepeat(n)

		i = j + 1
	}
	return out
}

// applyRepeat replays the last printable character n times through the
// normal input path, so wrapping, insert mode, and charset translation all
// apply exactly as they would to a character typed that many times.
func (t *Terminal) applyRepeat(n int) {
	t.mu.RLock()
	r := t.lastPrintable
	t.mu.RUnlock()

	if r == 0 {
		return
	}
	for k := 0; k < n; k++ {
		t.Input(r)
	}
}
