// Package stream adapts an io.Reader into the core's Source/Checkpointer
// contract (parsec.Source, parsec.Checkpointer), so a Cursor can drive a
// parser directly off a file or network connection instead of requiring the
// whole input resident as a string up front. Checkpointing is bounded: only
// symbols still held in the internal buffer can be restored to, the same
// trade-off a single-pass network stream forces on any backtracking parser.
package stream

import (
	"bufio"
	"io"

	"github.com/tetrelok/parsec"
)

// Source reads runes from an underlying io.Reader one at a time, retaining a
// trailing window of already-read runes so that Checkpoint/Restore can
// rewind within that window. It implements parsec.Source and
// parsec.Checkpointer.
//
// pos counts total symbols emitted to the cursor so far; base is the
// absolute position of buf[0]. Both advance together as the window slides,
// so a mark captured before a trim still compares correctly against base.
type Source struct {
	r *bufio.Reader

	buf  []parsec.Symbol
	base int
	pos  int

	window int
}

// New wraps r as a Source, retaining up to window symbols of history for
// Checkpoint/Restore. A window of 0 means no backtracking is supported: a
// Restore to any mark behind the current read position panics.
func New(r io.Reader, window int) *Source {
	return &Source{r: bufio.NewReader(r), window: window}
}

// Next returns the next symbol, or (parsec.EOF, false) at EOF or on a read
// error.
func (s *Source) Next() (parsec.Symbol, bool) {
	if local := s.pos - s.base; local < len(s.buf) {
		sym := s.buf[local]
		s.pos++
		return sym, true
	}

	r, _, err := s.r.ReadRune()
	if err != nil {
		return parsec.EOF, false
	}

	sym := parsec.Symbol(r)
	s.buf = append(s.buf, sym)
	s.pos++
	s.trim()
	return sym, true
}

// trim drops buffered symbols older than the checkpoint window, advancing
// base in lockstep so outstanding marks remain comparable.
func (s *Source) trim() {
	if s.window <= 0 {
		s.buf = s.buf[:0]
		s.base = s.pos
		return
	}
	if excess := len(s.buf) - s.window; excess > 0 {
		s.buf = s.buf[excess:]
		s.base += excess
	}
}

// Checkpoint returns an opaque mark for the current read position.
func (s *Source) Checkpoint() int {
	return s.pos
}

// Restore rewinds to mark. It panics if mark has already fallen outside the
// retained window — the caller asked to backtrack further than the
// configured buffer allows.
func (s *Source) Restore(mark int) {
	if mark < s.base || mark > s.pos {
		panic("stream: checkpoint out of range, increase the buffer window")
	}
	s.pos = mark
}
