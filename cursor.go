package parsec

// Source is the pull-based input contract a Cursor drives: one symbol at a
// time, with Symbol(EOF) once exhausted. Row/column bookkeeping is the
// Cursor's job, not the Source's (spec.md §6).
type Source interface {
	// Next returns the next symbol, or (EOF, false) once exhausted.
	Next() (Symbol, bool)
}

// Checkpointer is an optional capability a Source may implement to support
// backtracking beyond the Cursor's one-symbol lookahead. Sources that can't
// cheaply rewind (e.g. a single-pass network stream) simply don't implement
// it; Attempt then runs its parser without any rewinding.
type Checkpointer interface {
	Checkpoint() int
	Restore(mark int)
}

// Cursor is the cursor abstraction of spec.md §3: a one-symbol lookahead
// buffer over a Source, tracking row, column and byte offset. A Cursor is
// single-owner — it must not be driven by two parser invocations at once.
type Cursor struct {
	src Source

	sym Symbol

	row, col  int
	byteCount int64

	err *ParseError
}

// NewCursor primes a Cursor from src: after construction the cursor holds
// either a real symbol or EOF, per spec.md §3's invariant.
func NewCursor(src Source) *Cursor {
	c := &Cursor{src: src, row: 1, col: 1}
	c.sym, _ = src.Next()
	return c
}

// NewCursorFromString is a convenience constructor over an in-memory string,
// the common case for tests and the bundled examples.
func NewCursorFromString(s string) *Cursor {
	return NewCursor(newRuneSource([]rune(s)))
}

// Peek returns the buffered lookahead symbol without advancing.
func (c *Cursor) Peek() Symbol {
	return c.sym
}

// Position reports the current row, column and byte offset for diagnostics.
func (c *Cursor) Position() (row, col int, byteCount int64) {
	return c.row, c.col, c.byteCount
}

// Advance discards the buffered symbol and reads the next one, updating
// row/col/byteCount per spec.md §3: row increments on newline and col resets;
// col advances only on printable symbols, with the tab deviation documented
// in SPEC_FULL.md's Open Questions section; byteCount strictly increases.
func (c *Cursor) Advance() {
	if c.sym == EOF {
		return
	}

	if c.sym == '\n' {
		c.row++
		c.col = 1
	} else if c.sym == '\t' || PrintClass.Match(c.sym) {
		c.col++
	}

	c.byteCount += int64(len(string(rune(c.sym))))
	c.sym, _ = c.src.Next()
}

// Fail raises a parse error at the current position. It never panics: per
// SPEC_FULL.md's ambient-stack notes, hard failure is threaded through the
// Cursor's err field rather than an exception, so callers distinguish it
// from the ordinary boolean failure channel at the top level (spec.md §7,
// Design Notes "Exceptions for hard failures").
func (c *Cursor) Fail(msg, expectation string) {
	if c.err != nil {
		return
	}
	row, col, _ := c.Position()
	c.err = &ParseError{
		Message:     msg,
		Row:         row,
		Col:         col,
		Expectation: expectation,
		Offending:   c.sym,
	}
}

// Err returns the raised parse error, if any. Only expect-class parsers and
// Strict wrappers ever set it (spec.md §3).
func (c *Cursor) Err() *ParseError {
	return c.err
}

// Checkpoint saves the current position if the underlying Source supports
// it. ok is false when the Source has no Checkpointer capability.
func (c *Cursor) Checkpoint() (mark cursorMark, ok bool) {
	cp, ok := c.src.(Checkpointer)
	if !ok {
		return cursorMark{}, false
	}
	return cursorMark{
		srcMark:   cp.Checkpoint(),
		sym:       c.sym,
		row:       c.row,
		col:       c.col,
		byteCount: c.byteCount,
		err:       c.err,
	}, true
}

// Restore rewinds the cursor to a mark obtained from Checkpoint, including
// whatever error was (or wasn't) raised at mark time. A caller that restores
// past a raised ParseError is declaring that failure recoverable — the
// error must not outlive the position it was raised at, or every later
// Or/Any-class check on this cursor would see a stale c.Err() and refuse to
// try its fallback for the rest of the parse.
func (c *Cursor) Restore(mark cursorMark) {
	cp := c.src.(Checkpointer)
	cp.Restore(mark.srcMark)
	c.sym = mark.sym
	c.row = mark.row
	c.col = mark.col
	c.byteCount = mark.byteCount
	c.err = mark.err
}

// cursorMark is an opaque saved position, valid only for the Cursor/Source
// pair that produced it.
type cursorMark struct {
	srcMark   int
	sym       Symbol
	row, col  int
	byteCount int64
	err       *ParseError
}

// runeSource is the default in-memory Source, backing NewCursorFromString.
// It implements Checkpointer trivially since the
// whole input is already resident.
type runeSource struct {
	runes []rune
	pos   int
}

func newRuneSource(runes []rune) *runeSource {
	return &runeSource{runes: runes}
}

func (s *runeSource) Next() (Symbol, bool) {
	if s.pos >= len(s.runes) {
		return EOF, false
	}
	r := s.runes[s.pos]
	s.pos++
	return Symbol(r), true
}

func (s *runeSource) Checkpoint() int {
	return s.pos
}

func (s *runeSource) Restore(mark int) {
	s.pos = mark
}
