package parsec

// Accept lifts a predicate to a soft-failing parser: if the predicate
// matches the cursor's lookahead, the matched symbol is appended to the
// caller's string slot (if any) and the cursor advances. On mismatch it
// returns false without advancing and without raising a ParseError — the
// non-consumption invariant spec.md §8 requires of every predicate-based
// accept.
func Accept(pred Predicate) Parser[string] {
	return func(c *Cursor, out *string) bool {
		if !pred.Match(c.Peek()) {
			return false
		}

		sym := c.Peek()
		c.Advance()
		if out != nil {
			*out += string(rune(sym))
		}
		return true
	}
}

// Expect is Accept, but raises a ParseError naming pred on mismatch instead
// of returning a silently recoverable failure. Only expect-class parsers
// raise (spec.md §3, §7).
func Expect(pred Predicate) Parser[string] {
	return func(c *Cursor, out *string) bool {
		if !pred.Match(c.Peek()) {
			c.Fail("", pred.Name())
			return false
		}

		sym := c.Peek()
		c.Advance()
		if out != nil {
			*out += string(rune(sym))
		}
		return true
	}
}

// Succ always succeeds and does nothing to the cursor or the result slot.
func Succ[O any](c *Cursor, out *O) bool {
	return true
}

// Fail never succeeds and does nothing to the cursor or the result slot.
func Fail[O any](c *Cursor, out *O) bool {
	return false
}

// Strict wraps parser so that any failure it produces is escalated to a
// raised ParseError naming expectation, regardless of whether the failure
// was originally soft or committed. This is the core's only way to turn a
// committed failure into the "Raised" state spec.md §4.9's state machine
// describes, short of using expect directly.
func Strict[O any](parser Parser[O], expectation string) Parser[O] {
	return func(c *Cursor, out *O) bool {
		if parser(c, out) {
			return true
		}
		c.Fail("", expectation)
		return false
	}
}
