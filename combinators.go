package parsec

// Or is ordered choice, `p || q` (spec.md §4.4). It runs p; if p succeeds, Or
// succeeds. Otherwise, only if p did not consume any input, it runs q and
// returns q's outcome. If p fails after consuming (a committed failure), Or
// fails outright — full backtracking across a consuming first alternative
// requires wrapping p in Attempt.
func Or[O any](p, q Parser[O]) Parser[O] {
	return func(c *Cursor, out *O) bool {
		_, _, before := c.Position()

		if p(c, out) {
			return true
		}
		if c.Err() != nil {
			return false
		}

		_, _, after := c.Position()
		if after != before {
			return false
		}

		return q(c, out)
	}
}

// Alternative tests a list of parsers in order, one by one, folding them
// with Or, until one succeeds (spec.md §4.4 generalized to arity n, the way
// the teacher's branch.go generalizes the same operator).
func Alternative[O any](parsers ...Parser[O]) Parser[O] {
	if len(parsers) == 0 {
		return Parser[O](Fail[O])
	}

	combined := parsers[0]
	for _, p := range parsers[1:] {
		combined = Or(combined, p)
	}
	return combined
}

// Seq is sequencing, `p && q` (spec.md §4.5). It runs p, and only if p
// succeeds runs q against the advanced cursor; both write into the same
// caller slot. Failure of q leaves the cursor wherever q left it.
func Seq[O any](p, q Parser[O]) Parser[O] {
	return func(c *Cursor, out *O) bool {
		if !p(c, out) {
			return false
		}
		return q(c, out)
	}
}

// Many runs p repeatedly while it keeps succeeding, concatenating each
// match into the caller's string slot. Many always succeeds (spec.md §4.6);
// it guards against non-consuming children to avoid looping forever.
func Many(p Parser[string]) Parser[string] {
	return func(c *Cursor, out *string) bool {
		for {
			_, _, before := c.Position()

			var tmp string
			if !p(c, &tmp) {
				return c.Err() == nil
			}

			_, _, after := c.Position()
			if out != nil {
				*out += tmp
			}
			if after == before {
				return true
			}
		}
	}
}

// Some is `p && many(p)`: p must match at least once.
func Some(p Parser[string]) Parser[string] {
	return Seq(p, Many(p))
}

// Option is `p || succ`: zero or one occurrences of p.
func Option[O any](p Parser[O]) Parser[O] {
	return Or(p, Parser[O](Succ[O]))
}

// Discard runs p with a null slot: it never writes into the caller's
// result, and its own result type is Void.
func Discard[O any](p Parser[O]) Parser[Void] {
	return func(c *Cursor, out *Void) bool {
		var tmp O
		return p(c, &tmp)
	}
}

// Attempt wraps p so that a failure — soft or committed — rewinds the
// cursor all the way back to where Attempt started, and puts the caller's
// result slot back to what it held then, provided the Cursor's
// Source implements Checkpointer. This is the explicit opt-in spec.md §9
// calls for: the core commits on first consumption by default, and Attempt
// is how a caller buys full backtracking across more than one symbol. A
// raised ParseError is never swallowed by Attempt — hard failure still
// unwinds to the outermost parse call.
func Attempt[O any](p Parser[O]) Parser[O] {
	return func(c *Cursor, out *O) bool {
		mark, ok := c.Checkpoint()
		if !ok {
			return p(c, out)
		}

		var saved O
		if out != nil {
			saved = *out
		}
		if p(c, out) {
			return true
		}
		if c.Err() != nil {
			return false
		}

		c.Restore(mark)
		if out != nil {
			*out = saved
		}
		return false
	}
}
