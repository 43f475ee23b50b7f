package parsec

// Map applies parser and, on success, passes its result through f to
// produce the final result. f returning an error turns a successful parse
// into a failure — matching the usage the teacher's bundled examples
// (examples/json, examples/hexcolor) made of Map.
func Map[I, O any](parser Parser[I], f func(I) (O, error)) Parser[O] {
	return func(c *Cursor, out *O) bool {
		var in I
		if !parser(c, &in) {
			return false
		}
		value, err := f(in)
		if err != nil {
			return false
		}
		if out != nil {
			*out = value
		}
		return true
	}
}

// Assign runs parser purely for its side effect on the cursor and, on
// success, writes the fixed value into the result slot regardless of what
// parser actually produced.
func Assign[I, O any](value O, parser Parser[I]) Parser[O] {
	return func(c *Cursor, out *O) bool {
		var discard I
		if !parser(c, &discard) {
			return false
		}
		if out != nil {
			*out = value
		}
		return true
	}
}

// All2 is the reducer combinator of spec.md §4.8 for arity two: it runs p1
// then p2, each against its own fresh, default-constructed temporary, and —
// only if both succeed — invokes f exactly once to fold them into the
// caller's result. On the first failure it returns false without
// constructing or running later sub-parsers.
//
// Go has no variadic generics (spec.md §9, Design Notes, "Variadic
// reducers"), so All/Any are provided at fixed arities instead of a single
// variadic family — the documented, idiomatic-Go trade for the ergonomic
// loss spec.md anticipates.
func All2[A, B, R any](f func(a A, b B) (R, error), p1 Parser[A], p2 Parser[B]) Parser[R] {
	return func(c *Cursor, out *R) bool {
		var a A
		if !p1(c, &a) {
			return false
		}
		var b B
		if !p2(c, &b) {
			return false
		}
		r, err := f(a, b)
		if err != nil {
			return false
		}
		if out != nil {
			*out = r
		}
		return true
	}
}

// All3 is All2 generalized to arity three.
func All3[A, B, C, R any](f func(a A, b B, c C) (R, error), p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[R] {
	return func(cur *Cursor, out *R) bool {
		var a A
		if !p1(cur, &a) {
			return false
		}
		var b B
		if !p2(cur, &b) {
			return false
		}
		var cc C
		if !p3(cur, &cc) {
			return false
		}
		r, err := f(a, b, cc)
		if err != nil {
			return false
		}
		if out != nil {
			*out = r
		}
		return true
	}
}

// All4 is All2 generalized to arity four.
func All4[A, B, C, D, R any](f func(a A, b B, c C, d D) (R, error), p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D]) Parser[R] {
	return func(cur *Cursor, out *R) bool {
		var a A
		if !p1(cur, &a) {
			return false
		}
		var b B
		if !p2(cur, &b) {
			return false
		}
		var c C
		if !p3(cur, &c) {
			return false
		}
		var d D
		if !p4(cur, &d) {
			return false
		}
		r, err := f(a, b, c, d)
		if err != nil {
			return false
		}
		if out != nil {
			*out = r
		}
		return true
	}
}

// Any2 is the reducer combinator of spec.md §4.8 for arity two: it tries p1
// then p2 in order; on the first one that succeeds (index k, zero-based) it
// invokes f with k and both temporaries (only tmp_k populated) exactly
// once. If neither succeeds, Any2 fails.
func Any2[A, B, R any](f func(k int, a A, b B) (R, error), p1 Parser[A], p2 Parser[B]) Parser[R] {
	return func(c *Cursor, out *R) bool {
		_, _, before := c.Position()

		var a A
		if p1(c, &a) {
			var b B
			r, err := f(0, a, b)
			if err != nil {
				return false
			}
			if out != nil {
				*out = r
			}
			return true
		}
		if c.Err() != nil {
			return false
		}
		_, _, after := c.Position()
		if after != before {
			return false
		}

		var b B
		if p2(c, &b) {
			var zeroA A
			r, err := f(1, zeroA, b)
			if err != nil {
				return false
			}
			if out != nil {
				*out = r
			}
			return true
		}
		return false
	}
}

// Any3 is Any2 generalized to arity three.
func Any3[A, B, C, R any](f func(k int, a A, b B, c C) (R, error), p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[R] {
	return func(cur *Cursor, out *R) bool {
		_, _, before := cur.Position()

		var a A
		if p1(cur, &a) {
			var b B
			var c C
			r, err := f(0, a, b, c)
			if err != nil {
				return false
			}
			if out != nil {
				*out = r
			}
			return true
		}
		if cur.Err() != nil {
			return false
		}
		if _, _, after := cur.Position(); after != before {
			return false
		}

		var b B
		if p2(cur, &b) {
			var a A
			var c C
			r, err := f(1, a, b, c)
			if err != nil {
				return false
			}
			if out != nil {
				*out = r
			}
			return true
		}
		if cur.Err() != nil {
			return false
		}
		if _, _, after := cur.Position(); after != before {
			return false
		}

		var c C
		if p3(cur, &c) {
			var a A
			var b B
			r, err := f(2, a, b, c)
			if err != nil {
				return false
			}
			if out != nil {
				*out = r
			}
			return true
		}
		return false
	}
}
