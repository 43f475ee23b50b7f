package parsec

// Count runs parse exactly count times, collecting the results. It fails if
// parse cannot be applied that many times.
func Count[O any](parse Parser[O], count uint) Parser[[]O] {
	return func(c *Cursor, out *[]O) bool {
		results := make([]O, 0, count)
		for i := uint(0); i < count; i++ {
			var tmp O
			if !parse(c, &tmp) {
				return false
			}
			results = append(results, tmp)
		}
		if out != nil {
			*out = results
		}
		return true
	}
}

// ManyOf applies parse repeatedly until it fails, collecting every result
// into a slice. Like Many, it always succeeds; like Many, it refuses to
// spin on a child that matches without consuming.
func ManyOf[O any](parse Parser[O]) Parser[[]O] {
	return func(c *Cursor, out *[]O) bool {
		results := []O{}

		for {
			_, _, before := c.Position()

			var tmp O
			if !parse(c, &tmp) {
				if out != nil {
					*out = results
				}
				return c.Err() == nil
			}

			results = append(results, tmp)

			_, _, after := c.Position()
			if after == before {
				if out != nil {
					*out = results
				}
				return true
			}
		}
	}
}

// SomeOf is ManyOf's at-least-once counterpart: it fails if parse does not
// match at least once.
func SomeOf[O any](parse Parser[O]) Parser[[]O] {
	return func(c *Cursor, out *[]O) bool {
		var first O
		if !parse(c, &first) {
			return false
		}
		results := []O{first}

		var rest []O
		ManyOf(parse)(c, &rest)
		results = append(results, rest...)

		if out != nil {
			*out = results
		}
		return true
	}
}

// separatedListRest runs the (separator element)* loop shared by
// SeparatedList0 and SeparatedList1, appending matches onto results. A
// trailing separator not followed by an element is put back (when the
// Cursor's Source supports checkpointing) rather than being silently
// consumed.
func separatedListRest[O, S any](c *Cursor, element Parser[O], separator Parser[S], results []O) []O {
	for {
		mark, hasMark := c.Checkpoint()

		var sepOut S
		if !separator(c, &sepOut) {
			if hasMark {
				c.Restore(mark)
			}
			break
		}

		var tmp O
		if !element(c, &tmp) {
			if hasMark {
				c.Restore(mark)
			}
			break
		}
		results = append(results, tmp)
	}
	return results
}

// SeparatedList0 applies an element parser and a separator parser
// repeatedly, producing a list of elements. It succeeds even if the element
// parser never matches.
func SeparatedList0[O, S any](element Parser[O], separator Parser[S]) Parser[[]O] {
	return func(c *Cursor, out *[]O) bool {
		results := []O{}

		var first O
		if !element(c, &first) {
			if out != nil {
				*out = results
			}
			return c.Err() == nil
		}
		results = append(results, first)

		results = separatedListRest(c, element, separator, results)

		if out != nil {
			*out = results
		}
		return true
	}
}

// SeparatedList1 is SeparatedList0's at-least-once counterpart: it fails if
// element does not match at least once. After the first element it runs the
// shared (separator, element)* loop directly from the cursor position left
// by that first match — it must not delegate to SeparatedList0's grammar,
// which starts by trying element where SeparatedList1 is sitting on a
// separator.
func SeparatedList1[O, S any](element Parser[O], separator Parser[S]) Parser[[]O] {
	return func(c *Cursor, out *[]O) bool {
		var first O
		if !element(c, &first) {
			return false
		}
		results := []O{first}

		results = separatedListRest(c, element, separator, results)

		if out != nil {
			*out = results
		}
		return true
	}
}

