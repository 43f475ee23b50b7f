package parsec

// Token matches a literal string exactly, character by character. It
// commits as soon as the first character matches: a partial match is a
// committed failure, not a silently recoverable one (spec.md §4.5, since
// Token is built from Seq over Char). The caller's slot is written only on a
// full match.
func Token(tag string) Parser[string] {
	runes := []rune(tag)
	if len(runes) == 0 {
		return func(c *Cursor, out *string) bool { return true }
	}

	p := Char(runes[0])
	for _, r := range runes[1:] {
		p = Seq(p, Char(r))
	}
	return func(c *Cursor, out *string) bool {
		var s string
		if !p(c, &s) {
			return false
		}
		if out != nil {
			*out += s
		}
		return true
	}
}

// Take matches exactly n symbols, whatever they are, failing if fewer than
// n remain before end-of-input.
func Take(n uint) Parser[string] {
	return func(c *Cursor, out *string) bool {
		var s string
		for i := uint(0); i < n; i++ {
			if !Accept(AnySym)(c, &s) {
				return false
			}
		}
		if out != nil {
			*out += s
		}
		return true
	}
}

// TakeWhileOneOf matches any number of characters drawn from collection,
// requiring at least one.
func TakeWhileOneOf(collection ...rune) Parser[string] {
	index := make(map[rune]struct{}, len(collection))
	for _, r := range collection {
		index[r] = struct{}{}
	}

	pred := NewPredicate("chars("+string(collection)+")", func(s Symbol) bool {
		if s == EOF {
			return false
		}
		_, ok := index[rune(s)]
		return ok
	})

	return Some(Accept(pred))
}

// TakeWhileMN matches between min and max (inclusive) symbols satisfying
// pred. It fails if fewer than min symbols match.
func TakeWhileMN(min, max uint, pred Predicate) Parser[string] {
	return func(c *Cursor, out *string) bool {
		var s string
		var n uint
		for n < max && pred.Match(c.Peek()) {
			Accept(pred)(c, &s)
			n++
		}
		if n < min {
			return false
		}
		if out != nil {
			*out += s
		}
		return true
	}
}

// TakeUntil matches symbols up to, but not including, the first one
// satisfying stop. It fails if stop matches immediately or is never found
// before end-of-input.
func TakeUntil(stop Predicate) Parser[string] {
	p := Some(Accept(stop.Or(Eof).Not()))
	return func(c *Cursor, out *string) bool {
		var s string
		if !p(c, &s) || !stop.Match(c.Peek()) {
			return false
		}
		if out != nil {
			*out += s
		}
		return true
	}
}
