package parsec

// Preceded parses and discards a result from the prefix parser, then parses
// and returns a result from the main parser.
func Preceded[OP, O any](prefix Parser[OP], parser Parser[O]) Parser[O] {
	return func(c *Cursor, out *O) bool {
		var prefixOut OP
		if !prefix(c, &prefixOut) {
			return false
		}
		return parser(c, out)
	}
}

// Terminated parses a result from the main parser, then parses and discards
// a result from the suffix parser, returning only the main parser's result.
func Terminated[O, OS any](parser Parser[O], suffix Parser[OS]) Parser[O] {
	return func(c *Cursor, out *O) bool {
		if !parser(c, out) {
			return false
		}
		var suffixOut OS
		return suffix(c, &suffixOut)
	}
}

// Delimited discards a prefix, keeps the main result, and discards a suffix.
func Delimited[OP, O, OS any](prefix Parser[OP], parser Parser[O], suffix Parser[OS]) Parser[O] {
	return Terminated(Preceded(prefix, parser), suffix)
}

// Pair applies two parsers in order and returns both results.
func Pair[LO, RO any](left Parser[LO], right Parser[RO]) Parser[PairContainer[LO, RO]] {
	return func(c *Cursor, out *PairContainer[LO, RO]) bool {
		if !left(c, &out.Left) {
			return false
		}
		return right(c, &out.Right)
	}
}

// SeparatedPair applies left, then separator (discarded), then right, and
// returns the left/right results.
func SeparatedPair[LO, S, RO any](left Parser[LO], separator Parser[S], right Parser[RO]) Parser[PairContainer[LO, RO]] {
	return func(c *Cursor, out *PairContainer[LO, RO]) bool {
		if !left(c, &out.Left) {
			return false
		}
		var sepOut S
		if !separator(c, &sepOut) {
			return false
		}
		return right(c, &out.Right)
	}
}

// Sequence applies a homogeneous list of parsers in order and collects their
// results into a slice. Unlike Seq (which shares one slot across p && q),
// Sequence gives each sub-parser its own slot — the collecting counterpart
// Section 4.8's All generalizes to heterogeneous types.
func Sequence[O any](parsers ...Parser[O]) Parser[[]O] {
	return func(c *Cursor, out *[]O) bool {
		results := make([]O, 0, len(parsers))
		for _, p := range parsers {
			var tmp O
			if !p(c, &tmp) {
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
