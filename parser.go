// Package parsec is a statically composed parser-combinator core: a small
// algebra of named predicates, primitive recognizers and higher-order
// combinators that compose at Go's type-resolution time into a single
// monomorphic parser value, with no virtual dispatch on the hot path.
//
// The result type of every composite parser is inferred by the Go compiler
// from the types of its children — the "least general" rule of the design
// this package implements falls directly out of generic type inference (see
// DESIGN.md); callers never restate a type the composition already fixes.
package parsec

// Void is the result type of parsers that never produce a value: anything
// built with Discard, or Succ and Fail instantiated at Void.
type Void = struct{}

// Parser is a stateless, copyable value: a callable taking a Cursor and an
// optional, caller-owned result slot. A true return implies the cursor has
// advanced past exactly the consumed symbols and, if a non-nil slot was
// supplied, the slot was mutated only by appending or assigning the
// produced value. A false return means either non-consuming failure (the
// cursor is unchanged) or committed failure (the cursor has advanced, and
// the surrounding combinator must not try alternatives) — see spec.md §3
// and §4.9 for the full failure-discipline table.
type Parser[O any] func(c *Cursor, out *O) bool

// Parse is the top-level entry point: it runs parser against cursor, writing
// into a fresh, caller-owned result of type O. It returns the result, a
// bool mirroring the parser's own success/failure, and any hard ParseError
// raised along the way (expect-class mismatches, or Strict wrapping a
// committed failure).
func Parse[O any](parser Parser[O], c *Cursor) (result O, ok bool, err *ParseError) {
	ok = parser(c, &result)
	return result, ok, c.Err()
}

// ParseString is a convenience wrapper building a Cursor from an in-memory
// string before running Parse.
func ParseString[O any](parser Parser[O], input string) (result O, ok bool, err *ParseError) {
	return Parse(parser, NewCursorFromString(input))
}
