package parsec

import "unicode"

// Predicate is a named, pure test on a single Symbol. Predicates carry no
// mutable state, so a Predicate value is freely copyable and safe to share
// across goroutines; composing one (Or, Not) never mutates its operands.
type Predicate struct {
	name string
	test func(Symbol) bool
}

// Name returns the human readable name of the predicate. Composition
// preserves readability: `p.Or(q)` names itself "(p.Name() or q.Name())",
// and `p.Not()` names itself "~p.Name()".
func (p Predicate) Name() string {
	return p.name
}

// Match reports whether s satisfies the predicate. Match never advances
// anything; predicates are values, not parsers.
func (p Predicate) Match(s Symbol) bool {
	return p.test(s)
}

// NewPredicate builds a named predicate from a test function.
func NewPredicate(name string, test func(Symbol) bool) Predicate {
	return Predicate{name: name, test: test}
}

// Or returns a predicate satisfied by either operand, short-circuiting on p.
func (p Predicate) Or(q Predicate) Predicate {
	return Predicate{
		name: "(" + p.name + " or " + q.name + ")",
		test: func(s Symbol) bool { return p.test(s) || q.test(s) },
	}
}

// Not returns the logical complement of p.
func (p Predicate) Not() Predicate {
	return Predicate{
		name: "~" + p.name,
		test: func(s Symbol) bool { return !p.test(s) },
	}
}

// IsChar builds a predicate matching exactly one literal symbol, naming
// itself after that symbol.
func IsChar(c rune) Predicate {
	sym := Symbol(c)
	return Predicate{
		name: "'" + string(c) + "'",
		test: func(s Symbol) bool { return s == sym },
	}
}

// AnySym matches every symbol except end-of-input.
var AnySym = Predicate{
	name: "any symbol",
	test: func(s Symbol) bool { return s != EOF },
}

// Eof matches only the end-of-input symbol.
var Eof = Predicate{
	name: "end of input",
	test: func(s Symbol) bool { return s == EOF },
}

// SpaceClass matches a single white-space character as unicode.IsSpace
// defines it: space, tab, newline, carriage return, vertical tab, form feed
// and other Unicode spaces.
var SpaceClass = Predicate{
	name: "space",
	test: func(s Symbol) bool { return s != EOF && unicode.IsSpace(rune(s)) },
}

// DigitClass matches '0'-'9'.
var DigitClass = Predicate{
	name: "digit",
	test: func(s Symbol) bool { return s >= '0' && s <= '9' },
}

// UpperClass matches uppercase letters.
var UpperClass = Predicate{
	name: "upper",
	test: func(s Symbol) bool { return s != EOF && unicode.IsUpper(rune(s)) },
}

// LowerClass matches lowercase letters.
var LowerClass = Predicate{
	name: "lower",
	test: func(s Symbol) bool { return s != EOF && unicode.IsLower(rune(s)) },
}

// AlphaClass matches any letter, upper or lower case.
var AlphaClass = Predicate{
	name: "alpha",
	test: func(s Symbol) bool { return s != EOF && unicode.IsLetter(rune(s)) },
}

// AlnumClass matches letters and digits.
var AlnumClass = Predicate{
	name: "alnum",
	test: func(s Symbol) bool { return s != EOF && (unicode.IsLetter(rune(s)) || unicode.IsDigit(rune(s))) },
}

// PrintClass matches printable characters as unicode.IsPrint defines them,
// the ASCII space included; tab and other control characters do not match.
// Cursor.Advance uses it for column tracking and counts tabs separately.
var PrintClass = Predicate{
	name: "print",
	test: func(s Symbol) bool { return s != EOF && unicode.IsPrint(rune(s)) },
}
