package parsec

import "fmt"

// ParseError is the immutable record raised by expect-class parsers and
// Strict wrappers (spec.md §3). It is never raised by accept.
type ParseError struct {
	Message     string
	Row, Col    int
	Expectation string
	Offending   Symbol
}

// Error implements the error interface, formatting the offending symbol the
// way bshepherdson/psec's parseError.Error() renders its Loc-qualified
// expectations.
func (e *ParseError) Error() string {
	offending := "end of input"
	if e.Offending != EOF {
		offending = fmt.Sprintf("%q", rune(e.Offending))
	}

	if e.Message != "" {
		return fmt.Sprintf("%d:%d: %s, expected %s but found %s", e.Row, e.Col, e.Message, e.Expectation, offending)
	}
	return fmt.Sprintf("%d:%d: expected %s but found %s", e.Row, e.Col, e.Expectation, offending)
}
