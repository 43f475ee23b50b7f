package parsec

import (
	"strconv"
)

// Integer parses an optionally-signed run of digits into an int64.
func Integer() Parser[int64] {
	return func(c *Cursor, out *int64) bool {
		var negative bool
		var sign string
		if Char('-')(c, &sign) {
			negative = true
		}

		var digitsOut string
		if !Accept(DigitClass)(c, &digitsOut) {
			return false
		}
		var rest string
		Digit0()(c, &rest)
		digitsOut += rest

		value, err := strconv.ParseInt(digitsOut, 10, 64)
		if err != nil {
			return false
		}
		if negative {
			value = -value
		}
		if out != nil {
			*out = value
		}
		return true
	}
}

// Float parses a sequence of numerical characters into a float64. The '.'
// character is the optional decimal delimiter; a number with no decimal
// part still parses as a float64. It is not Float's job to make sure the
// result fits into 64 bits.
func Float() Parser[float64] {
	return func(c *Cursor, out *float64) bool {
		var negative bool
		var sign string
		if Char('-')(c, &sign) {
			negative = true
		}

		var whole string
		if !Accept(DigitClass)(c, &whole) {
			return false
		}
		var restWhole string
		Digit0()(c, &restWhole)
		whole += restWhole

		parsed := whole
		mark, hasMark := c.Checkpoint()
		var dot string
		if Char('.')(c, &dot) {
			var frac string
			if Digit1()(c, &frac) {
				parsed = parsed + "." + frac
			} else if hasMark {
				c.Restore(mark)
			}
		}

		value, err := strconv.ParseFloat(parsed, 64)
		if err != nil {
			return false
		}
		if negative {
			value = -value
		}
		if out != nil {
			*out = value
		}
		return true
	}
}
