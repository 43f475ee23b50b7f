package parsec

// Char matches a single literal character.
func Char(c rune) Parser[string] {
	return Accept(IsChar(c))
}

// AnyChar matches any single character.
func AnyChar() Parser[string] {
	return Accept(AnySym)
}

// Digit matches a single '0'-'9' character.
func Digit() Parser[string] {
	return Accept(DigitClass)
}

// Digit0 matches zero or more digits.
func Digit0() Parser[string] {
	return Many(Digit())
}

// Digit1 matches one or more digits.
func Digit1() Parser[string] {
	return Some(Digit())
}

// Alpha matches a single letter.
func Alpha() Parser[string] {
	return Accept(AlphaClass)
}

// Alpha0 matches zero or more letters.
func Alpha0() Parser[string] {
	return Many(Alpha())
}

// Alpha1 matches one or more letters.
func Alpha1() Parser[string] {
	return Some(Alpha())
}

// Alphanumeric matches a single letter or digit.
func Alphanumeric() Parser[string] {
	return Accept(AlnumClass)
}

// Alphanumeric0 matches zero or more letters/digits.
func Alphanumeric0() Parser[string] {
	return Many(Alphanumeric())
}

// Alphanumeric1 matches one or more letters/digits.
func Alphanumeric1() Parser[string] {
	return Some(Alphanumeric())
}

// Space matches a single space character.
func Space() Parser[string] {
	return Accept(IsChar(' '))
}

// Tab matches a single tab character.
func Tab() Parser[string] {
	return Accept(IsChar('\t'))
}

// CR matches a single carriage return.
func CR() Parser[string] {
	return Accept(IsChar('\r'))
}

// LF matches a single line feed.
func LF() Parser[string] {
	return Accept(IsChar('\n'))
}

// CRLF matches the two character sequence "\r\n".
func CRLF() Parser[string] {
	return Seq(CR(), LF())
}

// Newline matches a newline: either a bare LF or a CRLF pair. Because CR
// commits the moment it matches (spec.md §4.4), a lone CR not followed by LF
// is a committed failure, not a fallback to bare-LF matching.
func Newline() Parser[string] {
	return Or(CRLF(), LF())
}

// Whitespace matches a run of zero or more SpaceClass characters (spaces,
// tabs, line breaks and other Unicode white space).
func Whitespace() Parser[string] {
	return Many(Accept(SpaceClass))
}
