package parsec

// Symbol is an integer-coded character drawn from a parser's input.
type Symbol rune

// EOF is the distinguished end-of-input symbol. AnySym, IsChar and the
// character-class predicates never match it; Eof does, and so does the
// complement (Not) of any predicate that rejects it.
const EOF Symbol = -1
