package parsec

// PairContainer carries the two results of Pair/SeparatedPair.
type PairContainer[L, R any] struct {
	Left  L
	Right R
}
