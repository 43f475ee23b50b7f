// Command parsecbench runs the bench package's profiling functions and
// prints ns/op and allocs/op for each, the way a CI job would summarize
// `go test -bench` output without requiring the caller to parse it.
package main

import (
	"fmt"
	"testing"

	"github.com/tetrelok/parsec/bench"
)

var targets = []struct {
	name string
	fn   func(*testing.B)
}{
	{"Accept", bench.Accept},
	{"Many", bench.Many},
	{"All2", bench.All2},
	{"ArithmeticExpression", bench.ArithmeticExpression},
	{"CSVParse", bench.CSVParse},
}

func main() {
	for _, t := range targets {
		result := testing.Benchmark(t.fn)
		nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
		fmt.Printf("%-24s %12.1f ns/op  %8d allocs/op\n", t.name, nsPerOp, result.AllocsPerOp())
	}
}
