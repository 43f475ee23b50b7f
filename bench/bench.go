// Package bench profiles the core's hot paths — accept, many and the All
// reducer family — the way the teacher's own Benchmark* functions profile
// individual recognizers, but run over larger inputs representative of
// cmd/parsec's actual workloads. The functions here are exported so
// cmd/parsecbench can drive them directly with testing.Benchmark outside of
// `go test`.
package bench

import (
	"strings"
	"testing"

	"github.com/tetrelok/parsec"
	"github.com/tetrelok/parsec/examples/arithmetic"
	"github.com/tetrelok/parsec/examples/csv"
)

// Accept profiles a single accept(digit) call over a long digit run.
func Accept(b *testing.B) {
	input := strings.Repeat("1", 4096)
	p := parsec.Accept(parsec.DigitClass)
	for i := 0; i < b.N; i++ {
		var out string
		c := parsec.NewCursorFromString(input)
		_ = p(c, &out)
	}
}

// Many profiles many(accept(digit)) over a long digit run.
func Many(b *testing.B) {
	input := strings.Repeat("1", 4096)
	p := parsec.Many(parsec.Accept(parsec.DigitClass))
	for i := 0; i < b.N; i++ {
		_, _, _ = parsec.ParseString(p, input)
	}
}

// All2 profiles the All2 reducer folding two integers across a '+'.
func All2(b *testing.B) {
	p := parsec.All2(
		func(a, c int64) (int64, error) { return a + c, nil },
		parsec.Integer(),
		parsec.Preceded(parsec.Char('+'), parsec.Integer()),
	)
	for i := 0; i < b.N; i++ {
		_, _, _ = parsec.ParseString(p, "123+456")
	}
}

// ArithmeticExpression profiles examples/arithmetic's left-fold over a long
// expression.
func ArithmeticExpression(b *testing.B) {
	input := strings.Repeat("1 + 2 * 3 - ", 64) + "1"
	for i := 0; i < b.N; i++ {
		_, _ = arithmetic.Evaluate(input)
	}
}

// CSVParse profiles examples/csv over a multi-row document.
func CSVParse(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 256; i++ {
		sb.WriteString("1,2,3,4,5\n")
	}
	input := sb.String()
	for i := 0; i < b.N; i++ {
		_, _ = csv.ParseCSV(input)
	}
}
