package parsec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSomeDigitsConcreteScenario is spec.md §8 scenario 1.
func TestSomeDigitsConcreteScenario(t *testing.T) {
	t.Parallel()

	c := NewCursorFromString("123abc")
	var out string
	ok := Some(Accept(DigitClass))(c, &out)

	require.True(t, ok)
	assert.Equal(t, "123", out)

	row, col, _ := c.Position()
	assert.Equal(t, 1, row)
	assert.Equal(t, 4, col)
	assert.Equal(t, Symbol('a'), c.Peek())
}

// TestOrderedChoiceConcreteScenario is spec.md §8 scenario 2.
func TestOrderedChoiceConcreteScenario(t *testing.T) {
	t.Parallel()

	c := NewCursorFromString("b")
	var out string
	ok := Or(Char('a'), Char('b'))(c, &out)

	require.True(t, ok)
	assert.Equal(t, "b", out)
	assert.Equal(t, EOF, c.Peek())
}

// TestSequenceCommitsConcreteScenario is spec.md §8 scenario 3.
func TestSequenceCommitsConcreteScenario(t *testing.T) {
	t.Parallel()

	c := NewCursorFromString("ax")
	var out string
	ok := Seq(Char('a'), Char('b'))(c, &out)

	require.False(t, ok)
	assert.Equal(t, "a", out)

	_, col, byteCount := c.Position()
	assert.Equal(t, 2, col)
	assert.Equal(t, int64(1), byteCount)
}

func TestOrDoesNotRetryAfterConsumingFailure(t *testing.T) {
	t.Parallel()

	consumeThenFail := Seq(Char('a'), Char('z'))
	c := NewCursorFromString("ab")
	var out string
	ok := Or(consumeThenFail, Char('a'))(c, &out)

	assert.False(t, ok)
}

func TestOrTriesSecondAfterNonConsumingFailure(t *testing.T) {
	t.Parallel()

	c := NewCursorFromString("b")
	var out string
	ok := Or(Char('a'), Char('b'))(c, &out)

	assert.True(t, ok)
	assert.Equal(t, "b", out)
}

func TestAlternative(t *testing.T) {
	t.Parallel()

	p := Alternative(Token("cat"), Token("dog"), Token("bird"))

	for _, tc := range []struct {
		input string
		want  string
	}{
		{"dog", "dog"},
		{"bird", "bird"},
		{"cat", "cat"},
	} {
		out, ok, _ := ParseString(p, tc.input)
		assert.True(t, ok)
		assert.Equal(t, tc.want, out)
	}
}

// TestManyTermination checks spec.md §8: many(p) terminates on every finite
// input when p either consumes at least one symbol on success or fails.
func TestManyTermination(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		_, _, _ = ParseString(Many(Accept(DigitClass)), "111111111111111111111111111111x")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Many did not terminate")
	}
}

func TestManySucceedsOnNoMatch(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Many(Accept(DigitClass)), "abc")
	assert.True(t, ok)
	assert.Equal(t, "", out)
}

func TestSomeFailsOnNoMatch(t *testing.T) {
	t.Parallel()

	_, ok, _ := ParseString(Some(Accept(DigitClass)), "abc")
	assert.False(t, ok)
}

func TestOption(t *testing.T) {
	t.Parallel()

	p := Option(Char('a'))

	out, ok, _ := ParseString(p, "a")
	assert.True(t, ok)
	assert.Equal(t, "a", out)

	out, ok, _ = ParseString(p, "b")
	assert.True(t, ok)
	assert.Equal(t, "", out)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	p := Discard(Digit1())
	c := NewCursorFromString("123abc")
	var out Void
	ok := p(c, &out)

	assert.True(t, ok)
	assert.Equal(t, Symbol('a'), c.Peek())
}

// TestFailRightAbsorption checks spec.md §8: fail || p behaves like p, and
// p && fail returns false after p's effects (the cursor still advances).
func TestFailRightAbsorption(t *testing.T) {
	t.Parallel()

	p := Digit1()

	wantOut, wantOK, _ := ParseString(p, "123")
	gotOut, gotOK, _ := ParseString(Or(Parser[string](Fail[string]), p), "123")
	assert.Equal(t, wantOK, gotOK)
	assert.Equal(t, wantOut, gotOut)

	c := NewCursorFromString("123")
	var out string
	ok := Seq(p, Parser[string](Fail[string]))(c, &out)
	assert.False(t, ok)
	assert.Equal(t, "123", out)
	assert.Equal(t, EOF, c.Peek())
}

func TestAttemptRewindsOnFailure(t *testing.T) {
	t.Parallel()

	p := Or(Attempt(Seq(Char('a'), Char('z'))), Token("ab"))

	out, ok, _ := ParseString(p, "ab")
	require.True(t, ok)
	assert.Equal(t, "ab", out)
}

