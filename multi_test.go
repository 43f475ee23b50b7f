package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Count(Digit(), 3), "1234")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	_, ok, _ = ParseString(Count(Digit(), 5), "1234")
	assert.False(t, ok)
}

func TestManyOf(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(ManyOf(Digit()), "123abc")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	out, ok, _ = ParseString(ManyOf(Digit()), "abc")
	require.True(t, ok)
	assert.Equal(t, []string{}, out)
}

func TestSomeOf(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(SomeOf(Digit()), "123abc")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	_, ok, _ = ParseString(SomeOf(Digit()), "abc")
	assert.False(t, ok)
}

// TestSeparatedList0ConcreteScenario is spec.md §8 scenario 5's building
// block: comma-separated integers.
func TestSeparatedList0ConcreteScenario(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(SeparatedList0(Integer(), Char(',')), "1,2,3")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, out)

	out, ok, _ = ParseString(SeparatedList0(Integer(), Char(',')), "x")
	require.True(t, ok)
	assert.Equal(t, []int64{}, out)
}

func TestSeparatedList0PutsBackTrailingSeparator(t *testing.T) {
	t.Parallel()

	c := NewCursorFromString("1,2,")
	var out []int64
	ok := SeparatedList0(Integer(), Char(','))(c, &out)

	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, out)
	assert.Equal(t, Symbol(','), c.Peek())
}

func TestSeparatedList1(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(SeparatedList1(Integer(), Char(',')), "1,2,3")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, out)

	_, ok, _ = ParseString(SeparatedList1(Integer(), Char(',')), "x")
	assert.False(t, ok)
}

// TestSeparatedListTrailingSeparatorDoesNotPoisonLaterParses is a regression
// test: a list element built on Expect (hard-failing) that gets probed and
// rejected at a trailing separator must not leave a stale raised error on
// the cursor for whatever runs next (spec.md §7's failure discipline is
// scoped to the attempt it was raised in, not the whole parse).
func TestSeparatedListTrailingSeparatorDoesNotPoisonLaterParses(t *testing.T) {
	t.Parallel()

	element := Expect(DigitClass)

	c := NewCursorFromString("1,2,x")
	var out []string
	ok := SeparatedList0(element, Char(','))(c, &out)

	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, out)
	require.Nil(t, c.Err())
	require.Equal(t, Symbol(','), c.Peek())

	// Without the fix, c.Err() would still be set from the rejected trailing
	// separator probe, making Or refuse its fallback regardless of what the
	// first alternative actually does here.
	var next string
	ok = Or(Char(';'), Char(','))(c, &next)
	assert.True(t, ok)
	assert.Equal(t, ",", next)
}
