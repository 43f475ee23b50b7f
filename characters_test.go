package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChar(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		wantOK        bool
		wantOut       string
		wantRemaining string
	}{
		{"matches exact char", "a", true, "a", ""},
		{"matches char in longer input", "abc", true, "a", "bc"},
		{"rejects other char", "123", false, "", "123"},
		{"rejects empty input", "", false, "", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := NewCursorFromString(tc.input)
			var out string
			ok := Char('a')(c, &out)

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOut, out)
			assert.Equal(t, tc.wantRemaining, remainingOf(c))
		})
	}
}

func TestDigitFamily(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Digit(), "7x")
	assert.True(t, ok)
	assert.Equal(t, "7", out)

	out, ok, _ = ParseString(Digit0(), "abc")
	assert.True(t, ok)
	assert.Equal(t, "", out)

	out, ok, _ = ParseString(Digit1(), "abc")
	assert.False(t, ok)
	assert.Equal(t, "", out)

	out, ok, _ = ParseString(Digit1(), "123abc")
	assert.True(t, ok)
	assert.Equal(t, "123", out)
}

func TestAlphaFamily(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Alpha1(), "abc123")
	assert.True(t, ok)
	assert.Equal(t, "abc", out)

	out, ok, _ = ParseString(Alpha0(), "123")
	assert.True(t, ok)
	assert.Equal(t, "", out)
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Alphanumeric1(), "a1b2 rest")
	assert.True(t, ok)
	assert.Equal(t, "a1b2", out)
}

func TestNewline(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Newline(), "\n")
	assert.True(t, ok)
	assert.Equal(t, "\n", out)

	out, ok, _ = ParseString(Newline(), "\r\n")
	assert.True(t, ok)
	assert.Equal(t, "\r\n", out)

	_, ok, _ = ParseString(Newline(), "x")
	assert.False(t, ok)
}

// TestNewlineLoneCRIsCommittedFailure documents the commit-on-consume
// interaction noted in characters.go: a CR not followed by LF commits.
func TestNewlineLoneCRIsCommittedFailure(t *testing.T) {
	t.Parallel()

	c := NewCursorFromString("\rx")
	var out string
	ok := Newline()(c, &out)

	assert.False(t, ok)
	_, col, _ := c.Position()
	assert.Equal(t, 2, col)
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	out, ok, _ := ParseString(Whitespace(), "   abc")
	assert.True(t, ok)
	assert.Equal(t, "   ", out)
}

func BenchmarkDigit1(b *testing.B) {
	p := Digit1()
	for i := 0; i < b.N; i++ {
		_, _, _ = ParseString(p, "1234567890")
	}
}
