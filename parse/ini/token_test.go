package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectTokens(t *testing.T, line string, open, close byte) []string {
	t.Helper()
	var toks []string
	rest := line
	for {
		tok, next, ok := nextListToken(rest, open, close)
		if !ok {
			break
		}
		toks = append(toks, tok)
		rest = next
	}
	return toks
}

func TestNextListToken(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"mylist = [ a, b, c ]", []string{"mylist =", "[", "a,", "b,", "c ", "]"}},
		{"mylist = [ one, two , three   , four  ] ", []string{"mylist =", "[", "one,", "two ,", "three   ,", "four  ", "]"}},
		{"mylist =", []string{"mylist ="}},
		{"[", []string{"["}},
		{"]", []string{"]"}},
		{"one,", []string{"one,"}},
		{"three", []string{"three"}},
		{"a, b]", []string{"a,", "b", "]"}},
		{"mylist = [ ]", []string{"mylist =", "[", "]"}},
		{"mylist = []", []string{"mylist =", "[", "]"}},
		{"one,, two", []string{"one,", ",", "two"}},
		{"  # comment only", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := collectTokens(t, tc.line, '[', ']')
		assert.Equal(t, tc.want, got, "tokens of %q", tc.line)
	}
}

func TestNextListTokenCustomBrackets(t *testing.T) {
	got := collectTokens(t, "mylist = { a, b }", '{', '}')
	assert.Equal(t, []string{"mylist =", "{", "a,", "b ", "}"}, got)
}
