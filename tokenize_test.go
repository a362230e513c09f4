package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_lineScanner_upperCasesAndTruncates(t *testing.T) {
	s := newLineScanner([]byte("dup 123456789012345678"))
	tok, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, "DUP", tok)

	tok, ok = s.next()
	require.True(t, ok)
	assert.Equal(t, "123456789012345", tok, "run longer than 15 bytes is truncated, not split")

	_, ok = s.next()
	assert.False(t, ok)
}

func Test_lineScanner_stripsLineComment(t *testing.T) {
	s := newLineScanner([]byte("1 2 + \\ this is ignored"))
	var toks []string
	for {
		tok, ok := s.next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	assert.Equal(t, []string{"1", "2", "+"}, toks)
}

func Test_lineScanner_skipsParenComments(t *testing.T) {
	s := newLineScanner([]byte("DUP ( a comment ) DROP"))
	tok, _ := s.next()
	assert.Equal(t, "DUP", tok)
	tok, _ = s.next()
	assert.Equal(t, "DROP", tok)
}

func Test_lineScanner_unterminatedParenComment_consumesToEndOfLine(t *testing.T) {
	s := newLineScanner([]byte("DUP ( never closed"))
	tok, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, "DUP", tok)
	_, ok = s.next()
	assert.False(t, ok)
}

func Test_lineScanner_scanString(t *testing.T) {
	s := newLineScanner([]byte(`." hello, world" DROP`))
	tok, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, `."`, tok)
	text, ok := s.scanString()
	require.True(t, ok)
	assert.Equal(t, "hello, world", text)
	tok, ok = s.next()
	require.True(t, ok)
	assert.Equal(t, "DROP", tok)
}

func Test_lineScanner_scanString_unterminated(t *testing.T) {
	s := newLineScanner([]byte(`." no closing quote`))
	s.next() // consumes the ." token itself
	_, ok := s.scanString()
	assert.False(t, ok)
}
