package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defineWord(t *testing.T, vm *VM, name string, tokens ...string) wordEntry {
	t.Helper()
	s := newLineScanner([]byte(name))
	require.NoError(t, vm.compileColon(s))
	for _, tok := range tokens {
		require.NoError(t, vm.handleToken(nil, tok))
	}
	require.NoError(t, vm.compileSemi())
	w, ok := vm.lookup(name)
	require.True(t, ok)
	return w
}

func Test_decompileWord_reconstructsArithmeticBody(t *testing.T) {
	vm := newTestVM()
	w := defineWord(t, vm, "SQ", "DUP", "*")
	assert.Equal(t, ": SQ DUP * ;", vm.decompileWord(w))
}

func Test_decompileWord_recognizesStringLiteral(t *testing.T) {
	vm := newTestVM()
	require.NoError(t, vm.compileColon(newLineScanner([]byte("GREET"))))
	s := newLineScanner([]byte(`." hi"`))
	tok, _ := s.next()
	require.NoError(t, vm.handleToken(s, tok))
	require.NoError(t, vm.compileSemi())

	w, _ := vm.lookup("GREET")
	assert.Equal(t, `: GREET ."hi" ;`, vm.decompileWord(w))
}

func Test_decompileWord_rendersUnrecognizedBranchAsElse(t *testing.T) {
	vm := newTestVM()
	require.NoError(t, vm.compileColon(newLineScanner([]byte("W"))))
	require.NoError(t, vm.handleToken(nil, "IF"))
	require.NoError(t, vm.handleToken(nil, "ELSE"))
	require.NoError(t, vm.handleToken(nil, "THEN"))
	require.NoError(t, vm.compileSemi())

	w, _ := vm.lookup("W")
	assert.Equal(t, ": W IF ELSE ;", vm.decompileWord(w))
}

func Test_directiveSee_unknownWord_reportsError(t *testing.T) {
	vm := newTestVM()
	var reported string
	vm.logfn = func(mess string, args ...interface{}) {
		if len(args) > 1 {
			reported, _ = args[1].(string)
		}
	}
	vm.directiveSee("NOSUCH")
	assert.Equal(t, UnknownWordError{"NOSUCH"}.Error(), reported)
}
