package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_saveLoadImage_roundTrip(t *testing.T) {
	src := newTestVM()
	s := newLineScanner([]byte("SQ"))
	require.NoError(t, src.compileColon(s))
	require.NoError(t, src.handleToken(nil, "DUP"))
	require.NoError(t, src.handleToken(nil, "*"))
	require.NoError(t, src.compileSemi())

	var buf bytes.Buffer
	require.NoError(t, src.saveImage(&buf))

	dst := newTestVM()
	require.NoError(t, dst.loadImage(&buf))

	assert.Equal(t, src.here, dst.here)
	assert.Equal(t, len(src.words), len(dst.words))

	w, ok := dst.lookup("SQ")
	require.True(t, ok)
	dst.pushData(6)
	dst.execute(w.addr)
	assert.Equal(t, int32(36), dst.popData())
}

func Test_loadImage_rejectsBadMagic(t *testing.T) {
	vm := newTestVM()
	err := vm.loadImage(bytes.NewReader(make([]byte, 16)))
	require.Error(t, err)
	assert.IsType(t, ImageFormatError{}, err)
}

func Test_loadImage_rejectsHereBeyondCapacity(t *testing.T) {
	writer := newVM(16, 8, 8, 8)
	writer.here = 16
	var buf bytes.Buffer
	require.NoError(t, writer.saveImage(&buf))

	smaller := newVM(8, 8, 8, 8)
	err := smaller.loadImage(&buf)
	require.Error(t, err)
	assert.IsType(t, ImageFormatError{}, err)
}

func Test_loadImage_leavesVMUntouchedOnFailure(t *testing.T) {
	vm := newTestVM()
	originalHere := vm.here
	originalWords := len(vm.words)

	err := vm.loadImage(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
	assert.Equal(t, originalHere, vm.here)
	assert.Equal(t, originalWords, len(vm.words))
}
