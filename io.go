package main

import (
	"fmt"
	"io"
	"os"
)

// defaultOpenFile and defaultCreateFile bind the I/O surface's file-opening
// leg to the local filesystem; hosts without one can replace both via
// WithFileIO.
func defaultOpenFile(name string) (io.ReadCloser, error)    { return os.Open(name) }
func defaultCreateFile(name string) (io.WriteCloser, error) { return os.Create(name) }

// emitChar writes one output character through the installed I/O surface,
// backing the EMIT opcode.
func (vm *VM) emitChar(c int32) {
	vm.writeRune(rune(byte(c)))
}

// keyChar reads one input character through the installed I/O surface,
// backing the KEY opcode. At end of input it reads as 0, matching the
// never-trap discipline the rest of the opcode catalog follows.
func (vm *VM) keyChar() int32 {
	r, ok := vm.readRune()
	if !ok {
		return 0
	}
	return int32(byte(r))
}

// typeString writes length bytes starting at addr through the I/O surface,
// backing TYPE and the text emission compiled from ." literals.
func (vm *VM) typeString(addr uint16, length int32) {
	for i := int32(0); i < length; i++ {
		b := vm.arena.LoadByte(uint(addr) + uint(i))
		vm.writeRune(rune(b))
	}
}

// printDecimal writes a signed cell in decimal followed by a space, backing
// the DOT opcode.
func (vm *VM) printDecimal(v int32) {
	for _, r := range fmt.Sprintf("%d ", v) {
		vm.writeRune(r)
	}
}

// openSourceFile opens name for reading, preferring the installed I/O
// surface hook.
func (vm *VM) openSourceFile(name string) (io.ReadCloser, error) {
	if vm.openFile != nil {
		return vm.openFile(name)
	}
	return defaultOpenFile(name)
}

// createOutputFile creates name for writing, preferring the installed I/O
// surface hook.
func (vm *VM) createOutputFile(name string) (io.WriteCloser, error) {
	if vm.createFile != nil {
		return vm.createFile(name)
	}
	return defaultCreateFile(name)
}
