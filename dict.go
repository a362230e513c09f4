package main

import "strings"

// emitByte appends one opcode byte to the arena. Returns false without
// advancing here if the arena's capacity would be exceeded; callers
// surface that as a compilation failure.
func (vm *VM) emitByte(b byte) bool {
	if !vm.arena.StoreByte(uint(vm.here), b) {
		return false
	}
	vm.here++
	return true
}

// emitCell appends a little-endian 32-bit cell literal.
func (vm *VM) emitCell(v int32) bool {
	if !vm.arena.StoreCell(uint(vm.here), v) {
		return false
	}
	vm.here += 4
	return true
}

// emitAddr appends a little-endian 16-bit address operand, returning the
// arena position it was written at (useful as a patch site).
func (vm *VM) emitAddr(a uint16) (at uint16, ok bool) {
	at = vm.here
	if !vm.arena.StoreAddr(uint(vm.here), a) {
		return at, false
	}
	vm.here += 2
	return at, true
}

func (vm *VM) readByte(pc uint16) byte { return vm.arena.LoadByte(uint(pc)) }

func (vm *VM) readCell(pc uint16) int32 { return vm.arena.LoadCell(uint(pc)) }

func (vm *VM) readAddr(pc uint16) uint16 { return vm.arena.LoadAddr(uint(pc)) }

// patchAddr overwrites the two bytes at location, previously reserved by
// emitAddr with a placeholder, with the final target.
func (vm *VM) patchAddr(location, target uint16) {
	vm.arena.StoreAddr(uint(location), target)
}

// truncateName applies the fixed 15-byte name limit identically wherever a
// name is recorded or looked up.
func truncateName(s string) string {
	if len(s) > MaxNameLen {
		return s[:MaxNameLen]
	}
	return s
}

// addWord appends a new word table entry naming addr. Declaration order is
// preserved; a later addWord with the same name shadows earlier ones at
// lookup without removing them.
func (vm *VM) addWord(name string, addr uint16) {
	vm.words = append(vm.words, wordEntry{name: truncateName(name), addr: addr})
}

// lookup scans the word table newest-first for a case-insensitive match,
// returning the zero entry and false if none is defined.
func (vm *VM) lookup(name string) (wordEntry, bool) {
	name = truncateName(name)
	for i := len(vm.words) - 1; i >= 0; i-- {
		if strings.EqualFold(vm.words[i].name, name) {
			return vm.words[i], true
		}
	}
	return wordEntry{}, false
}

// findWordByAddr returns the newest-defined word table entry whose address
// exactly matches addr, for decompilation's reverse lookup. Ties (addresses
// shared by redefinitions) resolve to the newest entry; the chosen name only
// has to round-trip executably, not textually.
func (vm *VM) findWordByAddr(addr uint16) (wordEntry, bool) {
	for i := len(vm.words) - 1; i >= 0; i-- {
		if vm.words[i].addr == addr {
			return vm.words[i], true
		}
	}
	return wordEntry{}, false
}
