package main

import "github.com/tenthirty/ftth/internal/mem"

// Configuration defaults, all overridable through VMOption.
const (
	DefaultArenaCapacity     = 4096
	DefaultDataStackDepth    = 128
	DefaultReturnStackDepth  = 64
	DefaultControlStackDepth = 32

	// MaxNameLen is the longest a word name may be; longer tokens are
	// truncated identically at definition and at lookup.
	MaxNameLen = 15
)

// wordEntry names a position in the dictionary arena. flags is reserved: the
// image format carries it byte-for-byte but nothing in this VM sets it yet.
type wordEntry struct {
	name  string
	addr  uint16
	flags byte
}

// VM holds the whole of one FTTH session: the dictionary arena and word
// table (C1/C2), the data, return and compile-time control stacks, and the
// ambient I/O/logging core it's embedded in.
type VM struct {
	Core

	arena *mem.Bytes
	here  uint16

	words        []wordEntry
	builtinCount int

	data []int32
	dsp  int

	ret []int32
	rsp int

	ctrl []uint16
	csp  int

	pc        uint16
	compiling bool
}

func newVM(arenaCap uint, dataDepth, retDepth, ctrlDepth int) *VM {
	vm := &VM{
		arena: mem.NewBytes(arenaCap),
		data:  make([]int32, dataDepth),
		ret:   make([]int32, retDepth),
		ctrl:  make([]uint16, ctrlDepth),
	}
	return vm
}

// Depth reports the current data stack depth, the same value the DEPTH
// opcode pushes.
func (vm *VM) Depth() int { return vm.dsp }

func (vm *VM) pushData(v int32) {
	if vm.dsp >= len(vm.data) {
		return // overflow: drop the pushed value
	}
	vm.data[vm.dsp] = v
	vm.dsp++
}

func (vm *VM) popData() int32 {
	if vm.dsp <= 0 {
		return 0 // underflow: pop yields 0, sp stays put
	}
	vm.dsp--
	return vm.data[vm.dsp]
}

func (vm *VM) peekData() int32 {
	if vm.dsp <= 0 {
		return 0
	}
	return vm.data[vm.dsp-1]
}

func (vm *VM) pushRet(v int32) {
	if vm.rsp >= len(vm.ret) {
		return
	}
	vm.ret[vm.rsp] = v
	vm.rsp++
}

func (vm *VM) popRet() int32 {
	if vm.rsp <= 0 {
		return 0
	}
	vm.rsp--
	return vm.ret[vm.rsp]
}

func (vm *VM) peekRet() int32 {
	if vm.rsp <= 0 {
		return 0
	}
	return vm.ret[vm.rsp-1]
}

// retAt indexes from the top of the return stack: retAt(0) is the same as
// peekRet, retAt(1) the entry below it. Out-of-range indices read as 0,
// matching the interpreter's never-trap discipline.
func (vm *VM) retAt(fromTop int) int32 {
	i := vm.rsp - 1 - fromTop
	if i < 0 || i >= len(vm.ret) {
		return 0
	}
	return vm.ret[i]
}

func (vm *VM) pushCtrl(addr uint16) bool {
	if vm.csp >= len(vm.ctrl) {
		return false
	}
	vm.ctrl[vm.csp] = addr
	vm.csp++
	return true
}

func (vm *VM) popCtrl() (uint16, bool) {
	if vm.csp <= 0 {
		return 0, false
	}
	vm.csp--
	return vm.ctrl[vm.csp], true
}
