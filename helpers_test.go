package main

import (
	"io/ioutil"

	"github.com/tenthirty/ftth/internal/flushio"
)

func newTestVM() *VM {
	vm := newVM(DefaultArenaCapacity, DefaultDataStackDepth, DefaultReturnStackDepth, DefaultControlStackDepth)
	vm.out = flushio.NewWriteFlusher(ioutil.Discard)
	vm.installBuiltins()
	return vm
}
