package main

import (
	"io"
	"io/ioutil"

	"github.com/tenthirty/ftth/internal/flushio"
	"github.com/tenthirty/ftth/internal/mem"
)

// VMOption configures a VM at construction time.
type VMOption interface{ apply(vm *VM) }

type optionList []VMOption

func (opts optionList) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// VMOptions collects a slice of options into a single applier, for New's
// internal use.
func VMOptions(opts ...VMOption) VMOption { return optionList(opts) }

var defaultOptions = optionList{
	outputOption{ioutil.Discard},
}

type arenaCapacityOption uint
type dataDepthOption int
type retDepthOption int
type ctrlDepthOption int

func (n arenaCapacityOption) apply(vm *VM) { vm.arena = mem.NewBytes(uint(n)) }
func (n dataDepthOption) apply(vm *VM)     { vm.data = make([]int32, int(n)) }
func (n retDepthOption) apply(vm *VM)      { vm.ret = make([]int32, int(n)) }
func (n ctrlDepthOption) apply(vm *VM)     { vm.ctrl = make([]uint16, int(n)) }

// WithArenaCapacity overrides the dictionary arena's fixed capacity.
func WithArenaCapacity(n uint) VMOption { return arenaCapacityOption(n) }

// WithDataStackDepth overrides the data stack's fixed depth.
func WithDataStackDepth(n int) VMOption { return dataDepthOption(n) }

// WithReturnStackDepth overrides the return stack's fixed depth.
func WithReturnStackDepth(n int) VMOption { return retDepthOption(n) }

// WithControlStackDepth overrides the compile-time control stack's fixed
// depth.
func WithControlStackDepth(n int) VMOption { return ctrlDepthOption(n) }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})
type tracefnOption func(mess string, args ...interface{})

type fileIOOption struct {
	openFile   func(name string) (io.ReadCloser, error)
	createFile func(name string) (io.WriteCloser, error)
}

func (i inputOption) apply(vm *VM) {
	vm.Input.Queue = append(vm.Input.Queue, i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn logfnOption) apply(vm *VM) {
	vm.logfn = logfn
}

func (tracefn tracefnOption) apply(vm *VM) {
	vm.tracefn = tracefn
}

func (f fileIOOption) apply(vm *VM) {
	if f.openFile != nil {
		vm.openFile = f.openFile
	}
	if f.createFile != nil {
		vm.createFile = f.createFile
	}
}

func withInput(r io.Reader) VMOption { return inputOption{r} }
func withOutput(w io.Writer) VMOption { return outputOption{w} }
func withTee(w io.Writer) VMOption   { return teeOption{w} }
func withLogfn(logfn func(mess string, args ...interface{})) VMOption {
	return logfnOption(logfn)
}
func withTracefn(tracefn func(mess string, args ...interface{})) VMOption {
	return tracefnOption(tracefn)
}

// WithFileIO overrides the I/O surface's file-opening leg (C8), used by LOAD
// to read a source file and by SAVE/SAVEB to write one.
func WithFileIO(openFile func(name string) (io.ReadCloser, error), createFile func(name string) (io.WriteCloser, error)) VMOption {
	return fileIOOption{openFile, createFile}
}
