package main

import (
	"context"
	"errors"
	"io"

	"github.com/tenthirty/ftth/internal/panicerr"
)

// New constructs a VM with the given options applied, then installs the
// built-in primitive words and records builtin_count. Options that resize
// the arena or stacks (WithArenaCapacity and friends) must apply before
// builtins are installed, so New applies every option before calling
// installBuiltins.
func New(opts ...VMOption) *VM {
	vm := newVM(DefaultArenaCapacity, DefaultDataStackDepth, DefaultReturnStackDepth, DefaultControlStackDepth)
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
	vm.installBuiltins()
	return vm
}

// Run drives the outer interpreter over the installed input until end of
// input, returning any error other than a clean EOF. Execution runs inside
// a recovered goroutine so a panic or runtime.Goexit anywhere in user code
// surfaces as an error rather than taking down the host process.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

func WithInput(r io.Reader) VMOption { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption   { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithTrace wires a per-opcode dispatch trace sink, independent of the
// always-on error-reporting sink installed via WithLogf: every opcode
// execute dispatches renders a line through tracefn, not just faults.
func WithTrace(tracefn func(mess string, args ...interface{})) VMOption { return withTracefn(tracefn) }
