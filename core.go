package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tenthirty/ftth/internal/fileinput"
	"github.com/tenthirty/ftth/internal/flushio"
	"github.com/tenthirty/ftth/internal/runeio"
)

// Core bundles the replaceable I/O surface (C8) and structured logging (C10)
// that every other component is embedded in: the dictionary, compiler and
// interpreter never touch os.Stdin/os.Stdout directly, only Core's fields.
type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer

	// openFile and createFile are the file-opening legs of the I/O surface,
	// used by LOAD to read a source file and by SAVE/SAVEB to write one.
	// Both default to the local filesystem but are replaceable by a host
	// embedding the VM without one.
	openFile   func(name string) (io.ReadCloser, error)
	createFile func(name string) (io.WriteCloser, error)
}

func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (core *Core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panic(haltError{err})
}

func (core *Core) writeRune(r rune) {
	if _, err := runeio.WriteANSIRune(core.out, r); err != nil {
		core.halt(err)
	}
}

// readRune reads one rune, blocking on the installed input. Returns 0, false
// at a clean end of input instead of halting, so a line-oriented caller
// (the outer interpreter) can end the session gracefully rather than
// treating EOF as an implementation fault.
func (core *Core) readRune() (rune, bool) {
	if err := core.out.Flush(); err != nil {
		core.halt(err)
	}

	r, _, err := core.Input.ReadRune()
	for r == 0 && err == nil {
		r, _, err = core.Input.ReadRune()
	}
	if err == io.EOF {
		return 0, false
	}
	if err != nil {
		core.halt(err)
	}
	return r, true
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn   func(mess string, args ...interface{})
	tracefn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

// tracef emits a per-opcode dispatch line when a trace sink has been wired
// (opt-in via -trace), independent of the always-on error sink logf writes
// through.
func (log logging) tracef(mess string, args ...interface{}) {
	if log.tracefn == nil {
		return
	}
	log.tracefn(mess, args...)
}
