package main

import (
	"context"
	"io"
)

// nextLine reads one logical line from the installed input, accumulating
// bytes up to (but not including) the newline. At end of input it returns
// any trailing unterminated partial line once, then reports no more lines.
func (vm *VM) nextLine() (line string, ok bool) {
	var buf []byte
	for {
		r, _, err := vm.Input.ReadRune()
		switch {
		case r == '\n':
			return string(buf), true
		case err == io.EOF:
			if len(buf) > 0 {
				return string(buf), true
			}
			return "", false
		case err != nil:
			vm.halt(err)
		case r == 0:
			// a queued reader ran dry; Input has already advanced to the
			// next one (or none), just retry
		default:
			buf = append(buf, byte(r))
		}
	}
}

// reportError writes one diagnostic line to the error channel (routed
// through the logfn error sink, which is separate from the tracefn trace
// sink) and abandons the current line. The VM itself is never torn down.
func (vm *VM) reportError(err error) {
	vm.logf("?", "%v", err)
}

// run drives the outer interpreter: read a line, tokenize-and-dispatch it,
// repeat until input is exhausted or a BYE/QUIT/EXIT directive is seen.
func (vm *VM) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := vm.nextLine()
		if !ok {
			return nil
		}
		if stop := vm.processLine(line); stop {
			return nil
		}
	}
}

// processLine strips the line comment, tokenizes, and for each token
// dispatches directives recognized by the outer interpreter (§6.1) or hands
// off to the compiler. A malformed line reports and stops, but the session
// continues with the next line.
func (vm *VM) processLine(line string) (stop bool) {
	s := newLineScanner([]byte(line))
	for {
		tok, ok := s.next()
		if !ok {
			return false
		}

		switch tok {
		case "BYE", "QUIT", "EXIT":
			return true

		case "SEE":
			name, ok := s.next()
			if !ok {
				vm.reportError(DirectiveContextError{"SEE"})
				return false
			}
			vm.directiveSee(name)
			return false

		case "LIST":
			vm.directiveList()
			return false

		case "LOAD":
			name, ok := s.next()
			if !ok {
				vm.reportError(DirectiveContextError{"LOAD"})
				return false
			}
			vm.directiveLoad(name)
			return false

		case "SAVE":
			name, ok := s.next()
			if !ok {
				vm.reportError(DirectiveContextError{"SAVE"})
				return false
			}
			vm.directiveSave(name)
			return false

		case "SAVEB":
			name, ok := s.next()
			if !ok {
				vm.reportError(DirectiveContextError{"SAVEB"})
				return false
			}
			vm.directiveSaveB(name)
			return false

		case "LOADB":
			name, ok := s.next()
			if !ok {
				vm.reportError(DirectiveContextError{"LOADB"})
				return false
			}
			vm.directiveLoadB(name)
			return false

		default:
			if err := vm.handleToken(s, tok); err != nil {
				vm.reportError(err)
				return false
			}
		}
	}
}

// directiveLoad queues a source file for reading through the same input
// queue that command-line source arguments use, placing it ahead of every
// reader still waiting there. The reader currently being consumed is not
// interrupted: the file's lines are read once that reader reaches its end.
func (vm *VM) directiveLoad(name string) {
	f, err := vm.openSourceFile(name)
	if err != nil {
		vm.reportError(err)
		return
	}
	vm.Input.Queue = append([]io.Reader{f}, vm.Input.Queue...)
	vm.closers = append(vm.closers, f)
}

// directiveSave emits a textual reconstruction of every user-defined word
// (everything past builtin_count), decompiled from the arena. It is a
// debugging aid, not a faithful round-trip: see decompileWord.
func (vm *VM) directiveSave(name string) {
	f, err := vm.createOutputFile(name)
	if err != nil {
		vm.reportError(err)
		return
	}
	defer f.Close()
	for i := vm.builtinCount; i < len(vm.words); i++ {
		if _, err := io.WriteString(f, vm.decompileWord(vm.words[i])+"\n"); err != nil {
			vm.reportError(err)
			return
		}
	}
}

func (vm *VM) directiveSaveB(name string) {
	f, err := vm.createOutputFile(name)
	if err != nil {
		vm.reportError(err)
		return
	}
	defer f.Close()
	if err := vm.saveImage(f); err != nil {
		vm.reportError(err)
	}
}

func (vm *VM) directiveLoadB(name string) {
	f, err := vm.openSourceFile(name)
	if err != nil {
		vm.reportError(err)
		return
	}
	defer f.Close()
	if err := vm.loadImage(f); err != nil {
		vm.reportError(err)
	}
}
