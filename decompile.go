package main

import (
	"fmt"
	"strconv"
	"strings"
)

// decompileWord reconstructs a textual definition for w by walking its
// bytecode and mapping each opcode back to a surface token. This is a
// documented lossy heuristic, not a faithful round-trip: THEN has no opcode
// of its own so it can never be reconstructed, and any BRANCH that isn't
// recognized as a ." literal's skip-over (including REPEAT's backward
// branch) is rendered as ELSE. Treat the result as a debugging aid.
func (vm *VM) decompileWord(w wordEntry) string {
	var toks []string
	pc := w.addr
	for {
		op := opcode(vm.readByte(pc))
		switch op {
		case opExit:
			toks = append(toks, ";")
			return fmt.Sprintf(": %s %s", w.name, strings.Join(toks, " "))

		case opLit:
			v := vm.readCell(pc + 1)
			pc += 5
			toks = append(toks, strconv.Itoa(int(v)))

		case opCall:
			addr := vm.readAddr(pc + 1)
			pc += 3
			if callee, ok := vm.findWordByAddr(addr); ok {
				toks = append(toks, callee.name)
			} else {
				toks = append(toks, fmt.Sprintf("CALL<%d>", addr))
			}

		case opBranch:
			target := vm.readAddr(pc + 1)
			after := pc + 3
			if text, ok, cont := vm.tryDecodeStringLiteral(after, target); ok {
				toks = append(toks, fmt.Sprintf(`."%s"`, text))
				pc = cont
				continue
			}
			toks = append(toks, "ELSE")
			pc = after

		case opBranchIfZero:
			pc += 3
			toks = append(toks, "IF")

		case opDo:
			pc++
			toks = append(toks, "DO")

		case opLoop:
			pc += 3
			toks = append(toks, "LOOP")

		case opI:
			pc++
			toks = append(toks, "I")

		default:
			name := ""
			if int(op) < len(opcodeNames) {
				name = opcodeNames[op]
			}
			if name == "" {
				name = fmt.Sprintf("OP<%d>", op)
			}
			toks = append(toks, name)
			pc++
		}
	}
}

// tryDecodeStringLiteral recognizes the exact emission pattern compiled for
// ." text": raw text bytes in [textStart, textEnd), immediately followed by
// LIT textStart; LIT len; TYPE. On a match it returns the recovered text and
// the arena position right after the TYPE opcode.
func (vm *VM) tryDecodeStringLiteral(textStart, textEnd uint16) (text string, ok bool, cont uint16) {
	if textEnd < textStart {
		return "", false, 0
	}
	length := int(textEnd - textStart)

	p := textEnd
	if opcode(vm.readByte(p)) != opLit {
		return "", false, 0
	}
	addrField := vm.readCell(p + 1)
	if uint16(addrField) != textStart {
		return "", false, 0
	}
	p += 5

	if opcode(vm.readByte(p)) != opLit {
		return "", false, 0
	}
	lenField := vm.readCell(p + 1)
	if int(lenField) != length {
		return "", false, 0
	}
	p += 5

	if opcode(vm.readByte(p)) != opType {
		return "", false, 0
	}
	p++

	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = vm.readByte(textStart + uint16(i))
	}
	return string(buf), true, p
}

// writeString writes s through the I/O surface one rune at a time.
func (vm *VM) writeString(s string) {
	for _, r := range s {
		vm.writeRune(r)
	}
}

// directiveSee prints the decompiled definition of one word.
func (vm *VM) directiveSee(name string) {
	w, ok := vm.lookup(name)
	if !ok {
		vm.reportError(UnknownWordError{name})
		return
	}
	vm.writeString(vm.decompileWord(w))
	vm.writeRune('\n')
}

// directiveList prints every word name, newest first, one per line.
func (vm *VM) directiveList() {
	for i := len(vm.words) - 1; i >= 0; i-- {
		vm.writeString(vm.words[i].name)
		vm.writeRune('\n')
	}
}
