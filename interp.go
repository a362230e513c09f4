package main

// builtinWords lists every primitive that is callable as an ordinary word,
// each backed by a tiny arena fragment of exactly two bytes: the opcode
// followed by EXIT. Control-flow opcodes (EXIT, LIT, CALL, BRANCH,
// BRANCH_IF_ZERO, DO, LOOP, I) are never looked up by name: the compiler
// emits them directly from the directive table in compile.go.
var builtinWords = []struct {
	name string
	op   opcode
}{
	{"DUP", opDup}, {"DROP", opDrop}, {"SWAP", opSwap}, {"OVER", opOver}, {"ROT", opRot},
	{"2DUP", op2Dup}, {"2DROP", op2Drop}, {"NIP", opNip}, {"TUCK", opTuck}, {"?DUP", opQDup},

	{">R", opToR}, {"R>", opRFrom}, {"R@", opRFetch},

	{"+", opAdd}, {"-", opSub}, {"*", opMul}, {"/", opDiv}, {"MOD", opMod}, {"DIVMOD", opDivMod},
	{"NEGATE", opNegate}, {"ABS", opAbs}, {"MIN", opMin}, {"MAX", opMax}, {"1+", opIncr}, {"1-", opDecr},

	{"AND", opAnd}, {"OR", opOr}, {"XOR", opXor}, {"NOT", opNot},

	{"<", opLT}, {">", opGT}, {"=", opEQ}, {"<=", opLE}, {">=", opGE}, {"<>", opNE},
	{"0=", opZeroEQ}, {"0<", opZeroLT}, {"0<>", opZeroNE},

	{"@", opLoad}, {"!", opStore}, {"C@", opLoadByte}, {"C!", opStoreByte},
	{"+!", opPlusStore}, {"ALLOT", opAllot}, {"HERE", opHere},

	{"EMIT", opEmit}, {"KEY", opKey}, {"CR", opCR}, {"TYPE", opType}, {".", opDot},
	{".S", opDotS}, {"DEPTH", opDepth}, {"CLEAR", opClear}, {"WORDS", opWords},
}

// installBuiltins populates the word table with every primitive and records
// builtin_count, the split the image serializer preserves across save/load.
func (vm *VM) installBuiltins() {
	for _, b := range builtinWords {
		addr := vm.here
		vm.emitByte(byte(b.op))
		vm.emitByte(byte(opExit))
		vm.addWord(b.name, addr)
	}
	vm.builtinCount = len(vm.words)
}

// execute runs the word starting at start until its EXIT unwinds the return
// stack back to the depth it had on entry. An unknown opcode is the one
// runtime condition that is not silently tolerated: it logs and returns,
// leaving the data and return stacks exactly as they were at the fault.
func (vm *VM) execute(start uint16) {
	rsp0 := vm.rsp
	vm.pc = start
	for {
		op := opcode(vm.readByte(vm.pc))
		pcAtOp := vm.pc
		vm.pc++

		if vm.tracefn != nil {
			name := "?"
			if int(op) < len(opcodeNames) {
				name = opcodeNames[op]
			}
			vm.tracef("@%v %v -- r:%v s:%v", pcAtOp, name, vm.ret[:vm.rsp], vm.data[:vm.dsp])
		}

		switch op {
		case opExit:
			if vm.rsp <= rsp0 {
				return
			}
			vm.pc = uint16(vm.popRet())

		case opLit:
			v := vm.readCell(vm.pc)
			vm.pc += 4
			vm.pushData(v)

		case opCall:
			addr := vm.readAddr(vm.pc)
			vm.pc += 2
			vm.pushRet(int32(vm.pc))
			vm.pc = addr

		case opBranch:
			vm.pc = vm.readAddr(vm.pc)

		case opBranchIfZero:
			addr := vm.readAddr(vm.pc)
			vm.pc += 2
			if vm.popData() == 0 {
				vm.pc = addr
			}

		case opDo:
			idx := vm.popData()
			limit := vm.popData()
			vm.pushRet(limit)
			vm.pushRet(idx)

		case opLoop:
			head := vm.readAddr(vm.pc)
			vm.pc += 2
			idx := vm.peekRet() + 1
			limit := vm.retAt(1)
			if idx < limit {
				if vm.rsp > 0 {
					vm.ret[vm.rsp-1] = idx
				}
				vm.pc = head
			} else {
				vm.popRet()
				vm.popRet()
			}

		case opI:
			vm.pushData(vm.retAt(0))

		case opDup:
			vm.pushData(vm.peekData())
		case opDrop:
			vm.popData()
		case opSwap:
			b, a := vm.popData(), vm.popData()
			vm.pushData(b)
			vm.pushData(a)
		case opOver:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a)
			vm.pushData(b)
			vm.pushData(a)
		case opRot:
			c, b, a := vm.popData(), vm.popData(), vm.popData()
			vm.pushData(b)
			vm.pushData(c)
			vm.pushData(a)
		case op2Dup:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a)
			vm.pushData(b)
			vm.pushData(a)
			vm.pushData(b)
		case op2Drop:
			vm.popData()
			vm.popData()
		case opNip:
			b, a := vm.popData(), vm.popData()
			_ = a
			vm.pushData(b)
		case opTuck:
			b, a := vm.popData(), vm.popData()
			vm.pushData(b)
			vm.pushData(a)
			vm.pushData(b)
		case opQDup:
			v := vm.peekData()
			if v != 0 {
				vm.pushData(v)
			}

		case opToR:
			vm.pushRet(vm.popData())
		case opRFrom:
			vm.pushData(vm.popRet())
		case opRFetch:
			vm.pushData(vm.peekRet())

		case opAdd:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a + b)
		case opSub:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a - b)
		case opMul:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a * b)
		case opDiv:
			b, a := vm.popData(), vm.popData()
			if b == 0 {
				vm.pushData(0)
			} else {
				vm.pushData(a / b)
			}
		case opMod:
			b, a := vm.popData(), vm.popData()
			if b == 0 {
				vm.pushData(0)
			} else {
				vm.pushData(a % b)
			}
		case opDivMod:
			b, a := vm.popData(), vm.popData()
			if b == 0 {
				vm.pushData(0)
				vm.pushData(0)
			} else {
				vm.pushData(a % b)
				vm.pushData(a / b)
			}
		case opNegate:
			vm.pushData(-vm.popData())
		case opAbs:
			a := vm.popData()
			if a < 0 {
				a = -a
			}
			vm.pushData(a)
		case opMin:
			b, a := vm.popData(), vm.popData()
			if a < b {
				vm.pushData(a)
			} else {
				vm.pushData(b)
			}
		case opMax:
			b, a := vm.popData(), vm.popData()
			if a > b {
				vm.pushData(a)
			} else {
				vm.pushData(b)
			}
		case opIncr:
			vm.pushData(vm.popData() + 1)
		case opDecr:
			vm.pushData(vm.popData() - 1)

		case opAnd:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a & b)
		case opOr:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a | b)
		case opXor:
			b, a := vm.popData(), vm.popData()
			vm.pushData(a ^ b)
		case opNot:
			vm.pushData(^vm.popData())

		case opLT:
			vm.pushData(boolCell(vm.cmpLess()))
		case opGT:
			vm.pushData(boolCell(vm.cmpGreater()))
		case opEQ:
			b, a := vm.popData(), vm.popData()
			vm.pushData(boolCell(a == b))
		case opLE:
			b, a := vm.popData(), vm.popData()
			vm.pushData(boolCell(a <= b))
		case opGE:
			b, a := vm.popData(), vm.popData()
			vm.pushData(boolCell(a >= b))
		case opNE:
			b, a := vm.popData(), vm.popData()
			vm.pushData(boolCell(a != b))
		case opZeroEQ:
			vm.pushData(boolCell(vm.popData() == 0))
		case opZeroLT:
			vm.pushData(boolCell(vm.popData() < 0))
		case opZeroNE:
			vm.pushData(boolCell(vm.popData() != 0))

		case opLoad:
			addr := vm.popData()
			vm.pushData(vm.arena.LoadCell(uint(addr)))
		case opStore:
			addr, v := vm.popData(), vm.popData()
			vm.arena.StoreCell(uint(addr), v)
		case opLoadByte:
			addr := vm.popData()
			vm.pushData(int32(vm.arena.LoadByte(uint(addr))))
		case opStoreByte:
			addr, v := vm.popData(), vm.popData()
			vm.arena.StoreByte(uint(addr), byte(v))
		case opPlusStore:
			addr, n := vm.popData(), vm.popData()
			cur := vm.arena.LoadCell(uint(addr))
			vm.arena.StoreCell(uint(addr), cur+n)
		case opAllot:
			n := vm.popData()
			if n > 0 && uint(vm.here)+uint(n) <= vm.arena.Cap() {
				vm.here += uint16(n)
			}
		case opHere:
			vm.pushData(int32(vm.here))

		case opEmit:
			vm.emitChar(vm.popData())
		case opKey:
			vm.pushData(vm.keyChar())
		case opCR:
			vm.writeRune('\n')
		case opType:
			length, addr := vm.popData(), vm.popData()
			vm.typeString(uint16(addr), length)
		case opDot:
			vm.printDecimal(vm.popData())
		case opDotS:
			vm.printDecimal(int32(vm.dsp))
			for i := 0; i < vm.dsp; i++ {
				vm.printDecimal(vm.data[i])
			}
		case opDepth:
			vm.pushData(int32(vm.dsp))
		case opClear:
			vm.dsp = 0
		case opWords:
			for i := len(vm.words) - 1; i >= 0; i-- {
				for _, r := range vm.words[i].name {
					vm.writeRune(r)
				}
				vm.writeRune(' ')
			}

		default:
			vm.logf("?", "%v", UnknownOpcodeError{Op: byte(op), PC: pcAtOp}.Error())
			return
		}
	}
}

func (vm *VM) cmpLess() bool {
	b, a := vm.popData(), vm.popData()
	return a < b
}

func (vm *VM) cmpGreater() bool {
	b, a := vm.popData(), vm.popData()
	return a > b
}

// boolCell normalizes a Go bool to the language's truth values.
func boolCell(t bool) int32 {
	if t {
		return -1
	}
	return 0
}
