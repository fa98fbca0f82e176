package bffvm

func Run(tape []byte) []byte {
	return RunLimit(tape, DefaultLimit)
}

func RunLimit(tape []byte, limit int) []byte {
	vm := NewVM(tape, limit)
	vm.Run()
	return vm.Tape
}

func (v *VM) Run() {
	for v.Step() {
	}
}

// Step executes one instruction. It returns false without doing anything once the VM halted.
func (v *VM) Step() bool {
	if v.Halt() != Running {
		return false
	}
	v.exec()
	return true
}

func (v *VM) exec() (jumped bool) {
	tape := v.Tape
	n := len(tape)

	switch OpCode(tape[v.PC]) {

	case OpDecr0:
		v.Head0 = wrap(v.Head0-1, n)
	case OpIncr0:
		v.Head0 = wrap(v.Head0+1, n)
	case OpDecr1:
		v.Head1 = wrap(v.Head1-1, n)
	case OpIncr1:
		v.Head1 = wrap(v.Head1+1, n)

	case OpMinus:
		tape[v.Head0]--
	case OpPlus:
		tape[v.Head0]++

	case OpCopy01:
		tape[v.Head1] = tape[v.Head0]
	case OpCopy10:
		tape[v.Head0] = tape[v.Head1]

	case OpLoopStart:
		if tape[v.Head0] == 0 {
			v.PC = scanForward(tape, v.PC)
			jumped = true
		}
	case OpLoopEnd:
		if tape[v.Head0] != 0 {
			v.PC = scanBackward(tape, v.PC)
			jumped = true
		}

	}

	v.PC++
	v.Steps++
	return
}

// scanForward finds the LOOP_END matching the LOOP_START at pc on the live tape.
// An unterminated loop stops at the last cell.
func scanForward(tape []byte, pc int) int {
	depth := 1
	for depth > 0 && pc < len(tape)-1 {
		pc++
		switch OpCode(tape[pc]) {
		case OpLoopStart:
			depth++
		case OpLoopEnd:
			depth--
		}
	}
	return pc
}

// scanBackward finds the LOOP_START matching the LOOP_END at pc on the live tape.
// The scan stops at position 1; position 0 is never examined.
func scanBackward(tape []byte, pc int) int {
	depth := 1
	for depth > 0 && pc > 1 {
		pc--
		switch OpCode(tape[pc]) {
		case OpLoopEnd:
			depth++
		case OpLoopStart:
			depth--
		}
	}
	return pc
}
