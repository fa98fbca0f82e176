package bffvm

type Event struct {
	Step  int
	PC    int
	Op    OpCode
	Head0 int
	Head1 int
	// Jump is the bracket position a loop instruction scanned to, or -1
	Jump int
	// Cell is the byte under Head0 after the instruction
	Cell byte
}

// Trace executes the VM, yielding one event per dispatched instruction.
func (v *VM) Trace(yield func(Event) bool) {
	for v.Halt() == Running {
		ev := Event{
			Step: v.Steps,
			PC:   v.PC,
			Op:   OpCode(v.Tape[v.PC]),
			Jump: -1,
		}
		if v.exec() {
			ev.Jump = v.PC - 1
		}
		ev.Head0 = v.Head0
		ev.Head1 = v.Head1
		ev.Cell = v.Tape[v.Head0]
		if !yield(ev) {
			return
		}
	}
}
