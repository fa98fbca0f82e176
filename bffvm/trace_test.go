package bffvm

import "testing"

func TestTrace(t *testing.T) {
	vm := NewVM([]byte("<[-]\x02"), DefaultLimit)
	var events []Event
	for ev := range vm.Trace {
		events = append(events, ev)
	}
	if len(events) != vm.Steps {
		t.Fatalf("got %d events for %d steps", len(events), vm.Steps)
	}
	if vm.Halt() != HaltEnd {
		t.Fatalf("got %v", vm.Halt())
	}

	first := events[0]
	if first.Op != OpDecr0 || first.Head0 != 4 || first.Jump != -1 || first.Cell != 2 {
		t.Fatalf("got %+v", first)
	}

	var jumps []int
	for _, ev := range events {
		if ev.Jump >= 0 {
			jumps = append(jumps, ev.Jump)
		}
	}
	// ']' jumps back once while the cell holds 1, then falls through
	if len(jumps) != 1 || jumps[0] != 1 {
		t.Fatalf("got %v", jumps)
	}
	last := events[len(events)-1]
	if last.Op != OpNull || last.PC != 4 {
		t.Fatalf("got %+v", last)
	}
}

func TestTraceStop(t *testing.T) {
	vm := NewVM([]byte("<[-+]\x01"), DefaultLimit)
	n := 0
	for range vm.Trace {
		n++
		if n == 10 {
			break
		}
	}
	if vm.Steps != 10 {
		t.Fatalf("got %d", vm.Steps)
	}
	vm.Run()
	if vm.Steps != DefaultLimit {
		t.Fatalf("got %d", vm.Steps)
	}
}

func TestTraceSkip(t *testing.T) {
	vm := NewVM([]byte("<[+]\x00"), DefaultLimit)
	var ops []OpCode
	for ev := range vm.Trace {
		ops = append(ops, ev.Op)
		if ev.Op == OpLoopStart && ev.Jump != 3 {
			t.Fatalf("got %+v", ev)
		}
	}
	// '<' '[' then the data byte, the body is never dispatched
	if len(ops) != 3 || ops[2] != OpNull {
		t.Fatalf("got %v", ops)
	}
}

func TestOpCode(t *testing.T) {
	if OpPlus.String() != "PLUS" {
		t.Fatalf("got %v", OpPlus)
	}
	if OpCode('X').String() != "NOOP(0x58)" {
		t.Fatalf("got %v", OpCode('X'))
	}
	if IsOp(0) || IsOp('X') || !IsOp('[') {
		t.Fatal()
	}
	op, ok := ParseOp("COPY01")
	if !ok || op != OpCopy01 {
		t.Fatalf("got %v", op)
	}
	if _, ok := ParseOp("foo"); ok {
		t.Fatal()
	}
}
