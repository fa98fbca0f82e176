package bffvm

import "fmt"

type OpCode byte

const (
	OpNull      OpCode = 0x00
	OpPlus      OpCode = '+'
	OpCopy10    OpCode = ','
	OpMinus     OpCode = '-'
	OpCopy01    OpCode = '.'
	OpDecr0     OpCode = '<'
	OpIncr0     OpCode = '>'
	OpLoopStart OpCode = '['
	OpLoopEnd   OpCode = ']'
	OpDecr1     OpCode = '{'
	OpIncr1     OpCode = '}'
)

var opNames = map[OpCode]string{
	OpNull:      "NULL",
	OpPlus:      "PLUS",
	OpCopy10:    "COPY10",
	OpMinus:     "MINUS",
	OpCopy01:    "COPY01",
	OpDecr0:     "DECR0",
	OpIncr0:     "INCR0",
	OpLoopStart: "LOOP_START",
	OpLoopEnd:   "LOOP_END",
	OpDecr1:     "DECR1",
	OpIncr1:     "INCR1",
}

var opsByName = func() map[string]OpCode {
	ret := make(map[string]OpCode, len(opNames))
	for op, name := range opNames {
		ret[name] = op
	}
	return ret
}()

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("NOOP(0x%02x)", byte(o))
}

// IsOp reports whether b has dispatch behavior. NULL is a data sentinel and does not.
func IsOp(b byte) bool {
	op := OpCode(b)
	if op == OpNull {
		return false
	}
	_, ok := opNames[op]
	return ok
}

func ParseOp(name string) (OpCode, bool) {
	op, ok := opsByName[name]
	return op, ok
}
