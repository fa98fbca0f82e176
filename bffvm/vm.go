package bffvm

const DefaultLimit = 1 << 13

type Halt uint8

const (
	Running Halt = iota
	HaltEnd
	HaltLimit
)

func (h Halt) String() string {
	switch h {
	case Running:
		return "running"
	case HaltEnd:
		return "end"
	case HaltLimit:
		return "limit"
	}
	return "unknown"
}

// VM is the state of one run. Tape is both the instruction stream and the memory.
type VM struct {
	Tape  []byte `cbor:"tape"`
	PC    int    `cbor:"pc"`
	Head0 int    `cbor:"head0"`
	Head1 int    `cbor:"head1"`
	Steps int    `cbor:"steps"`
	Limit int    `cbor:"limit"`
}

func NewVM(tape []byte, limit int) *VM {
	t := make([]byte, len(tape))
	copy(t, tape)
	return &VM{
		Tape:  t,
		Limit: limit,
	}
}

func (v *VM) Halt() Halt {
	if v.PC >= len(v.Tape) {
		return HaltEnd
	}
	if v.Steps >= v.Limit {
		return HaltLimit
	}
	return Running
}

// wrap normalizes a head position into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
