package programs

import "bytes"

type Program struct {
	Name string
	Tape []byte
	// Want is the expected final tape. nil when the program is only expected to halt.
	Want []byte
	Desc string
}

var catalogue = []Program{
	{
		Name: "add_five",
		Tape: []byte("<+++++\x00"),
		Want: []byte("<+++++\x05"),
		Desc: "point head0 at the last cell and increment it five times",
	},
	{
		Name: "count_down",
		Tape: []byte("<[-]\xff"),
		Want: []byte("<[-]\x00"),
		Desc: "loop the last cell down from 255 to 0",
	},
	{
		Name: "infinite_loop",
		Tape: []byte("<[-+]\x00"),
		Want: []byte("<[-+]\x00"),
		Desc: "a decrement/increment loop over a zero cell, skipped on entry",
	},
	{
		Name: "oscillate",
		Tape: []byte("<[-+]\x01"),
		Desc: "a decrement/increment loop that never reaches zero at its close, runs to the step limit",
	},
	{
		Name: "unbalanced_parens",
		Tape: []byte("<[+\x01"),
		Want: []byte("<[+\x02"),
		Desc: "an open bracket without a partner",
	},
	{
		Name: "nested_loops",
		Tape: []byte("<[<[<[-]>-]>-]\xff\xff\xff"),
		Want: []byte("<[<[<[-]>-]>-]\x00\x00\x00"),
		Desc: "three nested count-down loops over the last three cells",
	},
	{
		Name: "self_bracket",
		Tape: []byte("<<+<[+\x00\x5c+"),
		Want: []byte("<<+<[+\x01]+"),
		Desc: "increment a byte into a loop end, then skip to it",
	},
	{
		Name: "copy_forward",
		Tape: []byte("}.AX"),
		Want: []byte("}}AX"),
		Desc: "move head1 one cell forward and copy head0 onto it",
	},
	{
		Name: "copy_backward",
		Tape: []byte("{,AX"),
		Want: []byte("X,AX"),
		Desc: "move head1 to the last cell and copy it onto head0",
	},
}

func (p Program) clone() Program {
	p.Tape = bytes.Clone(p.Tape)
	p.Want = bytes.Clone(p.Want)
	return p
}

// All returns copies of the catalogue programs; callers may modify them.
func All() []Program {
	ret := make([]Program, 0, len(catalogue))
	for _, p := range catalogue {
		ret = append(ret, p.clone())
	}
	return ret
}

func Get(name string) (Program, bool) {
	for _, p := range catalogue {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Program{}, false
}

func Names() []string {
	ret := make([]string, 0, len(catalogue))
	for _, p := range catalogue {
		ret = append(ret, p.Name)
	}
	return ret
}
