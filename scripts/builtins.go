package scripts

import (
	"fmt"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/programs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Predeclared returns the globals available to scripts. limit is the default step limit of run and trace.
func Predeclared(limit int) starlark.StringDict {
	progs := starlark.NewDict(len(programs.Names()))
	for _, p := range programs.All() {
		progs.SetKey(starlark.String(p.Name), starlark.Bytes(p.Tape))
	}
	progs.Freeze()

	return starlark.StringDict{
		"run":      starlark.NewBuiltin("run", runBuiltin(limit)),
		"trace":    starlark.NewBuiltin("trace", traceBuiltin(limit)),
		"op":       starlarkutil.MakeFunc("op", opByte),
		"programs": progs,
		"limit":    starlark.MakeInt(limit),
	}
}

// opByte returns the one-byte string of the named opcode, or "" for an unknown name.
func opByte(name string) string {
	op, ok := bffvm.ParseOp(name)
	if !ok {
		return ""
	}
	return string([]byte{byte(op)})
}

func tapeBytes(fnName string, v starlark.Value) ([]byte, error) {
	switch v := v.(type) {
	case starlark.Bytes:
		return []byte(v), nil
	case starlark.String:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("%s: tape must be bytes or string, got %s", fnName, v.Type())
}

func runBuiltin(defaultLimit int) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var tapeValue starlark.Value
		limit := defaultLimit
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "tape", &tapeValue, "limit?", &limit); err != nil {
			return nil, err
		}
		tape, err := tapeBytes(b.Name(), tapeValue)
		if err != nil {
			return nil, err
		}
		return starlark.Bytes(bffvm.RunLimit(tape, limit)), nil
	}
}

func traceBuiltin(defaultLimit int) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var tapeValue starlark.Value
		limit := defaultLimit
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "tape", &tapeValue, "limit?", &limit); err != nil {
			return nil, err
		}
		tape, err := tapeBytes(b.Name(), tapeValue)
		if err != nil {
			return nil, err
		}
		vm := bffvm.NewVM(tape, limit)
		var events []starlark.Value
		for ev := range vm.Trace {
			events = append(events, eventDict(ev))
		}
		return starlark.NewList(events), nil
	}
}

func eventDict(ev bffvm.Event) *starlark.Dict {
	d := starlark.NewDict(8)
	d.SetKey(starlark.String("step"), starlark.MakeInt(ev.Step))
	d.SetKey(starlark.String("pc"), starlark.MakeInt(ev.PC))
	d.SetKey(starlark.String("op"), starlark.String(ev.Op.String()))
	d.SetKey(starlark.String("head0"), starlark.MakeInt(ev.Head0))
	d.SetKey(starlark.String("head1"), starlark.MakeInt(ev.Head1))
	d.SetKey(starlark.String("jump"), starlark.MakeInt(ev.Jump))
	d.SetKey(starlark.String("cell"), starlark.MakeInt(int(ev.Cell)))
	d.SetKey(starlark.String("noop"), starlark.Bool(!bffvm.IsOp(byte(ev.Op))))
	return d
}

func vmDict(vm *bffvm.VM) *starlark.Dict {
	d := starlark.NewDict(7)
	d.SetKey(starlark.String("tape"), starlark.Bytes(vm.Tape))
	d.SetKey(starlark.String("pc"), starlark.MakeInt(vm.PC))
	d.SetKey(starlark.String("head0"), starlark.MakeInt(vm.Head0))
	d.SetKey(starlark.String("head1"), starlark.MakeInt(vm.Head1))
	d.SetKey(starlark.String("steps"), starlark.MakeInt(vm.Steps))
	d.SetKey(starlark.String("limit"), starlark.MakeInt(vm.Limit))
	d.SetKey(starlark.String("halt"), starlark.String(vm.Halt().String()))
	return d
}
