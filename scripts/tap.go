package scripts

import (
	"context"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/configs"
	"github.com/reusee/bff/logs"
	"github.com/reusee/dscope"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

type Module struct {
	dscope.Module
}

// Tap opens a REPL over vm. step(n=1) advances it and state() reports it.
type Tap func(ctx context.Context, vm *bffvm.VM)

func (Module) Tap(
	logger logs.Logger,
	settings configs.Settings,
) Tap {
	return func(ctx context.Context, vm *bffvm.VM) {
		logger.InfoContext(ctx, "tap", "cells", len(vm.Tape), "limit", vm.Limit)
		defer func() {
			logger.InfoContext(ctx, "tap end", "steps", vm.Steps, "halt", vm.Halt().String())
		}()

		globals := Predeclared(settings.Limit)
		for name, value := range VMGlobals(vm) {
			globals[name] = value
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, globals)
	}
}

// VMGlobals binds step and state builtins to vm.
func VMGlobals(vm *bffvm.VM) starlark.StringDict {
	return starlark.StringDict{
		"step": starlark.NewBuiltin("step", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			n := 1
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "n?", &n); err != nil {
				return nil, err
			}
			for i := 0; i < n && vm.Step(); i++ {
			}
			return vmDict(vm), nil
		}),
		"state": starlark.NewBuiltin("state", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return vmDict(vm), nil
		}),
	}
}
