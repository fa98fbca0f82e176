package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/cmds"
	"github.com/reusee/bff/programs"
	"github.com/reusee/bff/runner"
	"github.com/reusee/bff/scripts"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("script", cmds.Func(func(path string) error {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		settings := dscope.Get[runner.Settings](newScope())
		_, err = scripts.Exec(path, src, settings, func(s string) {
			fmt.Println(s)
		})
		return err
	}).Desc("execute a starlark script"))

	cmds.Define("repl", cmds.Func(func(spec string) error {
		tape, err := programs.Parse(spec)
		if err != nil {
			return err
		}
		newScope().Call(func(
			tap scripts.Tap,
			settings runner.Settings,
		) {
			tap(context.Background(), bffvm.NewVM(tape, settings.Limit))
		})
		return nil
	}).Desc("open a starlark repl over a tape, with step() and state()"))
}
