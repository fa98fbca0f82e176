package main

import (
	"context"
	"fmt"

	"github.com/reusee/bff/cmds"
	"github.com/reusee/bff/programs"
	"github.com/reusee/bff/runner"
	"github.com/reusee/bff/sessions"
)

func init() {
	cmds.Define("session", cmds.Sub(map[string]*cmds.Command{

		"new": cmds.Func(func(path string, spec string) (err error) {
			tape, err := programs.Parse(spec)
			if err != nil {
				return err
			}
			newScope().Call(func(
				newSession sessions.NewSession,
				settings runner.Settings,
			) {
				err = newSession(path).Create(tape, settings.Limit)
			})
			return
		}).Desc("create a session file from a tape"),

		"step": cmds.Func(func(path string, n int) (err error) {
			newScope().Call(func(
				newSession sessions.NewSession,
			) {
				_, err = newSession(path).Step(context.Background(), n)
			})
			return
		}).Desc("execute n instructions of a session, 0 runs to the end"),

		"show": cmds.Func(func(path string) (err error) {
			newScope().Call(func(
				newSession sessions.NewSession,
			) {
				vm, e := newSession(path).Load()
				if e != nil {
					err = e
					return
				}
				fmt.Println(formatTape(vm.Tape))
				fmt.Printf("pc=%d head0=%d head1=%d steps=%d limit=%d halt=%s\n",
					vm.PC, vm.Head0, vm.Head1, vm.Steps, vm.Limit, vm.Halt())
			})
			return
		}).Desc("print the state of a session"),
	}).Desc("persisted runs: session new|step|show"))
}
