package main

import (
	"fmt"
	"testing"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/cmds"
	"github.com/reusee/bff/programs"
	"github.com/reusee/bff/runner"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("bench", cmds.Func(func() {
		settings := dscope.Get[runner.Settings](newScope())
		for _, p := range programs.All() {
			var steps int
			res := testing.Benchmark(func(b *testing.B) {
				for b.Loop() {
					vm := bffvm.NewVM(p.Tape, settings.Limit)
					vm.Run()
					steps = vm.Steps
				}
			})
			fmt.Printf("%-20s %8d steps %s\n", p.Name, steps, res.String())
		}
	}).Desc("benchmark the sample programs"))
}
