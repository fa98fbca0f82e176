package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/cmds"
	"github.com/reusee/bff/logs"
	"github.com/reusee/bff/programs"
	"github.com/reusee/bff/runner"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("run", cmds.Func(func(spec string) error {
		tape, err := programs.Parse(spec)
		if err != nil {
			return err
		}
		return runTapes([][]byte{tape})
	}).Desc("run a tape, print the final tape as hex, or quoted with -quote"))

	cmds.Define("batch", cmds.Func(func(path string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var tapes [][]byte
		scanner := bufio.NewScanner(bytes.NewReader(content))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			tape, err := programs.Parse(line)
			if err != nil {
				return err
			}
			tapes = append(tapes, tape)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		return runTapes(tapes)
	}).Desc("run the tapes listed one per line in a file"))

	cmds.Define("trace", cmds.Func(func(spec string) error {
		tape, err := programs.Parse(spec)
		if err != nil {
			return err
		}
		settings := dscope.Get[runner.Settings](newScope())
		vm := bffvm.NewVM(tape, settings.Limit)
		noops := 0
		for ev := range vm.Trace {
			if !bffvm.IsOp(byte(ev.Op)) {
				noops++
			}
			jump := ""
			if ev.Jump >= 0 {
				jump = fmt.Sprintf(" jump=%d", ev.Jump)
			}
			fmt.Printf("%6d pc=%-5d %-12s h0=%-5d h1=%-5d cell=%02x%s\n",
				ev.Step, ev.PC, ev.Op, ev.Head0, ev.Head1, ev.Cell, jump)
		}
		fmt.Println(formatTape(vm.Tape))
		fmt.Printf("halt=%s steps=%d noops=%d\n", vm.Halt(), vm.Steps, noops)
		return nil
	}).Desc("run a tape printing every executed instruction"))

	cmds.Define("programs", cmds.Func(func() {
		for _, p := range programs.All() {
			fmt.Printf("%-20s %s\t%s\n", p.Name, formatTape(p.Tape), p.Desc)
		}
	}).Desc("list the sample programs").Alias("ls"))
}

func runTapes(tapes [][]byte) (err error) {
	newScope().Call(func(
		runMany runner.RunMany,
		logger logs.Logger,
	) {
		var results []runner.Result
		results, err = runMany(context.Background(), tapes)
		if err != nil {
			return
		}
		for _, res := range results {
			logger.Info("result",
				"steps", res.Steps,
				"halt", res.Halt.String(),
				"cached", res.Cached,
			)
			fmt.Println(formatTape(res.Tape))
		}
	})
	return
}
