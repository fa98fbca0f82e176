package main

import (
	"encoding/hex"
	"os"
	"strconv"

	"github.com/reusee/bff/cmds"
	"github.com/reusee/bff/configs"
	"github.com/reusee/bff/modes"
	"github.com/reusee/dscope"
)

var (
	limit       = cmds.Opt[int]("-limit")
	workers     = cmds.Var[int]("-workers")
	quote       = cmds.Switch("-quote")
	configFiles = cmds.Collect[string]("-config")
)

func main() {
	if len(os.Args) < 2 {
		cmds.PrintUsage()
		os.Exit(2)
	}
	cmds.Execute(os.Args[1:])
}

// newScope is called by action commands, after the options before them were applied.
func newScope() dscope.Scope {
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Files {
			return configs.Files(*configFiles)
		},
	)
	if *limit != nil || *workers > 0 {
		settings := dscope.Get[configs.Settings](scope)
		if *limit != nil {
			settings.Limit = **limit
		}
		if *workers > 0 {
			settings.Workers = *workers
		}
		scope = scope.Fork(
			func() configs.Settings {
				return settings
			},
		)
	}
	return scope
}

func formatTape(tape []byte) string {
	if *quote {
		return strconv.Quote(string(tape))
	}
	return hex.EncodeToString(tape)
}
