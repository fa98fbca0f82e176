package main

import (
	"github.com/reusee/bff/configs"
	"github.com/reusee/bff/logs"
	"github.com/reusee/bff/runner"
	"github.com/reusee/bff/scripts"
	"github.com/reusee/bff/sessions"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Configs  configs.Module
	Runner   runner.Module
	Sessions sessions.Module
	Scripts  scripts.Module
}
