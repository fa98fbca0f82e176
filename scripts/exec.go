package scripts

import (
	"errors"

	"github.com/reusee/bff/configs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Exec runs a script and returns its globals.
// Tapes run under settings.Limit and the script itself under settings.ScriptSteps.
func Exec(name string, src []byte, settings configs.Settings, output func(string)) (starlark.StringDict, error) {
	thread := &starlark.Thread{
		Name: name,
	}
	if settings.ScriptSteps > 0 {
		thread.SetMaxExecutionSteps(uint64(settings.ScriptSteps))
	}
	if output != nil {
		thread.Print = func(_ *starlark.Thread, msg string) {
			output(msg)
		}
	}
	globals, err := starlark.ExecFileOptions(fileOptions, thread, name, src, Predeclared(settings.Limit))
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return nil, errors.New(evalErr.Backtrace())
		}
		return nil, err
	}
	return globals, nil
}
