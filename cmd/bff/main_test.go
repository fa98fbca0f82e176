package main

import (
	"testing"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/cmds"
	"github.com/reusee/bff/configs"
	"github.com/reusee/dscope"
)

func TestNewScope(t *testing.T) {
	settings := dscope.Get[configs.Settings](newScope())
	if settings.Limit != bffvm.DefaultLimit {
		t.Fatalf("got %+v", settings)
	}

	cmds.GlobalExecutor.MustExecute([]string{
		"-config", "../../configs/testdata/a.cue",
	})
	settings = dscope.Get[configs.Settings](newScope())
	if settings.Limit != 100 || settings.Workers != 2 {
		t.Fatalf("got %+v", settings)
	}

	cmds.GlobalExecutor.MustExecute([]string{
		"-limit", "0",
	})
	settings = dscope.Get[configs.Settings](newScope())
	if settings.Limit != 0 || settings.Workers != 2 {
		t.Fatalf("got %+v", settings)
	}

	cmds.GlobalExecutor.MustExecute([]string{
		"-workers", "7",
	})
	settings = dscope.Get[configs.Settings](newScope())
	if settings.Limit != 0 || settings.Workers != 7 {
		t.Fatalf("got %+v", settings)
	}
}

func TestFormatTape(t *testing.T) {
	if got := formatTape([]byte("<+\x00")); got != "3c2b00" {
		t.Fatalf("got %q", got)
	}
	cmds.GlobalExecutor.MustExecute([]string{"-quote"})
	defer cmds.GlobalExecutor.MustExecute([]string{"!-quote"})
	if got := formatTape([]byte("<+\x00")); got != `"<+\x00"` {
		t.Fatalf("got %q", got)
	}
}

func TestProgramsAlias(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{"ls"})
}
