package configs

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/dscope"
)

const SettingsSchema = `
limit?: int & >=0
workers?: int & >0
cache_size?: int & >=0
script_steps?: int & >=0
`

type Settings struct {
	// Limit is the step limit of each run
	Limit int
	// Workers bounds concurrent runs
	Workers int
	// CacheSize is the number of memoized results, 0 disables the cache
	CacheSize int
	// ScriptSteps bounds the starlark steps of a script, 0 is unbounded
	ScriptSteps int
}

func DefaultSettings() Settings {
	return Settings{
		Limit:     bffvm.DefaultLimit,
		Workers:   runtime.NumCPU(),
		CacheSize:   1024,
		ScriptSteps: 1 << 24,
	}
}

func LoadSettings(loader Loader) (Settings, error) {
	settings := DefaultSettings()
	for _, field := range []struct {
		path   string
		target *int
	}{
		{"limit", &settings.Limit},
		{"workers", &settings.Workers},
		{"cache_size", &settings.CacheSize},
		{"script_steps", &settings.ScriptSteps},
	} {
		if err := loader.AssignFirst(field.path, field.target); err != nil {
			if errors.Is(err, ErrValueNotFound) {
				continue
			}
			return settings, fmt.Errorf("load settings: %w", err)
		}
	}
	return settings, nil
}

type Module struct {
	dscope.Module
}

type Files []string

func (Module) Files() Files {
	return nil
}

func (Module) Loader(
	files Files,
) Loader {
	return NewLoader(files, SettingsSchema)
}

func (Module) Settings(
	loader Loader,
) Settings {
	settings, err := LoadSettings(loader)
	if err != nil {
		panic(err)
	}
	return settings
}
