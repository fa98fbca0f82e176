package sessions

import (
	"github.com/reusee/bff/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type NewSession func(path string) *Session

func (Module) NewSession(
	logger logs.Logger,
) NewSession {
	return func(path string) *Session {
		return &Session{
			Path:   path,
			Logger: logger,
		}
	}
}
