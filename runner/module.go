package runner

import (
	"github.com/reusee/dscope"
)

// Module depends on logs.Module and configs.Module being in the scope.
type Module struct {
	dscope.Module
}
