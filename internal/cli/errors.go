package cli

import (
	"errors"

	"github.com/agentx-labs/filestage/internal/manifest"
	"github.com/agentx-labs/filestage/internal/stage"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitGeneral         = 1
	ExitInvalidArgument = 2
	ExitIO              = 11
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var invalid *manifest.InvalidError
	if errors.As(err, &invalid) {
		return ExitInvalidArgument
	}
	switch stage.KindOf(err) {
	case stage.KindInvalidArgument:
		return ExitInvalidArgument
	case stage.KindIO:
		return ExitIO
	default:
		return ExitGeneral
	}
}
