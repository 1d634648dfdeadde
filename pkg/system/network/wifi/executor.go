package network_wifi

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandExecutor runs an external command and returns its combined
// stdout and stderr. A command that exits non-zero yields an *ExitError.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execExecutor struct{}

func (execExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return out, fmt.Errorf("running %s: %w", name, ctx.Err())
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return out, &ExitError{Command: name, Code: ee.ExitCode(), Output: out}
		}
		return out, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}
