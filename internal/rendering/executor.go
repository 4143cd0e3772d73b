package rendering

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result is the outcome of one external process run
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs external commands. A non-zero exit is reported through
// Result.ExitCode; the error is only set when the process could not run.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// execRunner is the production Executor backed by os/exec
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, runErr
	}
	return res, nil
}
