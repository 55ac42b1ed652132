package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/openkraft/repocheck/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process
// is killed on context cancellation.
const waitDelay = 2 * time.Second

// ExecRunner implements domain.CommandRunner with os/exec.
type ExecRunner struct{}

func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and returns combined stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCommandNotFound, name)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out.Bytes(), fmt.Errorf("%s: %w", commandLine(name, args), ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out.Bytes(), &domain.CommandError{
				Command:  commandLine(name, args),
				ExitCode: exitErr.ExitCode(),
				Output:   out.String(),
				Err:      err,
			}
		}
		return out.Bytes(), fmt.Errorf("running %s: %w", commandLine(name, args), err)
	}
	return out.Bytes(), nil
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
