// Package shell runs external commands in the scoped working directory.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/shellkit/shellkit/pkg/cwd"
)

// Runner runs external commands. The zero value runs commands for real,
// inherits the caller's standard streams, and logs nothing.
type Runner struct {
	// DryRun suppresses execution. The intended invocation is logged and
	// reported as having exited successfully.
	DryRun bool
	// Logger receives one entry per invocation. Nil disables logging.
	Logger *zap.Logger
	// Stdin, Stdout and Stderr are wired to the command. Nil fields fall
	// back to the process's own streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes name with args, with the scoped working directory as the
// command's directory, and returns the command's numeric exit status. A
// command that could not be started at all reports -1 along with the error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (int, error) {
	dir := cwd.Get()
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if r.DryRun {
		logger.Info("dry run",
			zap.String("cmd", name),
			zap.Strings("args", args),
			zap.String("dir", dir))
		return 0, nil
	}
	logger.Debug("run",
		zap.String("cmd", name),
		zap.Strings("args", args),
		zap.String("dir", dir))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode(), nil
	}
	return -1, err
}
