// Where: internal/infra/execx/execx.go
// What: External command execution abstraction.
// Why: Make every shell-out a typed, fakeable result instead of raw exit inspection.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result captures the outcome of a single external command invocation.
// Stdout and Stderr are always populated with whatever the command wrote;
// Err is nil exactly when the command ran and exited zero.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Err      error
}

// Ok reports whether the command ran and exited zero.
func (r Result) Ok() bool { return r.Err == nil }

// ErrOutput returns the trimmed stderr of a failed command, falling back to
// the trimmed stdout when the tool wrote its diagnostics there instead.
func (r Result) ErrOutput() string {
	if out := bytes.TrimSpace(r.Stderr); len(out) > 0 {
		return string(out)
	}
	return string(bytes.TrimSpace(r.Stdout))
}

// CommandRunner defines the interface for executing external commands.
// An empty dir runs the command in the process working directory.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) Result
}

// ExecRunner is the os/exec-backed CommandRunner.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{Err: cmd.Run()}
	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()
	if res.Err != nil {
		res.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(res.Err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		}
	}
	return res
}
