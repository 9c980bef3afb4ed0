// Where: internal/infra/gitclient/gitclient.go
// What: Template cloning through the git binary.
// Why: Keep the clone argument vector in one place, behind the runner abstraction.
package gitclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/H4-Corp/AndroidLine/internal/infra/execx"
)

var errCommandRunnerNil = errors.New("command runner is nil")

// Client clones repositories with an external git binary.
type Client struct {
	runner execx.CommandRunner
}

// New creates a Client using the provided runner.
func New(runner execx.CommandRunner) Client {
	return Client{runner: runner}
}

// Clone populates dest from repoURL. The argument vector is exactly
// `git clone <url> <dest>`. Any clone failure is returned with the
// captured diagnostics; there is no retry.
func (c Client) Clone(ctx context.Context, repoURL, dest string) error {
	if c.runner == nil {
		return errCommandRunnerNil
	}
	res := c.runner.Run(ctx, "", "git", "clone", repoURL, dest)
	if !res.Ok() {
		return fmt.Errorf("clone %s: %w: %s", repoURL, res.Err, res.ErrOutput())
	}
	return nil
}
