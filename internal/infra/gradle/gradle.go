// Where: internal/infra/gradle/gradle.go
// What: Gradle wrapper validation and debug build invocation.
// Why: Isolate every gradle-facing shell-out behind one type.
package gradle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H4-Corp/AndroidLine/internal/infra/execx"
	"github.com/H4-Corp/AndroidLine/internal/meta"
)

// Tool runs gradle-related commands for a single project.
type Tool struct {
	runner execx.CommandRunner
}

// New creates a Tool using the provided runner.
func New(runner execx.CommandRunner) Tool {
	return Tool{runner: runner}
}

// WrapperPath returns the launcher script location inside projectRoot.
func WrapperPath(projectRoot string) string {
	return filepath.Join(projectRoot, meta.WrapperRelPath)
}

// ArtifactPath returns where assembleDebug leaves the debug APK.
func ArtifactPath(projectRoot string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(meta.ArtifactRelPath))
}

// HasArtifact reports whether the debug APK exists under projectRoot.
func HasArtifact(projectRoot string) bool {
	_, err := os.Stat(ArtifactPath(projectRoot))
	return err == nil
}

// EnsureWrapper makes sure the launcher script exists and is executable.
// A missing script is regenerated with `gradle wrapper`; a script without
// the execute bit gets exactly one `chmod +x` attempt. Generation,
// inspection, and grant failures are all returned as errors.
func (t Tool) EnsureWrapper(ctx context.Context, projectRoot string) error {
	if t.runner == nil {
		return errCommandRunnerNil
	}
	wrapper := WrapperPath(projectRoot)

	if _, err := os.Stat(wrapper); os.IsNotExist(err) {
		res := t.runner.Run(ctx, projectRoot, "gradle", "wrapper")
		if !res.Ok() {
			return fmt.Errorf("generate gradle wrapper (is gradle installed?): %w: %s", res.Err, res.ErrOutput())
		}
	}

	if _, err := os.Stat(wrapper); err != nil {
		return errWrapperMissing
	}

	listing := t.runner.Run(ctx, "", "ls", "-l", wrapper)
	if !listing.Ok() {
		return fmt.Errorf("inspect gradlew permissions: %w: %s", listing.Err, listing.ErrOutput())
	}

	// Same check the original tooling applied: any execute bit in the
	// long listing counts.
	if !strings.Contains(string(listing.Stdout), "x") {
		grant := t.runner.Run(ctx, projectRoot, "chmod", "+x", wrapper)
		if !grant.Ok() {
			return fmt.Errorf("grant gradlew execute permission: %w: %s", grant.Err, grant.ErrOutput())
		}
	}
	return nil
}

// AssembleDebug runs the debug build through the launcher script with the
// project root as working directory, capturing both output streams. The
// returned Result carries the streams even on failure so callers can
// surface the build tool's own diagnostics verbatim.
func (t Tool) AssembleDebug(ctx context.Context, projectRoot string) (execx.Result, error) {
	if t.runner == nil {
		return execx.Result{}, errCommandRunnerNil
	}
	res := t.runner.Run(ctx, projectRoot, "sh", WrapperPath(projectRoot), "assembleDebug")
	if !res.Ok() {
		return res, fmt.Errorf("gradle build failed: %w", res.Err)
	}
	return res, nil
}
