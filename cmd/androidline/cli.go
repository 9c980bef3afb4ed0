// Where: cmd/androidline/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/H4-Corp/AndroidLine/internal/app"
	"github.com/H4-Corp/AndroidLine/internal/descriptor"
	"github.com/H4-Corp/AndroidLine/internal/infra/execx"
	"github.com/H4-Corp/AndroidLine/internal/infra/gitclient"
	"github.com/H4-Corp/AndroidLine/internal/infra/gradle"
	"github.com/H4-Corp/AndroidLine/internal/manifest"
)

// buildDependencies constructs the runtime dependencies for the CLI. Every
// external tool goes through the same ExecRunner.
func buildDependencies() app.Dependencies {
	runner := execx.ExecRunner{}
	return app.Dependencies{
		Out:        os.Stdout,
		Getwd:      os.Getwd,
		Cloner:     gitclient.New(runner),
		Customizer: descriptor.Customizer{},
		Builder:    gradle.New(runner),
		Manifest:   manifest.Writer{},
		Now:        time.Now,
	}
}
