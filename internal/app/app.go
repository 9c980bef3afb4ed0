// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable argument parser and pipeline dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/H4-Corp/AndroidLine/internal/meta"
	"github.com/H4-Corp/AndroidLine/internal/ui"
	"github.com/H4-Corp/AndroidLine/internal/version"
	"github.com/H4-Corp/AndroidLine/internal/workflows"
)

// Dependencies holds all injected collaborators required for a run. The
// structure enables dependency injection for testing and keeps main thin.
type Dependencies struct {
	Out        io.Writer
	Getwd      func() (string, error)
	Cloner     workflows.Cloner
	Customizer workflows.Customizer
	Builder    workflows.BuildTool
	Manifest   workflows.ManifestWriter
	Now        func() time.Time
}

// CLI defines the command-line surface parsed by Kong: exactly four
// positional arguments, in this order.
type CLI struct {
	ProjectName string `arg:"" name:"project-name" help:"Directory to create for the new project."`
	PackageName string `arg:"" name:"package-name" help:"Application identifier, e.g. com.example.myapp."`
	MinSDK      string `arg:"" name:"min-sdk" help:"Minimum Android SDK version."`
	TargetSDK   string `arg:"" name:"target-sdk" help:"Target Android SDK version."`
}

// Run parses the arguments and executes the scaffold pipeline. Returns 0 on
// full success and 1 on any fatal failure. A missing artifact after a
// successful build does not change the exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	con := ui.New(out)

	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(meta.AppName))
	if err != nil {
		return exitWithError(con, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return usageError(con, err)
	}
	if strings.TrimSpace(cli.ProjectName) == "" {
		return usageError(con, fmt.Errorf("project name must not be empty"))
	}

	getwd := deps.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	workDir, err := getwd()
	if err != nil {
		return exitWithError(con, err)
	}
	projectRoot := filepath.Join(workDir, cli.ProjectName)

	cfg := workflows.Config{
		ProjectName:  cli.ProjectName,
		PackageName:  cli.PackageName,
		MinSDK:       cli.MinSDK,
		TargetSDK:    cli.TargetSDK,
		TemplateRepo: meta.TemplateRepo,
	}
	con.Step("Arguments received: project=%s package=%s minSdk=%s targetSdk=%s",
		cfg.ProjectName, cfg.PackageName, cfg.MinSDK, cfg.TargetSDK)

	scaffolder := workflows.Scaffolder{
		Cloner:      deps.Cloner,
		Customizer:  deps.Customizer,
		Builder:     deps.Builder,
		Manifest:    deps.Manifest,
		Console:     con,
		ToolVersion: version.GetVersion(),
		Now:         deps.Now,
	}
	if err := scaffolder.Run(context.Background(), projectRoot, cfg); err != nil {
		return exitWithError(con, err)
	}
	return 0
}

func exitWithError(con *ui.Console, err error) int {
	con.Error("Error: %v", err)
	return 1
}

func usageError(con *ui.Console, err error) int {
	con.Error("%v", err)
	con.Error("Usage: %s <project-name> <package-name> <min-sdk> <target-sdk>", meta.AppName)
	return 1
}
