// Where: internal/workflows/scaffold.go
// What: Scaffold pipeline orchestration.
// Why: Sequence clone, customization, wrapper validation, and build without CLI concerns.
package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/H4-Corp/AndroidLine/internal/descriptor"
	"github.com/H4-Corp/AndroidLine/internal/infra/execx"
	"github.com/H4-Corp/AndroidLine/internal/manifest"
	"github.com/H4-Corp/AndroidLine/internal/meta"
	"github.com/H4-Corp/AndroidLine/internal/ui"
)

// Config is the immutable per-run configuration, built once from CLI
// arguments and read by every stage.
type Config struct {
	ProjectName  string
	PackageName  string
	MinSDK       string
	TargetSDK    string
	TemplateRepo string
}

// Cloner populates a directory from a remote template.
type Cloner interface {
	Clone(ctx context.Context, repoURL, dest string) error
}

// Customizer rewrites the build descriptor inside a project root.
type Customizer interface {
	Customize(projectRoot string, values descriptor.Values) (descriptor.Report, error)
}

// BuildTool validates the launcher script and runs the debug build.
type BuildTool interface {
	EnsureWrapper(ctx context.Context, projectRoot string) error
	AssembleDebug(ctx context.Context, projectRoot string) (execx.Result, error)
}

// ManifestWriter records scaffold inputs inside the project.
type ManifestWriter interface {
	Write(projectRoot string, m manifest.Manifest) error
}

// Scaffolder executes the four-stage pipeline. Every stage receives the
// project root explicitly; nothing reads the process working directory.
type Scaffolder struct {
	Cloner      Cloner
	Customizer  Customizer
	Builder     BuildTool
	Manifest    ManifestWriter
	Console     *ui.Console
	ToolVersion string
	Now         func() time.Time
}

// Run executes the pipeline for cfg rooted at projectRoot. The first
// failing stage terminates the run; there is no retry or recovery path.
func (s Scaffolder) Run(ctx context.Context, projectRoot string, cfg Config) error {
	if s.Cloner == nil || s.Customizer == nil || s.Builder == nil {
		return fmt.Errorf("scaffolder is not fully configured")
	}
	con := s.Console
	if con == nil {
		con = ui.New(os.Stdout)
	}

	con.Step("Creating project directory: %s", cfg.ProjectName)
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	con.Step("Cloning template repository: %s", cfg.TemplateRepo)
	if err := s.Cloner.Clone(ctx, cfg.TemplateRepo, projectRoot); err != nil {
		return err
	}

	report, err := s.Customizer.Customize(projectRoot, descriptor.Values{
		PackageName: cfg.PackageName,
		MinSDK:      cfg.MinSDK,
		TargetSDK:   cfg.TargetSDK,
	})
	if err != nil {
		return err
	}
	if report.Synthesized {
		con.Warn("build.gradle is missing. Creating default build.gradle.")
	}
	con.Success("Project %s customized with package name %s, minSdk %s, targetSdk %s.",
		cfg.ProjectName, cfg.PackageName, cfg.MinSDK, cfg.TargetSDK)

	if s.Manifest != nil {
		// The manifest is a convenience record, never fatal.
		if err := s.writeManifest(projectRoot, cfg); err != nil {
			con.Warn("Could not write %s: %v", manifest.FileName, err)
		}
	}

	con.Step("Checking permissions for gradlew...")
	if err := s.Builder.EnsureWrapper(ctx, projectRoot); err != nil {
		return err
	}

	con.Step("Compiling project %s using gradlew...", cfg.ProjectName)
	res, err := s.Builder.AssembleDebug(ctx, projectRoot)
	if err != nil {
		con.Error("Gradle error output: %s", res.ErrOutput())
		return err
	}

	con.BuildBar("Building Project")
	con.Success("Build successful!")

	apk := filepath.Join(projectRoot, filepath.FromSlash(meta.ArtifactRelPath))
	if _, err := os.Stat(apk); err == nil {
		con.Success("APK successfully built: %s", apk)
	} else {
		con.Warn("APK not found at %s; the build reported success but no artifact was produced.", apk)
	}
	return nil
}

func (s Scaffolder) writeManifest(projectRoot string, cfg Config) error {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	return s.Manifest.Write(projectRoot, manifest.Manifest{
		Project:      cfg.ProjectName,
		Package:      cfg.PackageName,
		MinSDK:       cfg.MinSDK,
		TargetSDK:    cfg.TargetSDK,
		TemplateRepo: cfg.TemplateRepo,
		ToolVersion:  s.ToolVersion,
		GeneratedAt:  now(),
	})
}
