// Where: internal/descriptor/descriptor.go
// What: Build descriptor location, synthesis, and customization.
// Why: Keep all app/build.gradle handling behind one package.
package descriptor

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/H4-Corp/AndroidLine/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	defaultTemplate     *template.Template
	defaultTemplateOnce sync.Once
	defaultTemplateErr  error
)

// Values are the user-supplied fields written into the descriptor.
type Values struct {
	PackageName string
	MinSDK      string
	TargetSDK   string
}

// Report describes what Customize did. The counts record how many
// occurrences of each template placeholder were replaced; all-zero counts
// mean the descriptor did not carry the expected placeholders and was left
// untouched.
type Report struct {
	Synthesized   bool
	ApplicationID int
	MinSDK        int
	TargetSDK     int
}

// Replaced reports whether any placeholder was rewritten.
func (r Report) Replaced() bool {
	return r.ApplicationID+r.MinSDK+r.TargetSDK > 0
}

// Path returns the descriptor location inside projectRoot.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(meta.DescriptorRelPath))
}

// Customizer applies descriptor customization to a project root. It exists
// so command wiring can inject a fake in tests.
type Customizer struct{}

// Customize ensures the descriptor exists (synthesizing a default when the
// template did not ship one) and replaces the known placeholder strings
// with the supplied values. Matching is literal: a descriptor without the
// exact placeholder text is left byte-for-byte unchanged and no error is
// raised.
func (Customizer) Customize(projectRoot string, values Values) (Report, error) {
	var report Report

	path := Path(projectRoot)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Synthesize(projectRoot, values); err != nil {
			return report, err
		}
		report.Synthesized = true
	} else if err != nil {
		return report, fmt.Errorf("stat descriptor: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf("read descriptor: %w", err)
	}

	patched := string(content)
	report.ApplicationID = strings.Count(patched, meta.PlaceholderApplicationID)
	patched = strings.ReplaceAll(patched, meta.PlaceholderApplicationID, values.PackageName)
	report.MinSDK = strings.Count(patched, meta.PlaceholderMinSDK)
	patched = strings.ReplaceAll(patched, meta.PlaceholderMinSDK, "minSdkVersion "+values.MinSDK)
	report.TargetSDK = strings.Count(patched, meta.PlaceholderTargetSDK)
	patched = strings.ReplaceAll(patched, meta.PlaceholderTargetSDK, "targetSdkVersion "+values.TargetSDK)

	if patched == string(content) {
		return report, nil
	}
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return report, fmt.Errorf("write descriptor: %w", err)
	}
	return report, nil
}

// Synthesize writes a default descriptor embedding the supplied values,
// creating the app directory if needed.
func Synthesize(projectRoot string, values Values) error {
	tmpl, err := loadDefaultTemplate()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "build_gradle.tmpl", values); err != nil {
		return fmt.Errorf("render default descriptor: %w", err)
	}

	path := Path(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create app directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write default descriptor: %w", err)
	}
	return nil
}

func loadDefaultTemplate() (*template.Template, error) {
	defaultTemplateOnce.Do(func() {
		defaultTemplate, defaultTemplateErr = template.New("descriptor").
			Funcs(sprig.FuncMap()).
			ParseFS(templateFS, "templates/*.tmpl")
	})
	if defaultTemplateErr != nil {
		return nil, fmt.Errorf("parse descriptor template: %w", defaultTemplateErr)
	}
	return defaultTemplate, nil
}
