// Where: internal/manifest/manifest.go
// What: Scaffold manifest persistence.
// Why: Record inside the project what it was generated from and with.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest location relative to the project root.
const FileName = "androidline.yml"

// Manifest records the inputs a project was scaffolded with.
type Manifest struct {
	Project      string    `yaml:"project"`
	Package      string    `yaml:"package"`
	MinSDK       string    `yaml:"minSdk"`
	TargetSDK    string    `yaml:"targetSdk"`
	TemplateRepo string    `yaml:"templateRepo"`
	ToolVersion  string    `yaml:"toolVersion"`
	GeneratedAt  time.Time `yaml:"generatedAt"`
}

// Writer persists manifests into project roots.
type Writer struct{}

// Write serializes m to <projectRoot>/androidline.yml.
func (Writer) Write(projectRoot string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(projectRoot, FileName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads the manifest back from projectRoot.
func Load(projectRoot string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, FileName))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
