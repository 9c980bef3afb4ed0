// Where: internal/descriptor/descriptor_test.go
// What: Tests for descriptor synthesis and customization.
// Why: Pin the literal-substitution contract, including the silent no-op.
package descriptor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const templateDescriptor = `apply plugin: 'com.android.application'

android {
    compileSdkVersion 30
    defaultConfig {
        applicationId "com.example.app"
        minSdkVersion 21
        targetSdkVersion 30
        versionCode 1
        versionName "1.0"
    }
}
`

var testValues = Values{PackageName: "com.test.app", MinSDK: "23", TargetSDK: "33"}

func writeDescriptor(t *testing.T, projectRoot, content string) {
	t.Helper()
	path := Path(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
}

func TestCustomizeReplacesPlaceholders(t *testing.T) {
	projectRoot := t.TempDir()
	writeDescriptor(t, projectRoot, templateDescriptor)

	report, err := Customizer{}.Customize(projectRoot, testValues)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Synthesized {
		t.Fatal("descriptor was present, must not be synthesized")
	}
	if !report.Replaced() {
		t.Fatal("expected replacements to be reported")
	}

	content, err := os.ReadFile(Path(projectRoot))
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	got := string(content)
	for _, placeholder := range []string{"com.example.app", "minSdkVersion 21", "targetSdkVersion 30"} {
		if strings.Contains(got, placeholder) {
			t.Fatalf("placeholder %q still present:\n%s", placeholder, got)
		}
	}
	for _, want := range []string{`applicationId "com.test.app"`, "minSdkVersion 23", "targetSdkVersion 33"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in descriptor:\n%s", want, got)
		}
	}
}

func TestCustomizeWithoutPlaceholdersIsNoOp(t *testing.T) {
	projectRoot := t.TempDir()
	customized := `apply plugin: 'com.android.application'

android {
    defaultConfig {
        applicationId "org.already.set"
        minSdkVersion 26
        targetSdkVersion 34
    }
}
`
	writeDescriptor(t, projectRoot, customized)

	report, err := Customizer{}.Customize(projectRoot, testValues)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Replaced() {
		t.Fatalf("expected no replacements, got %+v", report)
	}

	content, err := os.ReadFile(Path(projectRoot))
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	if string(content) != customized {
		t.Fatal("descriptor without placeholders must stay byte-for-byte unchanged")
	}
}

func TestCustomizeSynthesizesMissingDescriptor(t *testing.T) {
	projectRoot := t.TempDir()

	report, err := Customizer{}.Customize(projectRoot, testValues)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Synthesized {
		t.Fatal("expected synthesis for missing descriptor")
	}

	content, err := os.ReadFile(Path(projectRoot))
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	got := string(content)
	for _, want := range []string{`applicationId "com.test.app"`, "minSdkVersion 23", "targetSdkVersion 33", "compileSdkVersion 30", `versionName "1.0"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in synthesized descriptor:\n%s", want, got)
		}
	}
}

func TestSynthesizeTrimsValues(t *testing.T) {
	projectRoot := t.TempDir()

	if err := Synthesize(projectRoot, Values{PackageName: " com.pad.app ", MinSDK: " 24", TargetSDK: "34 "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := os.ReadFile(Path(projectRoot))
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	got := string(content)
	if !strings.Contains(got, `applicationId "com.pad.app"`) {
		t.Fatalf("expected trimmed package in descriptor:\n%s", got)
	}
	if !strings.Contains(got, "minSdkVersion 24") || !strings.Contains(got, "targetSdkVersion 34") {
		t.Fatalf("expected trimmed versions in descriptor:\n%s", got)
	}
}

func TestPathLayout(t *testing.T) {
	got := Path("MyApp")
	want := filepath.Join("MyApp", "app", "build.gradle")
	if got != want {
		t.Fatalf("unexpected descriptor path: %s", got)
	}
}
