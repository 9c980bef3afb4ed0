// Where: internal/meta/meta.go
// What: Tool-local constants.
// Why: Keep template identity, fixed paths, and placeholder values in one place.
package meta

const (
	// Project Identity
	AppName = "androidline"

	// TemplateRepo is the fixed template repository cloned for every new project.
	TemplateRepo = "https://github.com/H4-Corp/android-template-for-al.git"
)

// Fixed project-relative paths (slash-separated, joined per-OS at use sites).
const (
	DescriptorRelPath = "app/build.gradle"
	WrapperRelPath    = "gradlew"
	ArtifactRelPath   = "app/build/outputs/apk/debug/app-debug.apk"
)

// Placeholder values the template descriptor is expected to carry.
// Customization is a literal replacement of these exact strings.
const (
	PlaceholderApplicationID = "com.example.app"
	PlaceholderMinSDK        = "minSdkVersion 21"
	PlaceholderTargetSDK     = "targetSdkVersion 30"
)
