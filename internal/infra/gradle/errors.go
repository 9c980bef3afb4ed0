// Where: internal/infra/gradle/errors.go
// What: Shared error definitions for gradle infra.
// Why: Ensure consistent error wrapping without dynamic error creation.
package gradle

import "errors"

var (
	errCommandRunnerNil = errors.New("command runner is nil")
	errWrapperMissing   = errors.New("gradlew not found after wrapper generation")
)
