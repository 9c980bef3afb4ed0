// Where: internal/ui/progress.go
// What: Cosmetic build progress bar.
// Why: Mirror the bounded bar the original tooling showed after a build.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

const progressWidth = 40

// BuildBar prints a completed progress bar with a label. The bar is
// cosmetic: it is only rendered after the build subprocess has already
// exited, so it never reflects real build progress.
func (c *Console) BuildBar(label string) {
	if c.plain {
		fmt.Fprintf(c.Out, "%s: 100%%\n", label)
		return
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth))
	fmt.Fprintf(c.Out, "%s %s\n", label, bar.ViewAs(1.0))
}
