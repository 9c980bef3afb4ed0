// Where: internal/ui/console.go
// What: Styled console output helpers.
// Why: Standardize stage, success, warning, and error reporting.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Console writes styled messages. Styling is dropped when the writer is not
// a terminal so piped output stays clean.
type Console struct {
	Out   io.Writer
	plain bool
}

// New creates a Console writing to the provided writer.
func New(out io.Writer) *Console {
	c := &Console{Out: out, plain: true}
	if f, ok := out.(*os.File); ok {
		c.plain = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return c
}

func (c *Console) printf(style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !c.plain {
		msg = style.Render(msg)
	}
	fmt.Fprintln(c.Out, msg)
}

// Step prints an in-progress stage message.
func (c *Console) Step(format string, args ...any) {
	c.printf(stepStyle, format, args...)
}

// Success prints a success message.
func (c *Console) Success(format string, args ...any) {
	c.printf(successStyle, format, args...)
}

// Warn prints a warning message.
func (c *Console) Warn(format string, args ...any) {
	c.printf(warnStyle, format, args...)
}

// Error prints an error message.
func (c *Console) Error(format string, args ...any) {
	c.printf(errorStyle, format, args...)
}
