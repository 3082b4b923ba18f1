package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/hueforge/internal/accessibility"
	"github.com/jmylchreest/hueforge/internal/colour"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// previewWidth is the width in cells of every colour swatch.
const previewWidth = 9

var gradeColours = map[accessibility.Grade]lipgloss.Color{
	accessibility.GradeExcellent: lipgloss.Color("#22c55e"),
	accessibility.GradeGood:      lipgloss.Color("#84cc16"),
	accessibility.GradePoor:      lipgloss.Color("#f59e0b"),
	accessibility.GradeFail:      lipgloss.Color("#ef4444"),
}

// theme styles CLI output. A plain theme renders text unchanged.
type theme struct {
	plain    bool
	renderer *lipgloss.Renderer
}

func newTheme(w io.Writer, plain bool) *theme {
	return &theme{
		plain:    plain,
		renderer: lipgloss.NewRenderer(w),
	}
}

// heading renders a section title.
func (t *theme) heading(s string) string {
	if t.plain {
		return s
	}
	return t.renderer.NewStyle().Bold(true).Underline(true).Render(s)
}

// grade renders a grade name in its signal colour.
func (t *theme) grade(g accessibility.Grade) string {
	if t.plain {
		return g.String()
	}
	return t.renderer.NewStyle().Bold(true).Foreground(gradeColours[g]).Render(g.String())
}

// check renders a pass/fail mark.
func (t *theme) check(ok bool) string {
	mark, c := "yes", gradeColours[accessibility.GradeExcellent]
	if !ok {
		mark, c = "no", gradeColours[accessibility.GradeFail]
	}
	if t.plain {
		return mark
	}
	return t.renderer.NewStyle().Foreground(c).Render(mark)
}

// swatch renders a colour as a labelled block, or its hex code when plain.
func (t *theme) swatch(c colour.Color) string {
	if t.plain {
		return c.Hex
	}
	return colour.PreviewWithText(c, strings.ToUpper(c.Hex), previewWidth)
}
