package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/repodeps/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Report Styles
// =============================================================================

// reportStyles returns the label styles for a report written to w. Output
// that is not a terminal, or a terminal without color support, stays plain.
func reportStyles(w io.Writer) pipeline.Styles {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		return pipeline.Styles{}
	}

	repo := r.NewStyle().Bold(true).Foreground(colorCyan)
	label := r.NewStyle().Foreground(colorGray)
	notice := r.NewStyle().Foreground(colorYellow)
	failure := r.NewStyle().Foreground(colorRed)

	return pipeline.Styles{
		Repository: func(s string) string { return repo.Render(s) },
		Label:      func(s string) string { return label.Render(s) },
		Notice:     func(s string) string { return notice.Render(s) },
		Failure:    func(s string) string { return failure.Render(s) },
	}
}

// =============================================================================
// Status Output
// =============================================================================

// ui prints styled status output to a writer.
type ui struct {
	w       io.Writer
	titleSt lipgloss.Style
	keySt   lipgloss.Style
	valueSt lipgloss.Style
	dimSt   lipgloss.Style
}

func newUI(w io.Writer) *ui {
	r := lipgloss.NewRenderer(w)
	return &ui{
		w:       w,
		titleSt: r.NewStyle().Bold(true).Foreground(colorCyan),
		keySt:   r.NewStyle().Foreground(colorGray).Width(12),
		valueSt: r.NewStyle().Foreground(colorWhite),
		dimSt:   r.NewStyle().Foreground(colorDim),
	}
}

// title prints a heading.
func (u *ui) title(s string) {
	fmt.Fprintln(u.w, u.titleSt.Render(s))
}

// keyValue prints a labeled value.
func (u *ui) keyValue(key, value string) {
	fmt.Fprintln(u.w, u.keySt.Render(key)+" "+u.valueSt.Render(value))
}

// detail prints a detail line (indented).
func (u *ui) detail(s string) {
	fmt.Fprintln(u.w, "  "+u.dimSt.Render(s))
}

// newline prints an empty line.
func (u *ui) newline() {
	fmt.Fprintln(u.w)
}
