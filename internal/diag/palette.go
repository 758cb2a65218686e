package diag

import "github.com/charmbracelet/lipgloss"

// Palette holds the styles used by a single frame. Exactly two palettes
// exist: external for user-content errors and self-diagnostic for the
// renderer's own misuse. The choice never affects geometry or control flow.
type Palette struct {
	// Mark paints the error glyphs: open margin, continuation bars, caret,
	// footer corner, error line number and cause text.
	Mark lipgloss.Style
	// Gutter paints the context line numbers and the column separators.
	Gutter lipgloss.Style
	// Arrow paints the header arrow.
	Arrow lipgloss.Style
	// Path paints the header location.
	Path lipgloss.Style
	// Border paints the annotation block border.
	Border lipgloss.Style
}

const (
	colorBrightRed     = lipgloss.Color("9")
	colorBrightBlue    = lipgloss.Color("12")
	colorBrightMagenta = lipgloss.Color("13")
	colorBrightYellow  = lipgloss.Color("11")
	colorWhite         = lipgloss.Color("15")
)

// externalPalette is used when the diagnostic points at user content:
// red marks, blue gutter and separators, red annotation border.
func externalPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Mark:   r.NewStyle().Foreground(colorBrightRed),
		Gutter: r.NewStyle().Foreground(colorBrightBlue),
		Arrow:  r.NewStyle().Foreground(colorBrightBlue),
		Path:   r.NewStyle().Foreground(colorWhite),
		Border: r.NewStyle().Foreground(colorBrightRed),
	}
}

// selfPalette is used when the diagnostic reports the renderer's own misuse:
// magenta marks, blue gutter and separators, yellow annotation border.
func selfPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Mark:   r.NewStyle().Foreground(colorBrightMagenta),
		Gutter: r.NewStyle().Foreground(colorBrightBlue),
		Arrow:  r.NewStyle().Foreground(colorBrightBlue),
		Path:   r.NewStyle().Foreground(colorWhite),
		Border: r.NewStyle().Foreground(colorBrightYellow),
	}
}
