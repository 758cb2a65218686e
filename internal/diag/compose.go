package diag

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/NSPC911/human-errors/internal/highlight"
	"github.com/NSPC911/human-errors/internal/source"
)

// Glyphs of the frame's left margin.
const (
	glyphOpen   = "╭╴" // error line
	glyphBar    = "│ " // lines at or after the error line
	glyphBlank  = "  " // lines before the error line
	glyphCorner = "╰─"
	glyphArrow  = "─❯"
	glyphCaret  = "↑"
	glyphSep    = " │ "
)

// headerOverhead is the fixed width reserved left of the source content:
// the margin glyph, the gutter separator and the header arrow alignment.
const headerOverhead = 6

// minContentWidth is the floor for the highlighted content width.
const minContentWidth = 40

// render assembles and prints the frame for a validated request. It never
// fails: every row is derived from data the resolver already checked.
func (r *Renderer) render(doc *source.Document, req Request, self bool) {
	lr := r.lipRenderer(req.Color)
	pal := externalPalette(lr)
	if self {
		pal = selfPalette(lr)
	}

	win := computeWindow(req.Line, req.Context, doc.LineCount())
	gutter := win.gutterWidth()

	termWidth := r.terminalWidth()
	contentWidth := termWidth - (gutter + headerOverhead)
	if contentWidth < minContentWidth {
		contentWidth = minContentWidth
	}

	rows := highlight.Window(highlight.Options{
		Path:      doc.Path,
		Content:   string(doc.Content),
		Start:     win.Start,
		End:       win.End,
		ErrorLine: win.ErrorLine,
		MaxWidth:  contentWidth,
		Color:     lr.ColorProfile() != termenv.Ascii,
	})

	r.header(pal, doc, req, gutter)
	r.body(pal, req, win, gutter, rows)
	r.footer(pal, req, gutter)
	if len(req.Extra) > 0 {
		r.annotations(pal, req.Extra, termWidth)
	}
}

// header prints: --> <absolute-path>:<line>[:<column>].
func (r *Renderer) header(pal Palette, doc *source.Document, req Request, gutter int) {
	loc := fmt.Sprintf("%s:%d", doc.Path, req.Line)
	if req.Column > 0 {
		loc = fmt.Sprintf("%s:%d", loc, req.Column)
	}
	fmt.Fprintf(r.Out, "%s  %s %s\n",
		strings.Repeat(" ", gutter), pal.Arrow.Render("-->"), pal.Path.Render(loc))
}

// body prints one row per window line plus the caret row under the error
// line when a column is known.
func (r *Renderer) body(pal Palette, req Request, win Window, gutter int, rows []string) {
	sep := pal.Gutter.Render(glyphSep)
	past := false
	for i, n := 0, win.Start; n <= win.End; i, n = i+1, n+1 {
		content := ""
		if i < len(rows) {
			content = rows[i]
		}
		num := fmt.Sprintf("%*d", gutter, n)

		if n == win.ErrorLine {
			past = true
			fmt.Fprintf(r.Out, "%s%s%s\n", pal.Mark.Render(glyphOpen+num), sep, content)
			if req.Column > 0 {
				caret := strings.Repeat(" ", req.Column-1) + glyphCaret
				fmt.Fprintf(r.Out, "%s%s%s%s\n",
					pal.Mark.Render(glyphBar), strings.Repeat(" ", gutter), sep, pal.Mark.Render(caret))
			}
			continue
		}

		margin := glyphBlank
		if past {
			margin = glyphBar
		}
		fmt.Fprintf(r.Out, "%s%s%s%s\n", pal.Mark.Render(margin), pal.Gutter.Render(num), sep, content)
	}
}

// footer prints the corner, one dash per gutter column, the arrow and the
// cause message.
func (r *Renderer) footer(pal Palette, req Request, gutter int) {
	corner := glyphCorner + strings.Repeat("─", gutter) + glyphArrow
	fmt.Fprintf(r.Out, "%s %s\n", pal.Mark.Render(corner), pal.Mark.Render(req.Cause))
}

// annotationIndent is the column offset of the annotation block.
const annotationIndent = 4

// annotations prints the bordered annotation block, one row per element,
// order preserved, separated by horizontal rules.
func (r *Renderer) annotations(pal Palette, extra []string, termWidth int) {
	width := termWidth - 2*annotationIndent
	if width < minContentWidth {
		width = minContentWidth
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(pal.Border).
		BorderRow(true).
		BorderColumn(false).
		Width(width)
	for _, row := range extra {
		t.Row(row)
	}

	indent := strings.Repeat(" ", annotationIndent)
	for _, line := range strings.Split(t.String(), "\n") {
		fmt.Fprintf(r.Out, "%s%s\n", indent, line)
	}
}
