package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// osExit is swapped out by tests that exercise fatal paths.
var osExit = os.Exit

// Renderer writes diagnostic frames to a single output stream. The zero
// value is not usable; construct with New. Rendering is synchronous and
// stateless: every Dump re-reads its target document.
type Renderer struct {
	// Out receives the rendered rows. Defaults to os.Stdout via Default.
	Out io.Writer
	// Exit replaces os.Exit on fatal paths when non-nil.
	Exit func(code int)
	// Width replaces terminal width detection when non-nil.
	Width func() int
}

// New returns a renderer bound to out.
func New(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

// Default renders to standard output, as the generic entry points do.
var Default = New(os.Stdout)

// Dump renders a diagnostic frame through the default renderer.
func Dump(req Request) {
	Default.dump(req, callerSkip)
}

// DumpFrom renders like Dump but attributes caller misuse to a frame
// extraSkip levels above the immediate caller. Wrappers around Dump pass
// their own depth so self-reports point at the real call site.
func DumpFrom(req Request, extraSkip int) {
	Default.dump(req, callerSkip+extraSkip)
}

// Dump resolves, validates and renders req. Caller misuse terminates the
// process with status 1; a successfully rendered frame returns control.
func (r *Renderer) Dump(req Request) {
	r.dump(req, callerSkip)
}

func (r *Renderer) exit(code int) {
	if r.Exit != nil {
		r.Exit(code)
		return
	}
	osExit(code)
}

// terminalWidth reports the width of the output terminal, falling back to 80
// columns for non-terminal streams.
func (r *Renderer) terminalWidth() int {
	if r.Width != nil {
		return r.Width()
	}
	if f, ok := r.Out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// lipRenderer builds a lipgloss renderer for the requested color mode.
// ColorAuto keeps the profile detected from the output stream.
func (r *Renderer) lipRenderer(mode ColorMode) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(r.Out)
	switch mode {
	case ColorOn:
		lr.SetColorProfile(termenv.ANSI256)
	case ColorOff:
		lr.SetColorProfile(termenv.Ascii)
	}
	return lr
}
