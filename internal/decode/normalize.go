package decode

import (
	"fmt"
	"os"
	"strings"

	"github.com/NSPC911/human-errors/internal/diag"
)

// osExit is swapped out by tests that exercise fatal paths.
var osExit = os.Exit

// NormalizedError is the common shape every adapter produces before
// invoking the generic render pipeline.
type NormalizedError struct {
	Message string
	Line    int // 1-based
	Column  int // 1-based; 0 = unknown
}

// failure is the tagged variant behind NormalizedError: one tag per
// facility, each carrying its own optional location fields.
type failure struct {
	facility Facility
	message  string
	line     int // 1-based; 0 = no location
	column   int // 1-based; 0 = no column
}

func (f failure) located() bool {
	return f.line > 0
}

func (f failure) normalized() NormalizedError {
	return NormalizedError{Message: f.message, Line: f.line, Column: f.column}
}

// Options configures a normalizer call.
type Options struct {
	// Context is the window radius.
	Context int
	// Extra holds additional annotation rows appended below the frame.
	Extra []string
	// Color selects the color mode, threaded through to the renderer.
	Color diag.ColorMode
	// ExitNow terminates the process with status 1 after rendering.
	ExitNow bool
	// Renderer overrides the default stdout renderer.
	Renderer *diag.Renderer
}

// NewOptions returns options with the default context radius.
func NewOptions() Options {
	return Options{Context: diag.DefaultContext}
}

func (o Options) renderer() *diag.Renderer {
	if o.Renderer != nil {
		return o.Renderer
	}
	return diag.Default
}

func exitVia(r *diag.Renderer, code int) {
	if r.Exit != nil {
		r.Exit(code)
		return
	}
	osExit(code)
}

// render invokes the generic pipeline for a located failure, then honors
// ExitNow. Returns nil: the failure has been fully handled.
func render(f failure, path string, opts Options) error {
	r := opts.renderer()
	n := f.normalized()
	r.Dump(diag.Request{
		Path:    path,
		Cause:   n.Message,
		Line:    n.Line,
		Column:  n.Column,
		Context: opts.Context,
		Extra:   opts.Extra,
		Color:   opts.Color,
	})
	if opts.ExitNow {
		exitVia(r, 1)
	}
	return nil
}

// renderUnlocated reports a recognized failure that carries no usable
// location: a frame at line 1 with an upgrade recommendation instead of
// fabricated coordinates. Always fatal.
func renderUnlocated(f failure, path, hint string, opts Options) error {
	r := opts.renderer()
	r.Dump(diag.Request{
		Path:    path,
		Cause:   f.message,
		Line:    1,
		Context: opts.Context,
		Extra:   append([]string{hint}, opts.Extra...),
		Color:   opts.Color,
	})
	exitVia(r, 1)
	return nil
}

// renderMissingFacility reports that no decoding facility for the format is
// enabled at all. Always fatal; parsing is never attempted.
func renderMissingFacility(format Format, err error, path string, opts Options) error {
	r := opts.renderer()
	names := make([]string, 0, len(formatFacilities[format]))
	for _, f := range formatFacilities[format] {
		names = append(names, f.String())
	}
	r.Dump(diag.Request{
		Path:    path,
		Cause:   fmt.Sprintf("no %s decoding facility is available", format),
		Line:    1,
		Context: opts.Context,
		Extra: append([]string{
			fmt.Sprintf("Enable one of: %s", strings.Join(names, ", ")),
			fmt.Sprintf("Initial error: %s", err),
		}, opts.Extra...),
		Color: opts.Color,
	})
	exitVia(r, 1)
	return nil
}
