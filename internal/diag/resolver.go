package diag

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/NSPC911/human-errors/internal/source"
)

// ownDir is the directory holding this package's sources, captured once at
// startup. A document that resolves into this directory switches the frame
// to the self-diagnostic palette.
var ownDir = func() string {
	if _, file, _, ok := runtime.Caller(0); ok {
		return filepath.ToSlash(filepath.Dir(file))
	}
	return ""
}()

// callerSkip is the number of frames between callerLocation and the code
// that invoked one of the exported Dump entry points.
const callerSkip = 3

// callerLocation returns the source location of the frame skip levels above
// callerLocation itself.
func callerLocation(skip int) (string, int) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return file, line
	}
	return "", 0
}

// dump is the single validating entry point behind Dump.
func (r *Renderer) dump(req Request, skip int) {
	if req.Path == "<string>" || req.Path == "<stdin>" {
		r.fatalInline(req)
		return
	}

	// Captured before any IO so fatal paths can point at the call site.
	callFile, callLine := callerLocation(skip)

	doc, err := source.Load(req.Path)
	if err != nil || doc.LineCount() == 0 {
		r.fatalUnreadable(req)
		return
	}

	if req.Line < 1 {
		r.selfReport(req, callFile, callLine,
			fmt.Sprintf("line_number must be larger than or equal to 1. (%d < 1)", req.Line))
		return
	}
	if req.Line > doc.LineCount() {
		r.selfReport(req, callFile, callLine,
			fmt.Sprintf("line_number must not exceed the number of lines in the document. (%d > %d)", req.Line, doc.LineCount()))
		return
	}

	r.render(doc, req, doc.Dir() == ownDir)
}

// fatalInline rejects the in-memory sentinels: there is no document to
// frame, so the initial cause is echoed and the process terminates.
func (r *Renderer) fatalInline(req Request) {
	pal := externalPalette(r.lipRenderer(req.Color))
	fmt.Fprintln(r.Out, pal.Mark.Render("Cannot point an exception stemming from in-memory input (no document to display)."))
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, pal.Mark.Render(fmt.Sprintf("Initial error:\n  %s", req.Cause)))
	r.exit(1)
}

// fatalUnreadable reports a document that could not be read or is empty.
func (r *Renderer) fatalUnreadable(req Request) {
	pal := externalPalette(r.lipRenderer(req.Color))
	fmt.Fprintln(r.Out, pal.Mark.Render("Error: Could not read file."))
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, pal.Mark.Render(fmt.Sprintf("Initial error:\n\t%s", req.Cause)))
	r.exit(1)
}

// selfReport renders a caller-misuse diagnostic against the caller's own
// source location and terminates with status 1.
//
// The request is built here, not through dump: the line is clamped to the
// caller file's bounds, so the self-report can never fail validation and
// recurse.
func (r *Renderer) selfReport(orig Request, callFile string, callLine int, cause string) {
	doc, err := source.Load(callFile)
	if err != nil || doc.LineCount() == 0 {
		// Caller sources are not on disk (stripped binary). Degrade to the
		// unreadable-file message, keeping the real cause visible.
		r.fatalUnreadable(Request{Cause: cause, Color: orig.Color})
		return
	}

	line := callLine
	if line < 1 {
		line = 1
	}
	if line > doc.LineCount() {
		line = doc.LineCount()
	}

	r.render(doc, Request{
		Path:    doc.Path,
		Cause:   cause,
		Line:    line,
		Context: DefaultContext,
		Color:   orig.Color,
	}, true)
	r.exit(1)
}
