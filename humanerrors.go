// Package humanerrors renders compiler-style, location-aware diagnostics for
// configuration-document parse failures: the offending line in context with
// a gutter, a caret and a trailing cause message.
//
// Dump is the generic entry point; JSONDump, TOMLDump and YAMLDump normalize
// the decode failures of their format's facilities before rendering.
package humanerrors

import (
	"github.com/NSPC911/human-errors/internal/decode"
	"github.com/NSPC911/human-errors/internal/diag"
)

// ColorMode controls colorization of a single diagnostic.
type ColorMode = diag.ColorMode

const (
	// ColorAuto detects terminal capabilities from the output stream.
	ColorAuto = diag.ColorAuto
	// ColorOn forces ANSI output.
	ColorOn = diag.ColorOn
	// ColorOff strips all styling and syntax highlighting.
	ColorOff = diag.ColorOff
)

type config struct {
	column  int
	context int
	extra   []string
	color   ColorMode
	exitNow bool
}

// Option adjusts a single diagnostic call.
type Option func(*config)

// WithColumn adds a caret row under the error line at the 1-based column.
func WithColumn(column int) Option {
	return func(c *config) { c.column = column }
}

// WithContext sets the number of context lines shown above and below the
// error line. Default is 2; 0 shows the error line alone.
func WithContext(radius int) Option {
	return func(c *config) { c.context = radius }
}

// WithExtra appends annotation rows, rendered in order inside a bordered
// block below the frame.
func WithExtra(rows ...string) Option {
	return func(c *config) { c.extra = append(c.extra, rows...) }
}

// WithColor selects the color mode for this call.
func WithColor(mode ColorMode) Option {
	return func(c *config) { c.color = mode }
}

// WithExitNow terminates the process with status 1 after the frame is
// rendered. Only honored by the format-specific entry points.
func WithExitNow() Option {
	return func(c *config) { c.exitNow = true }
}

func buildConfig(opts []Option) config {
	c := config{context: diag.DefaultContext}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Dump renders a diagnostic frame for any location in a document. Caller
// misuse (inline-code sentinel paths, unreadable documents, out-of-range
// lines) terminates the process with status 1.
func Dump(path, cause string, line int, opts ...Option) {
	c := buildConfig(opts)
	diag.DumpFrom(diag.Request{
		Path:    path,
		Cause:   cause,
		Line:    line,
		Column:  c.column,
		Context: c.context,
		Extra:   c.extra,
		Color:   c.color,
	}, 1)
}

// JSONDump renders an encoding/json decode failure. Errors not produced by
// a JSON facility are returned unchanged.
func JSONDump(err error, path string, opts ...Option) error {
	return decode.JSONDump(err, path, decodeOptions(opts))
}

// TOMLDump renders a BurntSushi or go-toml/v2 decode failure. Errors not
// produced by a TOML facility are returned unchanged.
func TOMLDump(err error, path string, opts ...Option) error {
	return decode.TOMLDump(err, path, decodeOptions(opts))
}

// YAMLDump renders a yaml.v3 decode failure. Errors not produced by the
// YAML facility are returned unchanged.
func YAMLDump(err error, path string, opts ...Option) error {
	return decode.YAMLDump(err, path, decodeOptions(opts))
}

func decodeOptions(opts []Option) decode.Options {
	c := buildConfig(opts)
	return decode.Options{
		Context: c.context,
		Extra:   c.extra,
		Color:   c.color,
		ExitNow: c.exitNow,
	}
}
