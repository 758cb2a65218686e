package diag

// DefaultContext is the number of context lines shown above and below the
// error line when the caller does not choose a radius.
const DefaultContext = 2

// ColorMode controls how a diagnostic is colorized. It is an explicit field
// on every request; there is no ambient style state.
type ColorMode uint8

const (
	// ColorAuto detects terminal capabilities from the output stream.
	ColorAuto ColorMode = iota
	// ColorOn forces ANSI output even for non-terminal streams.
	ColorOn
	// ColorOff strips all styling and syntax highlighting.
	ColorOff
)

// Request describes a single diagnostic to render. Requests are ephemeral:
// built per call, rendered, discarded.
type Request struct {
	// Path is the document identifier. The inline-code sentinels "<string>"
	// and "<stdin>" are rejected with a dedicated fatal message.
	Path string
	// Cause is the trailing message printed after the frame's footer arrow.
	Cause string
	// Line is the 1-based error line. It must lie within the document.
	Line int
	// Column is the 1-based error column; 0 means no column is known and
	// suppresses the caret row.
	Column int
	// Context is the window radius. Negative values are treated as zero.
	Context int
	// Extra holds optional annotation rows, rendered in order inside a
	// bordered block below the footer. One element, one row.
	Extra []string
	// Color selects the color mode for this request.
	Color ColorMode
}

// NewRequest returns a request with the default context radius.
func NewRequest(path, cause string, line int) Request {
	return Request{
		Path:    path,
		Cause:   cause,
		Line:    line,
		Context: DefaultContext,
	}
}
