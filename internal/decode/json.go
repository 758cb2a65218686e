package decode

import (
	"encoding/json"
	"errors"

	"github.com/NSPC911/human-errors/internal/source"
)

const jsonUpgradeHint = "encoding/json attached no byte offset to this failure; " +
	"upgrade to a JSON facility that reports offsets to better display the exception"

// JSONDump renders a JSON decode failure against the offending document.
// Errors not produced by the JSON facility are returned unchanged.
func JSONDump(err error, path string, opts Options) error {
	if len(available(FormatJSON)) == 0 {
		return renderMissingFacility(FormatJSON, err, path, opts)
	}

	f, ok := classifyJSON(err, path)
	if !ok {
		return err
	}
	if !f.located() {
		return renderUnlocated(f, path, jsonUpgradeHint, opts)
	}
	return render(f, path, opts)
}

// classifyJSON recognizes the error shapes of encoding/json. Both carry a
// byte offset, converted to line/column against a fresh read of the
// document.
func classifyJSON(err error, path string) (failure, bool) {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		f := failure{facility: FacilityEncodingJSON, message: syntax.Error()}
		f.line, f.column = offsetPosition(path, syntax.Offset)
		return f, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		f := failure{facility: FacilityEncodingJSON, message: typeErr.Error()}
		f.line, f.column = offsetPosition(path, typeErr.Offset)
		return f, true
	}

	return failure{}, false
}

// offsetPosition converts a 1-past byte offset into 1-based line/column.
// An unreadable document yields no location; the generic pipeline reports
// the unreadable file itself.
func offsetPosition(path string, offset int64) (int, int) {
	doc, err := source.Load(path)
	if err != nil || doc.LineCount() == 0 {
		return 0, 0
	}
	pos := doc.OffsetPosition(offset - 1)
	// An offset landing after the trailing newline belongs to the last line.
	if pos.Line > doc.LineCount() {
		pos.Line = doc.LineCount()
		pos.Col = len(doc.Line(pos.Line)) + 1
	}
	return pos.Line, pos.Col
}
