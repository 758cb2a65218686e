package decode

import (
	"errors"

	burntsushi "github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/NSPC911/human-errors/internal/source"
)

const tomlUpgradeHint = "this TOML failure carries no position; decode with " +
	"github.com/BurntSushi/toml or github.com/pelletier/go-toml/v2 so parse errors carry line and column"

// TOMLDump renders a TOML decode failure against the offending document.
// Errors not produced by a TOML facility are returned unchanged.
func TOMLDump(err error, path string, opts Options) error {
	if len(available(FormatTOML)) == 0 {
		return renderMissingFacility(FormatTOML, err, path, opts)
	}

	f, ok := classifyTOML(err, path)
	if !ok {
		return err
	}
	if !f.located() {
		return renderUnlocated(f, path, tomlUpgradeHint, opts)
	}
	return render(f, path, opts)
}

// classifyTOML recognizes the error shapes of both TOML facilities.
// BurntSushi exposes a line plus a byte offset; go-toml/v2 exposes a full
// row/column pair. Shapes with equal extracted fields render identically.
func classifyTOML(err error, path string) (failure, bool) {
	var parseErr burntsushi.ParseError
	if errors.As(err, &parseErr) {
		f := failure{
			facility: FacilityBurntSushiTOML,
			message:  parseErr.Message,
			line:     parseErr.Position.Line,
		}
		if f.message == "" {
			f.message = parseErr.Error()
		}
		f.column = columnAt(path, parseErr.Position.Start)
		return f, true
	}

	var decodeErr *gotoml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return failure{
			facility: FacilityGoTOMLv2,
			message:  decodeErr.Error(),
			line:     row,
			column:   col,
		}, true
	}

	var strictErr *gotoml.StrictMissingError
	if errors.As(err, &strictErr) {
		// Strict-mode mismatches aggregate several keys; no single location.
		return failure{facility: FacilityGoTOMLv2, message: strictErr.Error()}, true
	}

	return failure{}, false
}

// columnAt derives a 1-based column from a byte offset into the document.
func columnAt(path string, offset int) int {
	doc, err := source.Load(path)
	if err != nil || doc.LineCount() == 0 {
		return 0
	}
	return doc.OffsetPosition(int64(offset)).Col
}
