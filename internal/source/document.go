package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

type (
	// DocFlags encodes metadata about a loaded document.
	DocFlags uint8
)

const (
	// DocVirtual indicates the document was built from memory (test, stdin).
	DocVirtual DocFlags = 1 << iota
	DocHadBOM
	DocNormalizedCRLF
)

// Document captures the content of a single configuration document together
// with its newline index. Documents are loaded fresh for every diagnostic and
// never cached across calls.
type Document struct {
	Path    string // canonical slash-normalized path
	Content []byte
	LineIdx []uint32
	Flags   DocFlags
}

// LineCol represents a human-readable position in a document.
type LineCol struct {
	Line int // 1-based
	Col  int // 1-based
}

// Load reads a document from disk, normalizes CRLF/BOM and builds the line
// index. The path is resolved to its absolute canonical form.
func Load(path string) (*Document, error) {
	abs, err := AbsolutePath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := DocFlags(0)
	if hadBOM {
		flags |= DocHadBOM
	}
	if hadCRLF {
		flags |= DocNormalizedCRLF
	}
	return &Document{
		Path:    abs,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}, nil
}

// FromBytes builds a virtual document from normalized bytes.
func FromBytes(name string, content []byte) *Document {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return &Document{
		Path:    normalizePath(name),
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   DocVirtual,
	}
}

// LineCount returns the number of lines in the document as an editor counts
// them: a trailing newline does not open a new line, and an empty document
// has zero lines.
func (d *Document) LineCount() int {
	if len(d.Content) == 0 {
		return 0
	}
	if d.Content[len(d.Content)-1] == '\n' {
		return len(d.LineIdx)
	}
	return len(d.LineIdx) + 1
}

// Line returns the line with the given 1-based number, without its trailing
// newline. Out-of-range numbers return the empty string.
func (d *Document) Line(lineNum int) string {
	if lineNum < 1 {
		return ""
	}

	num, err := safecast.Conv[uint32](lineNum)
	if err != nil {
		return ""
	}
	lenLineIdx, err := safecast.Conv[uint32](len(d.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(d.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case num == 1:
		start = 0
	case (num - 2) < lenLineIdx:
		start = d.LineIdx[num-2] + 1
	default:
		return ""
	}

	if (num - 1) < lenLineIdx {
		end = d.LineIdx[num-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(d.Content[start:end])
}

// OffsetPosition converts a byte offset into a 1-based line/column pair.
// Offsets are clamped to the document bounds.
func (d *Document) OffsetPosition(offset int64) LineCol {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(d.Content)) {
		offset = int64(len(d.Content))
	}
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return toLineCol(d.LineIdx, off)
}

// Dir returns the parent directory of the document's canonical path.
func (d *Document) Dir() string {
	return parentDir(d.Path)
}
