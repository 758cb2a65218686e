package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	raw := []byte{0xEF, 0xBB, 0xBF}
	raw = append(raw, []byte("key = 1\r\nother = 2\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if doc.Flags&DocHadBOM == 0 {
		t.Error("Expected DocHadBOM flag to be set")
	}
	if doc.Flags&DocNormalizedCRLF == 0 {
		t.Error("Expected DocNormalizedCRLF flag to be set")
	}
	if got := string(doc.Content); got != "key = 1\nother = 2\n" {
		t.Errorf("Expected normalized content, got %q", got)
	}
	if doc.LineCount() != 2 {
		t.Errorf("Expected 2 lines, got %d", doc.LineCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLineCount(t *testing.T) {
	cases := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"\n\n\n", 3},
	}
	for _, tc := range cases {
		doc := FromBytes("mem.txt", []byte(tc.content))
		if got := doc.LineCount(); got != tc.want {
			t.Errorf("LineCount(%q) = %d, want %d", tc.content, got, tc.want)
		}
	}
}

func TestLine(t *testing.T) {
	doc := FromBytes("mem.yaml", []byte("first: 1\nsecond: 2\nthird: 3"))

	if got := doc.Line(1); got != "first: 1" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := doc.Line(2); got != "second: 2" {
		t.Errorf("Line(2) = %q", got)
	}
	if got := doc.Line(3); got != "third: 3" {
		t.Errorf("Line(3) = %q", got)
	}
	if got := doc.Line(4); got != "" {
		t.Errorf("Line(4) = %q, want empty", got)
	}
	if got := doc.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
}

func TestOffsetPosition(t *testing.T) {
	doc := FromBytes("mem.json", []byte("ab\ncd\nef"))

	cases := []struct {
		off  int64
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline ends line 1
		{3, LineCol{Line: 2, Col: 1}},
		{5, LineCol{Line: 2, Col: 3}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tc := range cases {
		if got := doc.OffsetPosition(tc.off); got != tc.want {
			t.Errorf("OffsetPosition(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}

	// Clamped on both ends.
	if got := doc.OffsetPosition(-4); got != (LineCol{Line: 1, Col: 1}) {
		t.Errorf("OffsetPosition(-4) = %+v", got)
	}
	if got := doc.OffsetPosition(100); got != (LineCol{Line: 3, Col: 3}) {
		t.Errorf("OffsetPosition(100) = %+v", got)
	}
}

func TestOffsetPositionSingleLine(t *testing.T) {
	doc := FromBytes("mem.json", []byte("abc"))
	if got := doc.OffsetPosition(2); got != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("OffsetPosition(2) = %+v", got)
	}
}

func TestAbsolutePathIsSlashNormalized(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "sub", "..", "doc.yaml")
	if err := os.MkdirAll(filepath.Join(tmp, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	got, err := AbsolutePath(path)
	if err != nil {
		t.Fatalf("AbsolutePath returned error: %v", err)
	}
	if !filepath.IsAbs(filepath.FromSlash(got)) {
		t.Errorf("Expected absolute path, got %q", got)
	}
}
