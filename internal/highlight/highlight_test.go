package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func TestPlainWindowSelectsRequestedLines(t *testing.T) {
	content := "one\ntwo\nthree\nfour\nfive\n"

	rows := Window(Options{
		Path:      "doc.txt",
		Content:   content,
		Start:     2,
		End:       4,
		ErrorLine: 3,
		MaxWidth:  80,
	})

	want := []string{"two", "three", "four"}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, row := range rows {
		if row != want[i] {
			t.Errorf("Row %d = %q, want %q", i, row, want[i])
		}
	}
}

func TestPlainWindowTruncatesToMaxWidth(t *testing.T) {
	rows := Window(Options{
		Path:      "doc.txt",
		Content:   "aaaaaaaaaaaaaaaaaaaa",
		Start:     1,
		End:       1,
		ErrorLine: 1,
		MaxWidth:  5,
	})

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0] != "aaaaa" {
		t.Errorf("Expected truncated row %q, got %q", "aaaaa", rows[0])
	}
}

func TestPlainWindowPadsMissingLines(t *testing.T) {
	rows := Window(Options{
		Path:      "doc.txt",
		Content:   "only",
		Start:     1,
		End:       3,
		ErrorLine: 1,
		MaxWidth:  80,
	})

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[1] != "" || rows[2] != "" {
		t.Errorf("Expected empty padding rows, got %q and %q", rows[1], rows[2])
	}
}

func TestColorWindowCoversMultiLineConstructs(t *testing.T) {
	// The string literal spans lines 2-4; tokenizing only the window would
	// mis-highlight line 3, tokenizing the whole document must not.
	content := "key = 1\nvalue = \"\"\"\nspanning\n\"\"\"\nafter = 2\n"

	rows := Window(Options{
		Path:      "doc.toml",
		Content:   content,
		Start:     3,
		End:       3,
		ErrorLine: 3,
		MaxWidth:  80,
		Color:     true,
	})

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if !strings.Contains(rows[0], "spanning") {
		t.Errorf("Expected row to contain source text, got %q", rows[0])
	}
}

func TestColorWindowEmphasizesErrorLine(t *testing.T) {
	content := "a = 1\na = 1\n"

	rows := Window(Options{
		Path:      "doc.toml",
		Content:   content,
		Start:     1,
		End:       2,
		ErrorLine: 2,
		MaxWidth:  80,
		Color:     true,
	})

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0] == rows[1] {
		t.Error("Expected error line styling to differ from context line")
	}
}

func TestSplitTokenLines(t *testing.T) {
	tokens := []chroma.Token{
		{Type: chroma.Text, Value: "a\nbb\n"},
		{Type: chroma.Text, Value: "cc"},
	}

	lines := splitTokenLines(tokens)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if plainTokens(lines[0]) != "a" || plainTokens(lines[1]) != "bb" || plainTokens(lines[2]) != "cc" {
		t.Errorf("Unexpected line split: %q %q %q",
			plainTokens(lines[0]), plainTokens(lines[1]), plainTokens(lines[2]))
	}
}

func TestTruncateTokensByDisplayCells(t *testing.T) {
	tokens := []chroma.Token{
		{Type: chroma.Text, Value: "abc"},
		{Type: chroma.Text, Value: "defg"},
	}

	out := truncateTokens(tokens, 5)
	if plainTokens(out) != "abcde" {
		t.Errorf("Expected %q, got %q", "abcde", plainTokens(out))
	}
}
