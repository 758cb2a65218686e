package humanerrors

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NSPC911/human-errors/internal/diag"
)

func swapDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := diag.Default
	t.Cleanup(func() { diag.Default = orig })

	r := diag.New(&buf)
	r.Width = func() int { return 80 }
	r.Exit = func(int) {}
	diag.Default = r
	return &buf
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestBuildConfigDefaults(t *testing.T) {
	c := buildConfig(nil)
	if c.context != diag.DefaultContext {
		t.Errorf("context = %d, want %d", c.context, diag.DefaultContext)
	}
	if c.column != 0 || c.exitNow || len(c.extra) != 0 {
		t.Errorf("unexpected non-zero defaults: %+v", c)
	}
}

func TestDumpRendersFrame(t *testing.T) {
	buf := swapDefault(t)
	path := writeFixture(t, "doc.txt", "one\ntwo\nthree\nfour\nfive\n")

	Dump(path, "kaboom", 3,
		WithColumn(2),
		WithContext(1),
		WithColor(ColorOff),
		WithExtra("a note"))

	out := buf.String()
	if !strings.Contains(out, "╭╴3 │ three") {
		t.Errorf("Expected error row in output:\n%s", out)
	}
	if !strings.Contains(out, " ↑") {
		t.Errorf("Expected caret row in output:\n%s", out)
	}
	if !strings.Contains(out, "kaboom") {
		t.Errorf("Expected cause in output:\n%s", out)
	}
	if !strings.Contains(out, "a note") {
		t.Errorf("Expected annotation in output:\n%s", out)
	}
}

func TestDumpMisuseReportsCallSite(t *testing.T) {
	buf := swapDefault(t)
	path := writeFixture(t, "doc.txt", "one\ntwo\n")

	Dump(path, "boom", 99, WithColor(ColorOff))

	out := buf.String()
	if !strings.Contains(out, "line_number must not exceed the number of lines in the document. (99 > 2)") {
		t.Errorf("Expected bound violation message:\n%s", out)
	}
	if !strings.Contains(out, "humanerrors_test.go") {
		t.Errorf("Expected the frame to point at this test file:\n%s", out)
	}
}

func TestJSONDumpRendersDecodeFailure(t *testing.T) {
	buf := swapDefault(t)
	path := writeFixture(t, "doc.json", "[1,]\n")

	var v any
	decodeErr := json.Unmarshal([]byte("[1,]"), &v)
	if decodeErr == nil {
		t.Fatal("Expected a syntax error")
	}

	if err := JSONDump(decodeErr, path, WithColor(ColorOff)); err != nil {
		t.Fatalf("JSONDump returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "╭╴1 │ [1,]") {
		t.Errorf("Expected highlighted error line:\n%s", out)
	}
	if !strings.Contains(out, "↑") {
		t.Errorf("Expected caret from the decoded column:\n%s", out)
	}
}
