// Package highlight adapts the chroma terminal highlighter to the diagnostic
// frame: the whole document is tokenized so multi-line constructs keep their
// styling, but only the requested window of rows is returned.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
)

// Options selects the document, the line window and the target geometry.
type Options struct {
	// Path is used only as a language hint; unrecognized names fall back to
	// plain text.
	Path string
	// Content is the entire document, not just the window.
	Content string
	// Start and End delimit the window, 1-based inclusive.
	Start int
	// End is the last window line.
	End int
	// ErrorLine receives distinct emphasis, independent of context lines.
	ErrorLine int
	// MaxWidth truncates rows by display cells; rows are never wrapped.
	MaxWidth int
	// Color false returns plain rows with identical geometry.
	Color bool
}

const styleName = "native"

// Window returns one styled row per line in [Start, End].
func Window(opts Options) []string {
	if opts.End < opts.Start {
		return nil
	}
	if !opts.Color {
		return plainWindow(opts)
	}

	lexer := lexers.Match(filepath.Base(opts.Path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, opts.Content)
	if err != nil {
		return plainWindow(opts)
	}
	lines := splitTokenLines(iterator.Tokens())

	base := styles.Get(styleName)
	emphasis, err := base.Builder().Add(chroma.Background, "bg:#3a3a3a").Build()
	if err != nil {
		emphasis = base
	}
	formatter := formatters.Get("terminal256")

	rows := make([]string, 0, opts.End-opts.Start+1)
	for n := opts.Start; n <= opts.End; n++ {
		var tokens []chroma.Token
		if n-1 < len(lines) {
			tokens = truncateTokens(lines[n-1], opts.MaxWidth)
		}
		style := base
		if n == opts.ErrorLine {
			style = emphasis
		}

		var buf strings.Builder
		if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
			rows = append(rows, plainTokens(tokens))
			continue
		}
		rows = append(rows, strings.TrimSuffix(buf.String(), "\n"))
	}
	return rows
}

func plainWindow(opts Options) []string {
	lines := strings.Split(opts.Content, "\n")
	rows := make([]string, 0, opts.End-opts.Start+1)
	for n := opts.Start; n <= opts.End; n++ {
		line := ""
		if n-1 < len(lines) {
			line = runewidth.Truncate(lines[n-1], opts.MaxWidth, "")
		}
		rows = append(rows, line)
	}
	return rows
}

// splitTokenLines distributes tokens over lines, splitting token values that
// span newlines so each row can be formatted independently.
func splitTokenLines(tokens []chroma.Token) [][]chroma.Token {
	lines := make([][]chroma.Token, 1)
	for _, tok := range tokens {
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			cur := len(lines) - 1
			lines[cur] = append(lines[cur], chroma.Token{Type: tok.Type, Value: part})
		}
	}
	return lines
}

// truncateTokens cuts a row of tokens to maxWidth display cells.
func truncateTokens(tokens []chroma.Token, maxWidth int) []chroma.Token {
	out := make([]chroma.Token, 0, len(tokens))
	remaining := maxWidth
	for _, tok := range tokens {
		w := runewidth.StringWidth(tok.Value)
		if w <= remaining {
			out = append(out, tok)
			remaining -= w
			continue
		}
		if remaining > 0 {
			out = append(out, chroma.Token{Type: tok.Type, Value: runewidth.Truncate(tok.Value, remaining, "")})
		}
		break
	}
	return out
}

func plainTokens(tokens []chroma.Token) string {
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Value)
	}
	return buf.String()
}
