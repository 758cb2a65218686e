package diag

// Window is the inclusive line range selected for display around the error
// line. Invariant: Start <= ErrorLine <= End for every validated request.
type Window struct {
	Start     int
	End       int
	ErrorLine int
}

// computeWindow clamps [line-radius, line+radius] to the document bounds.
// line must already be validated against totalLines.
func computeWindow(line, radius, totalLines int) Window {
	if radius < 0 {
		radius = 0
	}
	start := line - radius
	if start < 1 {
		start = 1
	}
	end := line + radius
	if end > totalLines {
		end = totalLines
	}
	return Window{Start: start, End: end, ErrorLine: line}
}

// gutterWidth returns the digit count of the window's last line number.
// Every gutter in a frame uses this width.
func (w Window) gutterWidth() int {
	width := 1
	for n := w.End; n >= 10; n /= 10 {
		width++
	}
	return width
}
