// Package gutter renders source text with line numbers and highlight
// markers. The gutter is the column to the left of each line.
package gutter

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/codepad/internal/renderer/highlight"
)

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables line number display.
	ShowLineNumbers bool

	// MinLineNumberWidth is the minimum width for line numbers.
	MinLineNumberWidth int

	// Marker is printed before highlighted lines.
	Marker string

	// Separator is printed between the gutter and the text.
	Separator string
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers:    true,
		MinLineNumberWidth: 3,
		Marker:             ">",
		Separator:          " │ ",
	}
}

// LineNumberWidth returns the width needed to display lineCount numbers.
func LineNumberWidth(lineCount, minWidth int) int {
	return max(len(strconv.Itoa(lineCount)), minWidth)
}

// Prefix returns the gutter drawn before line n, padding the line
// number to width.
func Prefix(n int, highlighted bool, width int, cfg Config) string {
	var b strings.Builder
	if highlighted {
		b.WriteString(cfg.Marker)
	} else {
		b.WriteString(strings.Repeat(" ", len(cfg.Marker)))
	}
	if cfg.ShowLineNumbers {
		b.WriteString(PadLeft(strconv.Itoa(n), width))
	}
	b.WriteString(cfg.Separator)
	return b.String()
}

// Render writes text one line at a time, each prefixed by its gutter.
// highlighted holds sorted 1-based line numbers, as returned by
// highlight.ParseRanges.
func Render(w io.Writer, text string, highlighted []int, cfg Config) error {
	lines := strings.Split(text, "\n")
	width := LineNumberWidth(len(lines), cfg.MinLineNumberWidth)

	bw := bufio.NewWriter(w)
	for i, line := range lines {
		n := i + 1
		bw.WriteString(Prefix(n, highlight.Contains(highlighted, n), width, cfg))
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PadLeft pads s with spaces on the left to reach width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
