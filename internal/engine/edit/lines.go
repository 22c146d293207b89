package edit

import "strings"

// LineLocator splits text up to position into lines.
// The number of lines returned minus one is the zero-based line index of
// position, and the last element is the text between the line start and
// position.
type LineLocator func(text string, position int) []string

// LocateLines returns the lines of text[:position].
// LocateLines(text, 0) always returns a single empty line.
func LocateLines(text string, position int) []string {
	position = clampOffset(position, len(text))
	return strings.Split(text[:position], "\n")
}

// LineIndex returns the zero-based line containing position.
func LineIndex(text string, position int) int {
	position = clampOffset(position, len(text))
	return strings.Count(text[:position], "\n")
}

// LineCount returns the number of lines in text. Empty text has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// CurrentIndent returns the leading spaces and tabs of the line containing
// position, up to position.
func CurrentIndent(text string, position int) string {
	line := preCaret(text, position, LocateLines)
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// lineRange returns the first and last line touched by the selection.
func lineRange(s Snapshot, locate LineLocator) (startLine, endLine int) {
	startLine = max(len(locate(s.Value, s.SelectionStart))-1, 0)
	endLine = max(len(locate(s.Value, s.SelectionEnd))-1, startLine)
	return startLine, endLine
}

// preCaret returns the text between the start of the line containing
// position and position itself.
func preCaret(text string, position int, locate LineLocator) string {
	before := locate(text, position)
	if len(before) == 0 {
		return ""
	}
	return before[len(before)-1]
}
