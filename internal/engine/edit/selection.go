package edit

import (
	"strings"
	"unicode"
)

// IncreaseSelectionTab prepends tab to every line touched by the selection.
//
// The selection start moves past the inserted token only when its line
// contains non-whitespace text; the selection end moves by one token per
// affected line. If the text is unchanged the input is returned.
func IncreaseSelectionTab(s Snapshot, tab string, locate LineLocator) Snapshot {
	s = s.Clamp()
	if locate == nil {
		locate = LocateLines
	}
	startLine, endLine := lineRange(s, locate)

	lines := strings.Split(s.Value, "\n")
	lineText := ""
	if startLine < len(lines) {
		lineText = lines[startLine]
	}
	for i := startLine; i <= endLine && i < len(lines); i++ {
		lines[i] = tab + lines[i]
	}
	value := strings.Join(lines, "\n")
	if value == s.Value {
		return s
	}

	start := s.SelectionStart
	if hasText(lineText) {
		start += len(tab)
	}
	end := s.SelectionEnd + len(tab)*(endLine-startLine+1)

	return Snapshot{Value: value, SelectionStart: start, SelectionEnd: end}
}

// DecreaseSelectionTab strips one leading tab from every line touched by
// the selection that starts with it. Other lines are left alone.
//
// The selection start moves back one token when its line starts with tab;
// the selection end moves back by the total number of bytes removed.
func DecreaseSelectionTab(s Snapshot, tab string, locate LineLocator) Snapshot {
	s = s.Clamp()
	if tab == "" {
		return s
	}
	if locate == nil {
		locate = LocateLines
	}
	startLine, endLine := lineRange(s, locate)
	startText := preCaret(s.Value, s.SelectionStart, locate)

	lines := strings.Split(s.Value, "\n")
	for i := startLine; i <= endLine && i < len(lines); i++ {
		lines[i] = strings.TrimPrefix(lines[i], tab)
	}
	value := strings.Join(lines, "\n")
	if value == s.Value {
		return s
	}

	start := s.SelectionStart
	if strings.HasPrefix(startText, tab) {
		start = max(start-len(tab), 0)
	}
	end := s.SelectionEnd - (len(s.Value) - len(value))
	// A selection ending inside a stripped token can land before the start.
	if end < start {
		end = start
	}

	return Snapshot{Value: value, SelectionStart: start, SelectionEnd: end}
}

func hasText(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}
