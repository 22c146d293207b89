package edit

import (
	"strings"
	"unicode/utf8"
)

// Caret motions. Each returns a caret; a selection collapses toward the
// direction of travel. Columns are byte columns snapped back to a rune
// boundary.

// MoveLeft moves a caret back one rune.
func MoveLeft(s Snapshot) Snapshot {
	s = s.Clamp()
	if !s.IsCaret() || s.SelectionStart == 0 {
		return NewCaret(s.Value, s.SelectionStart)
	}
	_, size := utf8.DecodeLastRuneInString(s.Value[:s.SelectionStart])
	return NewCaret(s.Value, s.SelectionStart-size)
}

// MoveRight moves a caret forward one rune.
func MoveRight(s Snapshot) Snapshot {
	s = s.Clamp()
	if !s.IsCaret() || s.SelectionEnd == len(s.Value) {
		return NewCaret(s.Value, s.SelectionEnd)
	}
	_, size := utf8.DecodeRuneInString(s.Value[s.SelectionEnd:])
	return NewCaret(s.Value, s.SelectionEnd+size)
}

// MoveUp moves to the same column on the previous line, or to offset 0
// from the first line.
func MoveUp(s Snapshot) Snapshot {
	s = s.Clamp()
	v, pos := s.Value, s.SelectionStart
	lineStart := strings.LastIndexByte(v[:pos], '\n') + 1
	if lineStart == 0 {
		return NewCaret(v, 0)
	}
	col := pos - lineStart
	prevStart := strings.LastIndexByte(v[:lineStart-1], '\n') + 1
	prevLen := lineStart - 1 - prevStart
	return NewCaret(v, runeFloor(v, prevStart+min(col, prevLen)))
}

// MoveDown moves to the same column on the next line, or to the end of
// the text from the last line.
func MoveDown(s Snapshot) Snapshot {
	s = s.Clamp()
	v, pos := s.Value, s.SelectionEnd
	nl := strings.IndexByte(v[pos:], '\n')
	if nl < 0 {
		return NewCaret(v, len(v))
	}
	col := pos - (strings.LastIndexByte(v[:pos], '\n') + 1)
	nextStart := pos + nl + 1
	nextLen := strings.IndexByte(v[nextStart:], '\n')
	if nextLen < 0 {
		nextLen = len(v) - nextStart
	}
	return NewCaret(v, runeFloor(v, nextStart+min(col, nextLen)))
}

// LineStart moves to the start of the line holding the selection start.
func LineStart(s Snapshot) Snapshot {
	s = s.Clamp()
	return NewCaret(s.Value, strings.LastIndexByte(s.Value[:s.SelectionStart], '\n')+1)
}

// LineEnd moves to the end of the line holding the selection end.
func LineEnd(s Snapshot) Snapshot {
	s = s.Clamp()
	nl := strings.IndexByte(s.Value[s.SelectionEnd:], '\n')
	if nl < 0 {
		return NewCaret(s.Value, len(s.Value))
	}
	return NewCaret(s.Value, s.SelectionEnd+nl)
}

func runeFloor(v string, pos int) int {
	for pos > 0 && pos < len(v) && !utf8.RuneStart(v[pos]) {
		pos--
	}
	return pos
}
