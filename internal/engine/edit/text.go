package edit

import "unicode/utf8"

// InsertText replaces the selection with text and leaves a caret after it.
func InsertText(s Snapshot, text string) Snapshot {
	s = s.Clamp()
	value := s.Value[:s.SelectionStart] + text + s.Value[s.SelectionEnd:]
	return NewCaret(value, s.SelectionStart+len(text))
}

// DeleteBackward removes the selection, or the rune before a caret.
func DeleteBackward(s Snapshot) Snapshot {
	s = s.Clamp()
	if !s.IsCaret() {
		return InsertText(s, "")
	}
	if s.SelectionStart == 0 {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.Value[:s.SelectionStart])
	at := s.SelectionStart - size
	return NewCaret(s.Value[:at]+s.Value[s.SelectionStart:], at)
}

// DeleteForward removes the selection, or the rune after a caret.
func DeleteForward(s Snapshot) Snapshot {
	s = s.Clamp()
	if !s.IsCaret() {
		return InsertText(s, "")
	}
	at := s.SelectionStart
	if at == len(s.Value) {
		return s
	}
	_, size := utf8.DecodeRuneInString(s.Value[at:])
	return NewCaret(s.Value[:at]+s.Value[at+size:], at)
}
