package edit

// IncreaseTab inserts tab at the selection start and collapses the
// selection to a caret after the inserted token.
func IncreaseTab(s Snapshot, tab string) Snapshot {
	s = s.Clamp()
	at := s.SelectionStart
	caret := at + len(tab)
	return NewCaret(s.Value[:at]+tab+s.Value[at:], caret)
}

// DecreaseTab removes len(tab) bytes before the selection start and
// collapses the selection to a caret at the cut point. The removed bytes
// are not compared against tab. Near the start of the buffer the cut is
// clamped to offset 0.
func DecreaseTab(s Snapshot, tab string) Snapshot {
	s = s.Clamp()
	at := s.SelectionStart
	cut := at - len(tab)
	if cut < 0 {
		cut = 0
	}
	return NewCaret(s.Value[:cut]+s.Value[at:], cut)
}

// InsertNewlineWithIndent inserts a line break followed by indent at the
// selection start. The caller supplies indent, usually CurrentIndent.
func InsertNewlineWithIndent(s Snapshot, indent string) Snapshot {
	s = s.Clamp()
	at := s.SelectionStart
	insert := "\n" + indent
	return NewCaret(s.Value[:at]+insert+s.Value[at:], at+len(insert))
}
