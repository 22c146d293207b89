package edit

import "fmt"

// Snapshot is the editor state a transform operates on.
type Snapshot struct {
	Value          string `json:"value" yaml:"value"`
	SelectionStart int    `json:"selectionStart" yaml:"selectionStart"`
	SelectionEnd   int    `json:"selectionEnd" yaml:"selectionEnd"`
}

// NewSnapshot creates a snapshot with the given selection.
func NewSnapshot(value string, start, end int) Snapshot {
	return Snapshot{Value: value, SelectionStart: start, SelectionEnd: end}
}

// NewCaret creates a snapshot with a collapsed selection at offset.
func NewCaret(value string, offset int) Snapshot {
	return Snapshot{Value: value, SelectionStart: offset, SelectionEnd: offset}
}

// IsCaret returns true if the selection is collapsed.
func (s Snapshot) IsCaret() bool {
	return s.SelectionStart == s.SelectionEnd
}

// IsValid reports whether 0 <= SelectionStart <= SelectionEnd <= len(Value).
func (s Snapshot) IsValid() bool {
	return s.SelectionStart >= 0 &&
		s.SelectionStart <= s.SelectionEnd &&
		s.SelectionEnd <= len(s.Value)
}

// Selected returns the selected text.
func (s Snapshot) Selected() string {
	c := s.Clamp()
	return c.Value[c.SelectionStart:c.SelectionEnd]
}

// Clamp returns a copy whose bounds satisfy IsValid.
// Bounds are clamped to [0, len(Value)] and swapped if reversed.
func (s Snapshot) Clamp() Snapshot {
	start := clampOffset(s.SelectionStart, len(s.Value))
	end := clampOffset(s.SelectionEnd, len(s.Value))
	if start > end {
		start, end = end, start
	}
	return Snapshot{Value: s.Value, SelectionStart: start, SelectionEnd: end}
}

// String returns a human-readable representation of the snapshot.
func (s Snapshot) String() string {
	if s.IsCaret() {
		return fmt.Sprintf("Snapshot(%d bytes, caret %d)", len(s.Value), s.SelectionStart)
	}
	return fmt.Sprintf("Snapshot(%d bytes, [%d, %d))", len(s.Value), s.SelectionStart, s.SelectionEnd)
}

func clampOffset(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}
