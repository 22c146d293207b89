// Package edit provides the pure text transforms behind the code-block editor.
//
// Every operation takes a Snapshot (the buffer text plus the selection
// bounds) and returns a new Snapshot. Nothing is retained between calls and
// no input is modified, so the functions are safe to call from any
// goroutine.
//
// # Offsets
//
// SelectionStart and SelectionEnd are byte offsets into Value. A snapshot
// whose bounds are equal describes a caret. Out-of-range bounds are clamped
// on entry (see Snapshot.Clamp), so the transforms never panic.
//
// # Operations
//
//   - IncreaseTab / DecreaseTab: insert or remove one tab token at the caret
//   - IncreaseSelectionTab / DecreaseSelectionTab: indent or outdent every
//     line touched by the selection
//   - InsertNewlineWithIndent: break the line and carry an indent over
//
// The multi-line operations locate lines through a LineLocator, normally
// LocateLines:
//
//	s := edit.Snapshot{Value: "ab\ncd", SelectionStart: 0, SelectionEnd: 4}
//	s = edit.IncreaseSelectionTab(s, "  ", edit.LocateLines)
//	// s.Value == "  ab\n  cd", s.SelectionStart == 2, s.SelectionEnd == 8
package edit
