// Package highlight selects which lines of a buffer are highlighted.
//
// Line selections are written as comma-separated line numbers and
// inclusive ranges, for example "1,3-5". Parsing is lenient by default:
// malformed tokens are skipped and out-of-range lines are dropped.
// ParseRangesStrict reports the skipped tokens instead.
package highlight
