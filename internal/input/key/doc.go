// Package key represents keyboard input for the editor dispatcher.
//
// Terminal events are converted from tcell with FromTcell; key bindings are
// written as specs such as "tab", "shift+tab" or "<S-Tab>" and read with
// Parse.
package key
