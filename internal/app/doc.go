// Package app runs an interactive editing session in the terminal.
//
// Key presses are read from a backend.Terminal, converted with
// key.FromTcell and resolved through the dispatcher keymap, so Tab,
// Shift+Tab and Enter apply the same indentation actions as the codepad
// subcommands. Printable keys insert text; arrows, Home and End move the
// caret. Ctrl+S saves and Ctrl+Q or Escape quits, asking twice when there
// are unsaved changes.
package app
