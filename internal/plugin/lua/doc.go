// Package lua runs editing scripts written in Lua.
//
// Scripts see a global "codepad" module operating on a single snapshot.
// Offsets are 0-based byte offsets, as in package edit.
//
//	codepad.text()              -> string
//	codepad.selection()         -> start, end
//	codepad.set_text(s)         -> changed, caret at the end
//	codepad.select(start, end)
//	codepad.indent()            -> changed
//	codepad.outdent()           -> changed
//	codepad.newline([indent])   -> changed
//	codepad.insert(text)        -> changed, replaces the selection
//	codepad.apply(name)         -> changed, runs a registered action
//	codepad.current_indent()    -> string
//	codepad.line_count()        -> number
//	codepad.lines(spec [, max]) -> {numbers}, max capped at line_count()
//
// Every change goes through the dispatcher, so a read-only dispatcher
// rejects it.
//
// Only the base, table, string and math libraries are available; file,
// OS and module loading functions are removed.
package lua
