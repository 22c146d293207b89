package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/codepad/internal/dispatcher"
	"github.com/dshills/codepad/internal/engine/edit"
	"github.com/dshills/codepad/internal/renderer/highlight"
)

// Actions reported for script-only edits.
const (
	actionSetText dispatcher.Action = "script.setText"
	actionInsert  dispatcher.Action = "script.insert"
)

// module implements the codepad Lua module for one run.
type module struct {
	dispatcher *dispatcher.Dispatcher
	snap       edit.Snapshot
}

func (m *module) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "set_text", L.NewFunction(m.setText))
	L.SetField(mod, "select", L.NewFunction(m.selectRange))
	L.SetField(mod, "indent", L.NewFunction(m.action(dispatcher.ActionIndent)))
	L.SetField(mod, "outdent", L.NewFunction(m.action(dispatcher.ActionOutdent)))
	L.SetField(mod, "newline", L.NewFunction(m.newline))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "apply", L.NewFunction(m.apply))
	L.SetField(mod, "current_indent", L.NewFunction(m.currentIndent))
	L.SetField(mod, "line_count", L.NewFunction(m.lineCount))
	L.SetField(mod, "lines", L.NewFunction(m.lines))

	L.SetGlobal("codepad", mod)
}

// text() -> string
func (m *module) text(L *lua.LState) int {
	L.Push(lua.LString(m.snap.Value))
	return 1
}

// selection() -> start, end
func (m *module) selection(L *lua.LState) int {
	L.Push(lua.LNumber(m.snap.SelectionStart))
	L.Push(lua.LNumber(m.snap.SelectionEnd))
	return 2
}

// set_text(s) -> changed
// Replaces the buffer and puts the caret at its end.
func (m *module) setText(L *lua.LState) int {
	text := L.CheckString(1)
	return m.change(L, actionSetText, func(*dispatcher.Context) edit.Snapshot {
		return edit.NewCaret(text, len(text))
	})
}

// select(start, end)
func (m *module) selectRange(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.OptInt(2, start)
	if start < 0 || end < start || end > len(m.snap.Value) {
		L.ArgError(1, "selection out of range")
		return 0
	}
	m.snap = edit.NewSnapshot(m.snap.Value, start, end)
	return 0
}

func (m *module) action(a dispatcher.Action) lua.LGFunction {
	return func(L *lua.LState) int {
		res, err := m.dispatcher.Dispatch(a, m.snap)
		return m.push(L, a, res, err)
	}
}

// change applies a one-off handler through the dispatcher so read-only mode
// and logging hold for every buffer change.
func (m *module) change(L *lua.LState, a dispatcher.Action, h dispatcher.Handler) int {
	res, err := m.dispatcher.Apply(a, m.snap, h)
	return m.push(L, a, res, err)
}

func (m *module) push(L *lua.LState, a dispatcher.Action, res dispatcher.Result, err error) int {
	if err != nil {
		L.RaiseError("%s: %v", a, err)
		return 0
	}
	m.snap = res.After
	L.Push(lua.LBool(res.Changed))
	return 1
}

// newline([indent]) -> changed
// Without an argument the dispatcher's auto-indent setting applies.
func (m *module) newline(L *lua.LState) int {
	if L.GetTop() == 0 {
		return m.action(dispatcher.ActionNewline)(L)
	}
	indent := L.CheckString(1)
	return m.change(L, dispatcher.ActionNewline, func(ctx *dispatcher.Context) edit.Snapshot {
		return edit.InsertNewlineWithIndent(ctx.Snapshot, indent)
	})
}

// insert(text) -> changed
// Replaces the selection with text.
func (m *module) insert(L *lua.LState) int {
	text := L.CheckString(1)
	return m.change(L, actionInsert, func(ctx *dispatcher.Context) edit.Snapshot {
		return edit.InsertText(ctx.Snapshot, text)
	})
}

// apply(name) -> changed
// Runs any registered action, e.g. "indent" or "editor.deleteBackward".
func (m *module) apply(L *lua.LState) int {
	a, err := m.dispatcher.ResolveAction(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	return m.action(a)(L)
}

// current_indent() -> string
func (m *module) currentIndent(L *lua.LState) int {
	L.Push(lua.LString(edit.CurrentIndent(m.snap.Value, m.snap.SelectionStart)))
	return 1
}

// line_count() -> number
func (m *module) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(edit.LineCount(m.snap.Value)))
	return 1
}

// lines(spec [, max]) -> {numbers}
// max defaults to, and is capped at, the buffer's line count.
func (m *module) lines(L *lua.LState) int {
	spec := L.CheckString(1)
	count := edit.LineCount(m.snap.Value)
	maxLine := min(L.OptInt(2, count), count)

	tbl := L.NewTable()
	for _, n := range highlight.ParseRanges(spec, maxLine) {
		tbl.Append(lua.LNumber(n))
	}
	L.Push(tbl)
	return 1
}
