package dispatcher

import (
	"strings"

	"github.com/dshills/codepad/internal/engine/edit"
)

// Action names an editing operation.
type Action string

// Built-in actions.
const (
	ActionIndent         Action = "editor.indent"
	ActionOutdent        Action = "editor.outdent"
	ActionNewline        Action = "editor.newline"
	ActionDeleteBackward Action = "editor.deleteBackward"
	ActionDeleteForward  Action = "editor.deleteForward"
)

// Actions without a namespace resolve under this one.
const defaultNamespace = "editor."

// Context carries what a handler needs to transform a snapshot.
type Context struct {
	Snapshot edit.Snapshot
	Config   Config
	Locate   edit.LineLocator
}

// Handler applies an action and returns the new snapshot.
type Handler func(ctx *Context) edit.Snapshot

func indent(ctx *Context) edit.Snapshot {
	s, tab := ctx.Snapshot, ctx.Config.TabToken
	if s.IsCaret() {
		return edit.IncreaseTab(s, tab)
	}
	return edit.IncreaseSelectionTab(s, tab, ctx.Locate)
}

// outdent removes the token right before a caret when there is one and
// otherwise strips the leading token of every touched line.
func outdent(ctx *Context) edit.Snapshot {
	s, tab := ctx.Snapshot.Clamp(), ctx.Config.TabToken
	if s.IsCaret() && tab != "" && strings.HasSuffix(s.Value[:s.SelectionStart], tab) {
		return edit.DecreaseTab(s, tab)
	}
	return edit.DecreaseSelectionTab(s, tab, ctx.Locate)
}

func newline(ctx *Context) edit.Snapshot {
	s := ctx.Snapshot
	var ind string
	if ctx.Config.AutoIndent {
		ind = edit.CurrentIndent(s.Value, s.SelectionStart)
	}
	return edit.InsertNewlineWithIndent(s, ind)
}

func deleteBackward(ctx *Context) edit.Snapshot {
	return edit.DeleteBackward(ctx.Snapshot)
}

func deleteForward(ctx *Context) edit.Snapshot {
	return edit.DeleteForward(ctx.Snapshot)
}
