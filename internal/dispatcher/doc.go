// Package dispatcher routes editor actions to the edit transforms.
//
// A Dispatcher owns the editing settings (tab token, auto-indent,
// read-only) and a Keymap. Hosts pass it the current snapshot together with
// either an Action or a key.Event and apply the returned snapshot:
//
//	d := dispatcher.New(dispatcher.ConfigFrom(cfg))
//	res, err := d.HandleKey(key.MustParse("shift+tab"), snap)
//	if err == nil {
//	    snap = res.After
//	}
//
// Built-in actions:
//
//   - editor.indent: insert a tab at the caret, or indent selected lines
//   - editor.outdent: remove the tab before the caret, or outdent lines
//   - editor.newline: break the line, carrying the indent when enabled
package dispatcher
