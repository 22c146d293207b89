package dispatcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/dshills/codepad/internal/config"
	"github.com/dshills/codepad/internal/engine/edit"
	"github.com/dshills/codepad/internal/input/key"
)

func twoSpaces() Config {
	return Config{TabToken: "  ", AutoIndent: true}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		action Action
		in     edit.Snapshot
		want   edit.Snapshot
	}{
		{
			name:   "indent caret",
			config: twoSpaces(),
			action: ActionIndent,
			in:     edit.NewCaret("foo", 3),
			want:   edit.NewCaret("foo  ", 5),
		},
		{
			name:   "indent selection",
			config: twoSpaces(),
			action: ActionIndent,
			in:     edit.NewSnapshot("ab\ncd", 0, 4),
			want:   edit.NewSnapshot("  ab\n  cd", 2, 8),
		},
		{
			name:   "outdent token before caret",
			config: twoSpaces(),
			action: ActionOutdent,
			in:     edit.NewCaret("a  ", 3),
			want:   edit.NewCaret("a", 1),
		},
		{
			name:   "outdent caret at line start",
			config: twoSpaces(),
			action: ActionOutdent,
			in:     edit.NewCaret("  foo", 0),
			want:   edit.NewCaret("foo", 0),
		},
		{
			name:   "outdent caret inside line",
			config: twoSpaces(),
			action: ActionOutdent,
			in:     edit.NewCaret("  foo", 4),
			want:   edit.NewCaret("foo", 2),
		},
		{
			name:   "outdent selection",
			config: twoSpaces(),
			action: ActionOutdent,
			in:     edit.NewSnapshot("  ab\n  cd", 2, 8),
			want:   edit.NewSnapshot("ab\ncd", 0, 4),
		},
		{
			name:   "newline keeps indent",
			config: twoSpaces(),
			action: ActionNewline,
			in:     edit.NewCaret("  foo", 5),
			want:   edit.NewCaret("  foo\n  ", 8),
		},
		{
			name:   "newline without auto indent",
			config: Config{TabToken: "  "},
			action: ActionNewline,
			in:     edit.NewCaret("  foo", 5),
			want:   edit.NewCaret("  foo\n", 6),
		},
		{
			name:   "tab character",
			config: Config{TabToken: "\t"},
			action: ActionIndent,
			in:     edit.NewSnapshot("a\nb", 0, 3),
			want:   edit.NewSnapshot("\ta\n\tb", 1, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.config)
			res, err := d.Dispatch(tt.action, tt.in)
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, res.After); diff != "" {
				t.Errorf("Dispatch() mismatch (-want +got):\n%s", diff)
			}
			if res.Before != tt.in {
				t.Errorf("Before = %+v, want %+v", res.Before, tt.in)
			}
			if res.Action != tt.action {
				t.Errorf("Action = %q, want %q", res.Action, tt.action)
			}
			if !res.Changed {
				t.Error("Changed = false")
			}
			if _, err := uuid.Parse(res.ID); err != nil {
				t.Errorf("ID %q is not a UUID: %v", res.ID, err)
			}
		})
	}
}

func TestDispatchUnchanged(t *testing.T) {
	d := New(twoSpaces())
	in := edit.NewCaret("foo", 1)
	res, err := d.Dispatch(ActionOutdent, in)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if res.Changed {
		t.Errorf("Changed = true for %+v", res.After)
	}
	if res.After != in {
		t.Errorf("After = %+v, want %+v", res.After, in)
	}
}

func TestDispatchErrors(t *testing.T) {
	d := New(twoSpaces())
	if _, err := d.Dispatch("editor.bogus", edit.NewCaret("", 0)); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown action error = %v, want ErrUnknownAction", err)
	}

	ro := New(Config{TabToken: "  ", ReadOnly: true})
	if _, err := ro.Dispatch(ActionIndent, edit.NewCaret("", 0)); !errors.Is(err, ErrReadOnly) {
		t.Errorf("read-only error = %v, want ErrReadOnly", err)
	}

	d.Register("editor.explode", func(*Context) edit.Snapshot { panic("boom") })
	if _, err := d.Dispatch("editor.explode", edit.NewCaret("", 0)); !errors.Is(err, ErrPanic) {
		t.Errorf("panic error = %v, want ErrPanic", err)
	}
}

func TestHandleKey(t *testing.T) {
	d := New(twoSpaces())

	res, err := d.HandleKey(key.MustParse("tab"), edit.NewCaret("x", 0))
	if err != nil {
		t.Fatalf("HandleKey(tab) error = %v", err)
	}
	if res.After.Value != "  x" {
		t.Errorf("HandleKey(tab) Value = %q", res.After.Value)
	}

	res, err = d.HandleKey(key.MustParse("shift+tab"), res.After)
	if err != nil {
		t.Fatalf("HandleKey(shift+tab) error = %v", err)
	}
	if res.After.Value != "x" {
		t.Errorf("HandleKey(shift+tab) Value = %q", res.After.Value)
	}

	res, err = d.HandleKey(key.MustParse("enter"), edit.NewCaret("\tx", 2))
	if err != nil {
		t.Fatalf("HandleKey(enter) error = %v", err)
	}
	if res.After.Value != "\tx\n\t" {
		t.Errorf("HandleKey(enter) Value = %q", res.After.Value)
	}

	if _, err := d.HandleKey(key.MustParse("ctrl+q"), edit.NewCaret("", 0)); !errors.Is(err, ErrUnboundKey) {
		t.Errorf("unbound key error = %v, want ErrUnboundKey", err)
	}
}

func TestCustomKeymap(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("ctrl+]", ActionIndent); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := km.Bind("<C-[>", ActionOutdent); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := km.Bind("hyper+x", ActionIndent); err == nil {
		t.Error("Bind() with a bad spec succeeded")
	}

	d := New(twoSpaces(), WithKeymap(km))
	res, err := d.HandleKey(key.NewRune(']', key.ModCtrl), edit.NewCaret("a", 1))
	if err != nil {
		t.Fatalf("HandleKey() error = %v", err)
	}
	if res.Action != ActionIndent {
		t.Errorf("Action = %q, want %q", res.Action, ActionIndent)
	}

	want := map[string]Action{"Ctrl+]": ActionIndent, "Ctrl+[": ActionOutdent}
	if diff := cmp.Diff(want, km.Bindings()); diff != "" {
		t.Errorf("Bindings() mismatch (-want +got):\n%s", diff)
	}

	if err := km.Unbind("ctrl+]"); err != nil {
		t.Fatalf("Unbind() error = %v", err)
	}
	if _, ok := km.Lookup(key.NewRune(']', key.ModCtrl)); ok {
		t.Error("binding still present after Unbind")
	}
}

func TestDefaultKeymap(t *testing.T) {
	want := map[string]Action{
		"Tab":       ActionIndent,
		"Shift+Tab": ActionOutdent,
		"Enter":     ActionNewline,
		"Backspace": ActionDeleteBackward,
		"Delete":    ActionDeleteForward,
	}
	if diff := cmp.Diff(want, DefaultKeymap().Bindings()); diff != "" {
		t.Errorf("DefaultKeymap() mismatch (-want +got):\n%s", diff)
	}
}

func TestWithLineLocator(t *testing.T) {
	calls := 0
	locate := func(text string, pos int) []string {
		calls++
		return edit.LocateLines(text, pos)
	}

	d := New(twoSpaces(), WithLineLocator(locate))
	if _, err := d.Dispatch(ActionIndent, edit.NewSnapshot("a\nb", 0, 3)); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if calls == 0 {
		t.Error("custom line locator was not used")
	}
}

func TestSetConfig(t *testing.T) {
	d := New(twoSpaces())
	d.SetConfig(Config{TabToken: "    "})

	res, err := d.Dispatch(ActionIndent, edit.NewCaret("", 0))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if res.After.Value != "    " {
		t.Errorf("Value = %q, want four spaces", res.After.Value)
	}
	if d.Config().TabToken != "    " {
		t.Errorf("Config().TabToken = %q", d.Config().TabToken)
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.TabSize = 4
	cfg.Editor.ReadOnly = true

	got := ConfigFrom(cfg)
	want := Config{TabToken: "    ", AutoIndent: true, ReadOnly: true}
	if got != want {
		t.Errorf("ConfigFrom() = %+v, want %+v", got, want)
	}
	if DefaultConfig().TabToken != "  " {
		t.Errorf("DefaultConfig().TabToken = %q", DefaultConfig().TabToken)
	}
}

func TestResolveAction(t *testing.T) {
	d := New(twoSpaces())
	d.Register("macro.upper", func(ctx *Context) edit.Snapshot { return ctx.Snapshot })
	d.Register("editor.duplicate", func(ctx *Context) edit.Snapshot { return ctx.Snapshot })

	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"indent", ActionIndent, true},
		{"editor.outdent", ActionOutdent, true},
		{" newline ", ActionNewline, true},
		{"deleteBackward", ActionDeleteBackward, true},
		{"macro.upper", "macro.upper", true},
		{"duplicate", "editor.duplicate", true},
		{"upper", "", false},
		{"bogus", "", false},
		{"other.indent", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := d.ResolveAction(tt.name)
		if (err == nil) != tt.ok {
			t.Errorf("ResolveAction(%q) error = %v, want ok=%v", tt.name, err, tt.ok)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownAction) {
			t.Errorf("ResolveAction(%q) error = %v, want ErrUnknownAction", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ResolveAction(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestActions(t *testing.T) {
	d := New(twoSpaces())
	d.Register("macro.upper", func(ctx *Context) edit.Snapshot { return ctx.Snapshot })

	want := []Action{
		ActionDeleteBackward,
		ActionDeleteForward,
		ActionIndent,
		ActionNewline,
		ActionOutdent,
		"macro.upper",
	}
	if diff := cmp.Diff(want, d.Actions()); diff != "" {
		t.Errorf("Actions() mismatch (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	d := New(twoSpaces())
	insert := func(ctx *Context) edit.Snapshot { return edit.InsertText(ctx.Snapshot, "x") }

	res, err := d.Apply("editor.insert", edit.NewCaret("ab", 1), insert)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if want := edit.NewCaret("axb", 2); res.After != want || !res.Changed || res.Action != "editor.insert" {
		t.Errorf("Apply() = %+v, want After %v", res, want)
	}
	if _, err := d.ResolveAction("insert"); err == nil {
		t.Error("Apply() registered its handler")
	}

	cfg := twoSpaces()
	cfg.ReadOnly = true
	d.SetConfig(cfg)
	if _, err := d.Apply("editor.insert", edit.NewCaret("ab", 1), insert); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Apply() read-only error = %v, want ErrReadOnly", err)
	}

	d.SetConfig(twoSpaces())
	boom := func(*Context) edit.Snapshot { panic("boom") }
	if _, err := d.Apply("editor.boom", edit.NewCaret("", 0), boom); !errors.Is(err, ErrPanic) {
		t.Errorf("Apply() panic error = %v, want ErrPanic", err)
	}
}

func TestDeleteActions(t *testing.T) {
	d := New(twoSpaces())

	res, err := d.HandleKey(key.NewSpecial(key.KeyBackspace, key.ModNone), edit.NewCaret("abc", 2))
	if err != nil {
		t.Fatalf("HandleKey(Backspace) error = %v", err)
	}
	if want := edit.NewCaret("ac", 1); res.After != want {
		t.Errorf("Backspace = %v, want %v", res.After, want)
	}

	res, err = d.HandleKey(key.NewSpecial(key.KeyDelete, key.ModNone), edit.NewCaret("abc", 0))
	if err != nil {
		t.Fatalf("HandleKey(Delete) error = %v", err)
	}
	if want := edit.NewCaret("bc", 0); res.After != want {
		t.Errorf("Delete = %v, want %v", res.After, want)
	}
}
