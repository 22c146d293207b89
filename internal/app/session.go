package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dshills/codepad/internal/dispatcher"
	"github.com/dshills/codepad/internal/engine/edit"
	"github.com/dshills/codepad/internal/input/key"
	"github.com/dshills/codepad/internal/logging"
	"github.com/dshills/codepad/internal/renderer/backend"
	"github.com/dshills/codepad/internal/renderer/gutter"
	"github.com/dshills/codepad/internal/renderer/highlight"
)

// ActionInsert is reported for typed text.
const ActionInsert dispatcher.Action = "session.insert"

var (
	saveKey   = key.NewRune('s', key.ModCtrl)
	quitKey   = key.NewRune('q', key.ModCtrl)
	escapeKey = key.NewSpecial(key.KeyEscape, key.ModNone)
)

var motions = map[key.Key]func(edit.Snapshot) edit.Snapshot{
	key.KeyLeft:  edit.MoveLeft,
	key.KeyRight: edit.MoveRight,
	key.KeyUp:    edit.MoveUp,
	key.KeyDown:  edit.MoveDown,
	key.KeyHome:  edit.LineStart,
	key.KeyEnd:   edit.LineEnd,
}

// Session edits one buffer.
type Session struct {
	term     *backend.Terminal
	disp     *dispatcher.Dispatcher
	snap     edit.Snapshot
	path     string
	spec     string
	gutter   gutter.Config
	tabWidth int
	logger   *logging.Logger

	top       int
	status    string
	modified  bool
	quitArmed bool
}

// Option configures a Session.
type Option func(*Session)

// WithHighlight sets the highlight range spec, e.g. "2,4-6".
func WithHighlight(spec string) Option {
	return func(s *Session) {
		s.spec = spec
	}
}

// WithGutter sets the gutter configuration.
func WithGutter(cfg gutter.Config) Option {
	return func(s *Session) {
		s.gutter = cfg
	}
}

// WithTabWidth sets how many columns a tab character occupies on screen.
func WithTabWidth(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.tabWidth = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session editing text, saved to path on Ctrl+S.
// The caret starts at offset 0. term may be nil when only HandleKey is used.
func NewSession(term *backend.Terminal, disp *dispatcher.Dispatcher, path, text string, opts ...Option) *Session {
	s := &Session{
		term:     term,
		disp:     disp,
		snap:     edit.NewCaret(text, 0),
		path:     path,
		gutter:   gutter.DefaultConfig(),
		tabWidth: 4,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("session")
	return s
}

// Snapshot returns the current buffer state.
func (s *Session) Snapshot() edit.Snapshot {
	return s.snap
}

// Modified reports whether there are unsaved changes.
func (s *Session) Modified() bool {
	return s.modified
}

// Status returns the message shown in the status line.
func (s *Session) Status() string {
	return s.status
}

// Run draws the buffer and handles keys until the user quits or ctx is
// cancelled. The terminal must already be initialized.
func (s *Session) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, s.term.Interrupt)
	defer stop()

	for {
		s.Draw()
		ev, ok := s.term.PollKey()
		if !ok {
			return ctx.Err()
		}
		if s.HandleKey(ev) {
			return nil
		}
	}
}

// HandleKey applies one key press and reports whether the session should
// end.
func (s *Session) HandleKey(ev key.Event) (quit bool) {
	if ev.Key == key.KeyNone {
		return false
	}
	armed := s.quitArmed
	s.quitArmed = false

	switch ev {
	case quitKey, escapeKey:
		if s.modified && !armed {
			s.quitArmed = true
			s.status = "unsaved changes, press again to quit"
			return false
		}
		return true
	case saveKey:
		s.save()
		return false
	}

	if move, ok := motions[ev.Key]; ok && ev.Mod == key.ModNone {
		s.snap = move(s.snap)
		s.status = ""
		return false
	}
	if action, ok := s.disp.Keymap().Lookup(ev); ok {
		s.update(s.disp.Dispatch(action, s.snap))
		return false
	}
	if text, ok := insertable(ev); ok {
		s.update(s.disp.Apply(ActionInsert, s.snap, func(ctx *dispatcher.Context) edit.Snapshot {
			return edit.InsertText(ctx.Snapshot, text)
		}))
	}
	return false
}

func (s *Session) update(res dispatcher.Result, err error) {
	if err != nil {
		s.status = err.Error()
		s.logger.Debug("edit rejected", "error", err)
		return
	}
	s.snap = res.After
	if res.Changed {
		s.modified = true
	}
	s.status = ""
}

func (s *Session) save() {
	if s.path == "" {
		s.status = "no file name"
		return
	}
	if err := os.WriteFile(s.path, []byte(s.snap.Value), 0o644); err != nil {
		s.status = fmt.Sprintf("save failed: %v", err)
		s.logger.Warn("save failed", "path", s.path, "error", err)
		return
	}
	s.modified = false
	s.status = fmt.Sprintf("wrote %d bytes", len(s.snap.Value))
	s.logger.Info("saved", "path", s.path, "bytes", len(s.snap.Value))
}

// insertable returns the text typed by ev, if any.
func insertable(ev key.Event) (string, bool) {
	if ev.Mod&^key.ModShift != 0 {
		return "", false
	}
	switch ev.Key {
	case key.KeyRune:
		return string(ev.Rune), true
	case key.KeySpace:
		return " ", true
	}
	return "", false
}

// Draw renders the visible lines, the status line and the cursor.
func (s *Session) Draw() {
	_, height := s.term.Size()
	if height <= 0 {
		return
	}
	s.term.Clear()

	rows := max(height-1, 1)
	lines := strings.Split(s.snap.Value, "\n")
	marked := highlight.ParseRanges(s.spec, len(lines))
	caretLine := edit.LineIndex(s.snap.Value, s.snap.SelectionEnd)
	s.scrollTo(caretLine, rows)

	numWidth := gutter.LineNumberWidth(len(lines), s.gutter.MinLineNumberWidth)
	for row := 0; row < rows && s.top+row < len(lines); row++ {
		n := s.top + row + 1
		hl := highlight.Contains(marked, n)
		x := s.term.DrawString(0, row, gutter.Prefix(n, hl, numWidth, s.gutter), backend.StyleGutter)
		style := backend.StyleText
		if hl {
			style = backend.StyleHighlight
		}
		s.term.DrawString(x, row, expandTabs(lines[n-1], s.tabWidth), style)
	}

	before := edit.LocateLines(s.snap.Value, s.snap.SelectionEnd)
	col := utf8.RuneCountInString(expandTabs(before[len(before)-1], s.tabWidth))
	if height > 1 {
		s.drawStatus(height-1, caretLine+1, col+1)
	}

	prefix := utf8.RuneCountInString(gutter.Prefix(caretLine+1, false, numWidth, s.gutter))
	s.term.ShowCursor(prefix+col, caretLine-s.top)
	s.term.Show()
}

func (s *Session) drawStatus(y, line, col int) {
	name := "[No Name]"
	if s.path != "" {
		name = filepath.Base(s.path)
	}
	if s.modified {
		name += " [+]"
	}
	text := fmt.Sprintf(" %s  %d:%d", name, line, col)
	if s.status != "" {
		text += "  " + s.status
	}
	x := s.term.DrawString(0, y, text, backend.StyleStatus)
	s.term.Fill(x, y, ' ', backend.StyleStatus)
}

func (s *Session) scrollTo(line, rows int) {
	if line < s.top {
		s.top = line
	}
	if line >= s.top+rows {
		s.top = line - rows + 1
	}
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(line string, width int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
