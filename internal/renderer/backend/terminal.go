// Package backend draws to a terminal through tcell.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/codepad/internal/input/key"
)

// Style selects how a run of text is drawn.
type Style uint8

// Styles used by the editor view.
const (
	StyleText Style = iota
	StyleGutter
	StyleHighlight
	StyleStatus
)

// Terminal wraps a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal on the controlling TTY.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init puts the terminal into full-screen mode.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Clear blanks the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// DrawString draws s from column x of row y, one rune per cell, clipped to
// the screen width. It returns the column after the last rune.
func (t *Terminal) DrawString(x, y int, s string, style Style) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	st := convertStyle(style)
	for _, r := range s {
		if x >= width {
			break
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
	return x
}

// Fill draws r from column x to the end of row y.
func (t *Terminal) Fill(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	st := convertStyle(style)
	for ; x < width; x++ {
		t.screen.SetContent(x, y, r, nil, st)
	}
}

// ShowCursor places the cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

// Show flushes drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// PollKey blocks until a key is pressed. A resize yields a KeyNone event so
// the caller redraws. It returns false once the screen is finalized or
// Interrupt is called.
func (t *Terminal) PollKey() (key.Event, bool) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return key.Event{}, false
		case *tcell.EventKey:
			return key.FromTcell(ev), true
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
			return key.Event{}, true
		}
	}
}

// Interrupt wakes a blocked PollKey, which then returns false.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	switch s {
	case StyleGutter:
		style = style.Dim(true)
	case StyleHighlight:
		style = style.Bold(true)
	case StyleStatus:
		style = style.Reverse(true)
	}
	return style
}
