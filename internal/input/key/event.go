package key

import "github.com/gdamore/tcell/v2"

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// NewSpecial creates an event for a special key.
func NewSpecial(k Key, mod Modifier) Event {
	return Event{Key: k, Mod: mod}
}

// NewRune creates an event for a character key.
func NewRune(r rune, mod Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mod}
}

// String returns the canonical spec for the event, e.g. "Shift+Tab".
// Parse(e.String()) yields e for every key except KeyNone.
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Mod.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// FromTcell converts a tcell key event.
// tcell reports Shift+Tab as KeyBacktab, which becomes Tab with ModShift,
// and Ctrl+letter as KeyCtrlA..KeyCtrlZ, which become the lowercase letter
// with ModCtrl.
func FromTcell(ev *tcell.EventKey) Event {
	mod := convertMod(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return NewSpecial(KeySpace, mod)
		}
		return NewRune(ev.Rune(), mod)
	case tcell.KeyBacktab:
		return NewSpecial(KeyTab, mod.With(ModShift))
	case tcell.KeyTab:
		return NewSpecial(KeyTab, mod)
	case tcell.KeyEnter:
		return NewSpecial(KeyEnter, mod)
	case tcell.KeyEscape:
		return NewSpecial(KeyEscape, mod)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecial(KeyBackspace, mod)
	case tcell.KeyDelete:
		return NewSpecial(KeyDelete, mod)
	case tcell.KeyUp:
		return NewSpecial(KeyUp, mod)
	case tcell.KeyDown:
		return NewSpecial(KeyDown, mod)
	case tcell.KeyLeft:
		return NewSpecial(KeyLeft, mod)
	case tcell.KeyRight:
		return NewSpecial(KeyRight, mod)
	case tcell.KeyHome:
		return NewSpecial(KeyHome, mod)
	case tcell.KeyEnd:
		return NewSpecial(KeyEnd, mod)
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return NewRune(rune('a'+(k-tcell.KeyCtrlA)), mod.With(ModCtrl))
	}
	return NewSpecial(KeyNone, mod)
}

func convertMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
