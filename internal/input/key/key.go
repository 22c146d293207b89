package key

import "strings"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeySpace

	// KeyRune is used for character keys.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeySpace:     "Space",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// lookupKey maps a lowercase key name, including common aliases, to a Key.
func lookupKey(name string) (Key, bool) {
	switch strings.ToLower(name) {
	case "esc", "escape":
		return KeyEscape, true
	case "enter", "return", "cr":
		return KeyEnter, true
	case "tab":
		return KeyTab, true
	case "backspace", "bs":
		return KeyBackspace, true
	case "delete", "del":
		return KeyDelete, true
	case "up":
		return KeyUp, true
	case "down":
		return KeyDown, true
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	case "home":
		return KeyHome, true
	case "end":
		return KeyEnd, true
	case "space":
		return KeySpace, true
	}
	return KeyNone, false
}
