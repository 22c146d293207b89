package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Key names: "Enter", "Tab", "Esc", "Backspace", "Space"
//   - Single characters: "a", "}"
//   - With modifiers: "Shift+Tab", "Ctrl+Enter"
//   - Vim-style: "<S-Tab>", "<CR>", "<C-s>"
//
// Names and modifiers are case-insensitive.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	sep := "+"
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		spec = spec[1 : len(spec)-1]
		sep = "-"
	}

	parts := strings.Split(spec, sep)
	keyPart := parts[len(parts)-1]
	// "Ctrl++" and "<C-->" bind the separator character itself.
	if keyPart == "" && len(parts) > 1 {
		keyPart = sep
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		mod := modifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart = strings.TrimSpace(keyPart)
	if k, ok := lookupKey(keyPart); ok {
		return NewSpecial(k, mods), nil
	}
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return NewRune(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}
