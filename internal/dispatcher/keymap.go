package dispatcher

import (
	"sync"

	"github.com/dshills/codepad/internal/input/key"
)

// Keymap maps key events to actions.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[key.Event]Action
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[key.Event]Action)}
}

// DefaultKeymap binds the indent keys, Enter, Backspace and Delete.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	km.bind(key.NewSpecial(key.KeyTab, key.ModNone), ActionIndent)
	km.bind(key.NewSpecial(key.KeyTab, key.ModShift), ActionOutdent)
	km.bind(key.NewSpecial(key.KeyEnter, key.ModNone), ActionNewline)
	km.bind(key.NewSpecial(key.KeyBackspace, key.ModNone), ActionDeleteBackward)
	km.bind(key.NewSpecial(key.KeyDelete, key.ModNone), ActionDeleteForward)
	return km
}

// Bind binds a key spec such as "shift+tab" to an action,
// replacing any existing binding.
func (k *Keymap) Bind(spec string, action Action) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return err
	}
	k.bind(ev, action)
	return nil
}

// Unbind removes the binding for a key spec.
func (k *Keymap) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.bindings, ev)
	return nil
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	a, ok := k.bindings[ev]
	return a, ok
}

// Bindings returns a copy of all bindings keyed by canonical key spec.
func (k *Keymap) Bindings() map[string]Action {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make(map[string]Action, len(k.bindings))
	for ev, a := range k.bindings {
		out[ev.String()] = a
	}
	return out
}

func (k *Keymap) bind(ev key.Event, action Action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.bindings[ev] = action
}
