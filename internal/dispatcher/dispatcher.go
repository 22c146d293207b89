package dispatcher

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/codepad/internal/engine/edit"
	"github.com/dshills/codepad/internal/input/key"
	"github.com/dshills/codepad/internal/logging"
)

// Result describes one dispatched action.
type Result struct {
	// ID identifies this dispatch in logs.
	ID string

	Action  Action
	Before  edit.Snapshot
	After   edit.Snapshot
	Changed bool
}

// Dispatcher applies actions to snapshots. It is safe for concurrent use;
// SetConfig may be called while actions are dispatched.
type Dispatcher struct {
	mu       sync.RWMutex
	config   Config
	handlers map[Action]Handler

	keymap *Keymap
	locate edit.LineLocator
	logger *logging.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithKeymap sets the keymap used by HandleKey.
func WithKeymap(km *Keymap) Option {
	return func(d *Dispatcher) {
		if km != nil {
			d.keymap = km
		}
	}
}

// WithLineLocator replaces edit.LocateLines for multi-line actions.
func WithLineLocator(locate edit.LineLocator) Option {
	return func(d *Dispatcher) {
		if locate != nil {
			d.locate = locate
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dispatcher with the built-in actions registered.
func New(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		config: cfg,
		handlers: map[Action]Handler{
			ActionIndent:         indent,
			ActionOutdent:        outdent,
			ActionNewline:        newline,
			ActionDeleteBackward: deleteBackward,
			ActionDeleteForward:  deleteForward,
		},
		keymap: DefaultKeymap(),
		locate: edit.LocateLines,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithComponent("dispatcher")
	return d
}

// Config returns the current settings.
func (d *Dispatcher) Config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.config
}

// SetConfig replaces the settings.
func (d *Dispatcher) SetConfig(cfg Config) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config = cfg
}

// Keymap returns the dispatcher's keymap.
func (d *Dispatcher) Keymap() *Keymap {
	return d.keymap
}

// Register adds or replaces the handler for an action.
func (d *Dispatcher) Register(action Action, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[action] = h
}

// ResolveAction returns the registered action called name. A name without
// a namespace, such as "indent", is looked up as "editor.indent".
func (d *Dispatcher) ResolveAction(name string) (Action, error) {
	name = strings.TrimSpace(name)
	if name != "" && !strings.Contains(name, ".") {
		name = defaultNamespace + name
	}

	d.mu.RLock()
	_, ok := d.handlers[Action(name)]
	d.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return Action(name), nil
}

// Actions returns the registered actions in sorted order.
func (d *Dispatcher) Actions() []Action {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var actions []Action
	for a := range d.handlers {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	return actions
}

// Dispatch applies the handler registered for action to s.
func (d *Dispatcher) Dispatch(action Action, s edit.Snapshot) (Result, error) {
	d.mu.RLock()
	cfg := d.config
	h, ok := d.handlers[action]
	d.mu.RUnlock()

	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return d.apply(action, cfg, s, h)
}

// Apply runs h as action on s without registering it. Read-only mode,
// panic recovery and logging apply as for Dispatch.
func (d *Dispatcher) Apply(action Action, s edit.Snapshot, h Handler) (Result, error) {
	return d.apply(action, d.Config(), s, h)
}

func (d *Dispatcher) apply(action Action, cfg Config, s edit.Snapshot, h Handler) (Result, error) {
	if cfg.ReadOnly {
		return Result{}, ErrReadOnly
	}

	ctx := &Context{Snapshot: s.Clamp(), Config: cfg, Locate: d.locate}
	after, err := d.executeWithRecovery(h, ctx)
	if err != nil {
		d.logger.Error("action failed", "action", string(action), "error", err)
		return Result{}, err
	}

	res := Result{
		ID:      uuid.New().String(),
		Action:  action,
		Before:  s,
		After:   after,
		Changed: after != ctx.Snapshot,
	}
	d.logger.Debug("action applied",
		"id", res.ID,
		"action", string(action),
		"changed", res.Changed,
		"selection", [2]int{after.SelectionStart, after.SelectionEnd},
	)
	return res, nil
}

// HandleKey dispatches the action bound to ev.
func (d *Dispatcher) HandleKey(ev key.Event, s edit.Snapshot) (Result, error) {
	action, ok := d.keymap.Lookup(ev)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnboundKey, ev)
	}
	return d.Dispatch(action, s)
}

func (d *Dispatcher) executeWithRecovery(h Handler, ctx *Context) (out edit.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return h(ctx), nil
}
