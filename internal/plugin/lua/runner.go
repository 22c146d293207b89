package lua

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/codepad/internal/dispatcher"
	"github.com/dshills/codepad/internal/engine/edit"
	"github.com/dshills/codepad/internal/logging"
)

// DefaultExecutionTimeout bounds a script run when the context has no
// deadline of its own.
const DefaultExecutionTimeout = 5 * time.Second

// Runner executes scripts against snapshots through a dispatcher.
type Runner struct {
	dispatcher *dispatcher.Dispatcher
	timeout    time.Duration
	logger     *logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutionTimeout sets the per-run timeout.
func WithExecutionTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner that applies editing actions through d.
func NewRunner(d *dispatcher.Dispatcher, opts ...Option) *Runner {
	r := &Runner{
		dispatcher: d,
		timeout:    DefaultExecutionTimeout,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("lua")
	return r
}

// RunFile runs the script stored at path.
func (r *Runner) RunFile(ctx context.Context, path string, s edit.Snapshot) (edit.Snapshot, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading script %s: %w", path, err)
	}
	return r.Run(ctx, string(code), s)
}

// Run executes code with s as the buffer and returns the final snapshot.
// On error the input snapshot is returned unchanged.
func (r *Runner) Run(ctx context.Context, code string, s edit.Snapshot) (edit.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	L := newSandboxedState()
	defer L.Close()
	L.SetContext(ctx)

	m := &module{dispatcher: r.dispatcher, snap: s.Clamp()}
	m.register(L)

	err := doWithRecovery(func() error { return L.DoString(code) })
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return s, fmt.Errorf("%w after %v", ErrExecutionTimeout, r.timeout)
		}
		r.logger.Warn("script failed", "error", err)
		return s, fmt.Errorf("%w: %v", ErrScript, err)
	}

	r.logger.Debug("script finished", "changed", m.snap != s)
	return m.snap, nil
}

// newSandboxedState creates a Lua state with only safe libraries opened.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
