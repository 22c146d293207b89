package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	editor "github.com/dshills/codepad/internal/app"
	"github.com/dshills/codepad/internal/config"
	"github.com/dshills/codepad/internal/config/watcher"
	"github.com/dshills/codepad/internal/dispatcher"
	"github.com/dshills/codepad/internal/engine/edit"
	"github.com/dshills/codepad/internal/input/key"
	"github.com/dshills/codepad/internal/logging"
	luaplugin "github.com/dshills/codepad/internal/plugin/lua"
	"github.com/dshills/codepad/internal/renderer/backend"
	"github.com/dshills/codepad/internal/renderer/gutter"
	"github.com/dshills/codepad/internal/renderer/highlight"
)

type actionCommand struct {
	app    *app
	action dispatcher.Action

	Buffer bufferOptions `group:"Buffer Options"`
}

func (c *actionCommand) Execute(_ []string) error {
	s, err := c.app.readSnapshot(c.Buffer)
	if err != nil {
		return err
	}
	res, err := c.app.disp.Dispatch(c.action, s)
	if err != nil {
		return err
	}
	return c.app.writeResult(c.Buffer, res)
}

type applyCommand struct {
	app *app

	Action string        `short:"a" long:"action" required:"true" description:"Registered action, e.g. indent or editor.deleteBackward"`
	Buffer bufferOptions `group:"Buffer Options"`
}

func (c *applyCommand) Execute(_ []string) error {
	action, err := c.app.disp.ResolveAction(c.Action)
	if err != nil {
		return err
	}
	s, err := c.app.readSnapshot(c.Buffer)
	if err != nil {
		return err
	}
	res, err := c.app.disp.Dispatch(action, s)
	if err != nil {
		return err
	}
	return c.app.writeResult(c.Buffer, res)
}

type keyCommand struct {
	app *app

	Key    string        `short:"k" long:"key" required:"true" description:"Key to press, e.g. tab, shift+tab, enter"`
	Buffer bufferOptions `group:"Buffer Options"`
}

func (c *keyCommand) Execute(_ []string) error {
	ev, err := key.Parse(c.Key)
	if err != nil {
		return err
	}
	s, err := c.app.readSnapshot(c.Buffer)
	if err != nil {
		return err
	}
	res, err := c.app.disp.HandleKey(ev, s)
	if err != nil {
		return err
	}
	return c.app.writeResult(c.Buffer, res)
}

type linesCommand struct {
	app *app

	Spec   string `long:"spec" required:"true" description:"Range spec, e.g. \"2,4-6,9\""`
	Max    int    `short:"m" long:"max" description:"Highest valid line number (defaults to the line count of --file)"`
	File   string `short:"f" long:"file" description:"Take --max from this file's line count"`
	Strict bool   `long:"strict" description:"Fail on malformed tokens instead of skipping them"`
	JSON   bool   `long:"json" description:"Print the line numbers as a JSON array"`
}

func (c *linesCommand) Execute(_ []string) error {
	maxLine := c.Max
	if maxLine <= 0 {
		if c.File == "" {
			return errors.New("lines: --max or --file is required")
		}
		text, err := c.app.readText(c.File)
		if err != nil {
			return err
		}
		maxLine = edit.LineCount(text)
	}

	var lines []int
	if c.Strict || c.app.cfg.Highlight.Strict {
		var err error
		if lines, err = highlight.ParseRangesStrict(c.Spec, maxLine); err != nil {
			return err
		}
	} else {
		lines = highlight.ParseRanges(c.Spec, maxLine)
	}

	if c.JSON {
		return c.app.writeJSON(lines)
	}
	for _, n := range lines {
		if _, err := fmt.Fprintln(c.app.stdout, strconv.Itoa(n)); err != nil {
			return err
		}
	}
	return nil
}

type showCommand struct {
	app *app

	Spec      string `long:"spec" description:"Lines to highlight (defaults to highlight.lines from the config)"`
	File      string `short:"f" long:"file" description:"Read the buffer from file instead of stdin"`
	NoNumbers bool   `long:"no-numbers" description:"Hide line numbers"`
}

func (c *showCommand) Execute(_ []string) error {
	text, err := c.app.readText(c.File)
	if err != nil {
		return err
	}

	spec := c.Spec
	if spec == "" {
		spec = c.app.cfg.Highlight.Lines
	}
	maxLine := edit.LineCount(text)

	var lines []int
	if c.app.cfg.Highlight.Strict {
		if lines, err = highlight.ParseRangesStrict(spec, maxLine); err != nil {
			return err
		}
	} else {
		lines = highlight.ParseRanges(spec, maxLine)
	}

	cfg := gutter.DefaultConfig()
	cfg.ShowLineNumbers = !c.NoNumbers
	return gutter.Render(c.app.stdout, text, lines, cfg)
}

type scriptCommand struct {
	app *app

	Script  string        `long:"script" required:"true" description:"Lua script to run"`
	Timeout time.Duration `long:"timeout" default:"5s" description:"Abort the script after this long"`
	Buffer  bufferOptions `group:"Buffer Options"`
}

func (c *scriptCommand) Execute(_ []string) error {
	s, err := c.app.readSnapshot(c.Buffer)
	if err != nil {
		return err
	}

	runner := luaplugin.NewRunner(c.app.disp,
		luaplugin.WithExecutionTimeout(c.Timeout),
		luaplugin.WithLogger(c.app.logger),
	)
	out, err := runner.RunFile(context.Background(), c.Script, s)
	if err != nil {
		return err
	}

	return c.app.writeResult(c.Buffer, dispatcher.Result{
		Action:  "script",
		Before:  s,
		After:   out,
		Changed: out != s.Clamp(),
	})
}

type watchCommand struct {
	app *app

	Debounce time.Duration `long:"debounce" default:"100ms" description:"Quiet period before a reload"`
}

func (c *watchCommand) Execute(_ []string) error {
	a := c.app
	if a.opts.Config == "" {
		return errors.New("watch: --config is required")
	}

	onReload := func(cfg *config.Config) {
		a.disp.SetConfig(dispatcher.ConfigFrom(cfg))
		a.logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))
		fmt.Fprintf(a.stdout, "reloaded %s: tabSize=%d insertSpaces=%t autoIndent=%t\n",
			a.opts.Config, cfg.Editor.TabSize, cfg.Editor.InsertSpaces, cfg.Editor.AutoIndent)
	}
	w, err := watcher.New(a.opts.Config, onReload,
		watcher.WithDebounce(c.Debounce),
		watcher.WithLogger(a.logger),
		watcher.WithErrorHandler(func(err error) {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("watching config", "path", w.Path())
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type editCommand struct {
	app *app

	File string `short:"f" long:"file" required:"true" description:"File to edit; created on save if missing"`
	Spec string `long:"spec" description:"Lines to highlight (defaults to highlight.lines from the config)"`
}

func (c *editCommand) Execute(_ []string) error {
	a := c.app

	text := ""
	data, err := os.ReadFile(c.File)
	switch {
	case err == nil:
		text = string(data)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("reading buffer: %w", err)
	}

	spec := c.Spec
	if spec == "" {
		spec = a.cfg.Highlight.Lines
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Shutdown()

	session := editor.NewSession(term, a.disp, c.File, text,
		editor.WithHighlight(spec),
		editor.WithTabWidth(a.cfg.Editor.TabSize),
		editor.WithLogger(a.logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type versionCommand struct {
	app *app
}

func (c *versionCommand) Execute(_ []string) error {
	fmt.Fprintf(c.app.stdout, "codepad %s\n", version)
	fmt.Fprintf(c.app.stdout, "Commit: %s\n", commit)
	fmt.Fprintf(c.app.stdout, "Built: %s\n", date)
	return nil
}
