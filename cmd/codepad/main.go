// Package main is the entry point for the codepad command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/dshills/codepad/internal/config"
	"github.com/dshills/codepad/internal/dispatcher"
	"github.com/dshills/codepad/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globalOptions are accepted before any subcommand.
type globalOptions struct {
	Config   string `short:"c" long:"config" env:"CODEPAD_CONFIG" description:"Path to configuration file (.toml, .yaml)"`
	LogLevel string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level, overrides the config file"`
}

// app holds what every subcommand shares.
type app struct {
	opts   globalOptions
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *logging.Logger
	disp   *dispatcher.Dispatcher
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args and executes the selected command. It returns 0 on
// success, 1 when the command fails and 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	defer a.close()

	_, err := newParser(a).ParseArgs(args)
	if err == nil {
		return 0
	}

	var ferr *flags.Error
	if errors.As(err, &ferr) {
		if ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newParser(a *app) *flags.Parser {
	p := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "codepad"
	p.ShortDescription = "indentation-aware text transforms"
	p.SubcommandsOptional = false

	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if err := a.setup(); err != nil {
			return err
		}
		return cmd.Execute(args)
	}

	p.AddCommand("indent", "Indent the caret or selected lines", "", &actionCommand{app: a, action: dispatcher.ActionIndent})
	p.AddCommand("outdent", "Outdent the caret or selected lines", "", &actionCommand{app: a, action: dispatcher.ActionOutdent})
	p.AddCommand("newline", "Insert a newline keeping the current indent", "", &actionCommand{app: a, action: dispatcher.ActionNewline})
	p.AddCommand("apply", "Apply a registered action by name", "Names without a namespace are looked up under \"editor.\", e.g. \"deleteBackward\".", &applyCommand{app: a})
	p.AddCommand("key", "Apply the action bound to a key", "Keys are written as \"tab\", \"shift+tab\" or \"<S-Tab>\".", &keyCommand{app: a})
	p.AddCommand("lines", "Parse a highlight range spec", "Prints one line number per line, e.g. for \"2,4-6\": 2 4 5 6.", &linesCommand{app: a})
	p.AddCommand("show", "Print a buffer with line numbers and highlights", "", &showCommand{app: a})
	p.AddCommand("script", "Run a Lua script against a buffer", "", &scriptCommand{app: a})
	p.AddCommand("edit", "Edit a file in the terminal", "Ctrl+S saves, Ctrl+Q or Escape quits.", &editCommand{app: a})
	p.AddCommand("watch", "Watch the config file and report reloads", "", &watchCommand{app: a})
	p.AddCommand("version", "Show version information", "", &versionCommand{app: a})

	return p
}

// setup loads configuration and builds the logger and dispatcher.
func (a *app) setup() error {
	cfg, err := config.Load(a.opts.Config)
	if err != nil {
		return err
	}
	if a.opts.LogLevel != "" {
		cfg.Logging.Level = a.opts.LogLevel
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: a.stderr,
	})

	a.disp = dispatcher.New(dispatcher.ConfigFrom(cfg), dispatcher.WithLogger(a.logger))

	a.logger.Debug("configuration loaded",
		"path", a.opts.Config,
		"tabSize", cfg.Editor.TabSize,
		"insertSpaces", cfg.Editor.InsertSpaces,
	)
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
