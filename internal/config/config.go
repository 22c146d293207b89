package config

import (
	"errors"
	"strings"

	"github.com/dshills/codepad/internal/renderer/highlight"
)

// Default configuration values.
const (
	DefaultTabSize  = 2
	MaxTabSize      = 16
	DefaultLogLevel = "info"
)

// Config holds all codepad settings.
type Config struct {
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Highlight HighlightConfig `toml:"highlight" yaml:"highlight"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
}

// EditorConfig controls the editing transforms.
type EditorConfig struct {
	// TabSize is the number of spaces in one indent level.
	TabSize int `toml:"tabSize" yaml:"tabSize"`

	// InsertSpaces indents with spaces instead of a tab character.
	InsertSpaces bool `toml:"insertSpaces" yaml:"insertSpaces"`

	// AutoIndent carries the current line's indent over on newline.
	AutoIndent bool `toml:"autoIndent" yaml:"autoIndent"`

	// ReadOnly rejects every editing action.
	ReadOnly bool `toml:"readOnly" yaml:"readOnly"`
}

// TabToken returns the string inserted for one indent level.
func (e EditorConfig) TabToken() string {
	if !e.InsertSpaces {
		return "\t"
	}
	return strings.Repeat(" ", e.TabSize)
}

// HighlightConfig controls highlighted lines.
type HighlightConfig struct {
	// Lines is a highlight spec such as "2,4-6".
	Lines string `toml:"lines" yaml:"lines"`

	// Strict rejects specs containing unparsable tokens.
	Strict bool `toml:"strict" yaml:"strict"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabSize:      DefaultTabSize,
			InsertSpaces: true,
			AutoIndent:   true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "console",
		},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabSize < 1 || c.Editor.TabSize > MaxTabSize {
		errs = append(errs, invalid("editor.tabSize", c.Editor.TabSize, "must be between 1 and 16"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, invalid("logging.level", c.Logging.Level, "must be debug, info, warn or error"))
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, invalid("logging.format", c.Logging.Format, "must be console or json"))
	}

	if c.Highlight.Strict {
		// maxLine 1 keeps the expansion small; only syntax is checked here.
		if _, err := highlight.ParseRangesStrict(c.Highlight.Lines, 1); err != nil {
			errs = append(errs, invalid("highlight.lines", c.Highlight.Lines, err.Error()))
		}
	}

	return errors.Join(errs...)
}
