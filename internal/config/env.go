package config

import (
	"strconv"
)

// EnvPrefix is the prefix of all codepad environment variables.
const EnvPrefix = "CODEPAD_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type envSetting struct {
	name string
	path string
	set  func(c *Config, v string) error
}

var envSettings = []envSetting{
	{"TAB_SIZE", "editor.tabSize", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.TabSize = n
		return nil
	}},
	{"INSERT_SPACES", "editor.insertSpaces", boolSetter(func(c *Config) *bool { return &c.Editor.InsertSpaces })},
	{"AUTO_INDENT", "editor.autoIndent", boolSetter(func(c *Config) *bool { return &c.Editor.AutoIndent })},
	{"READ_ONLY", "editor.readOnly", boolSetter(func(c *Config) *bool { return &c.Editor.ReadOnly })},
	{"HIGHLIGHT", "highlight.lines", func(c *Config, v string) error {
		c.Highlight.Lines = v
		return nil
	}},
	{"LOG_LEVEL", "logging.level", func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	}},
	{"LOG_FORMAT", "logging.format", func(c *Config, v string) error {
		c.Logging.Format = v
		return nil
	}},
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// ApplyEnv overrides settings from CODEPAD_* variables found by lookup.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for _, s := range envSettings {
		v, ok := lookup(EnvPrefix + s.name)
		if !ok {
			continue
		}
		if err := s.set(cfg, v); err != nil {
			return invalid(s.path, v, "from "+EnvPrefix+s.name+": "+err.Error())
		}
	}
	return nil
}
