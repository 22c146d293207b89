package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := cfg.Editor.TabToken(); got != "  " {
		t.Errorf("TabToken() = %q, want two spaces", got)
	}
}

func TestTabToken(t *testing.T) {
	tests := []struct {
		editor EditorConfig
		want   string
	}{
		{EditorConfig{TabSize: 4, InsertSpaces: true}, "    "},
		{EditorConfig{TabSize: 1, InsertSpaces: true}, " "},
		{EditorConfig{TabSize: 4, InsertSpaces: false}, "\t"},
	}
	for _, tt := range tests {
		if got := tt.editor.TabToken(); got != tt.want {
			t.Errorf("TabToken(%+v) = %q, want %q", tt.editor, got, tt.want)
		}
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "codepad.toml", `
[editor]
tabSize = 4
insertSpaces = false

[highlight]
lines = "2,4-6"

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Editor.TabSize = 4
	want.Editor.InsertSpaces = false
	want.Highlight.Lines = "2,4-6"
	want.Logging.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "codepad.yaml", `
editor:
  tabSize: 8
  autoIndent: false
logging:
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabSize != 8 {
		t.Errorf("TabSize = %d, want 8", cfg.Editor.TabSize)
	}
	if cfg.Editor.AutoIndent {
		t.Error("AutoIndent = true, want false")
	}
	if !cfg.Editor.InsertSpaces {
		t.Error("InsertSpaces lost its default")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, "bad.toml", "[editor\ntabSize = 4\n")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
	if perr.Line < 1 {
		t.Errorf("ParseError.Line = %d, want a position", perr.Line)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "codepad.ini", "tabSize=4")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadValidationError(t *testing.T) {
	path := writeFile(t, "codepad.toml", "[editor]\ntabSize = 40\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Load() error = %v, want ErrInvalidValue", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tab size", func(c *Config) { c.Editor.TabSize = 0 }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, false},
		{"lenient bad spec", func(c *Config) { c.Highlight.Lines = "1,x" }, true},
		{"strict bad spec", func(c *Config) {
			c.Highlight.Lines = "1,x"
			c.Highlight.Strict = true
		}, false},
		{"strict good spec", func(c *Config) {
			c.Highlight.Lines = "1,3-900"
			c.Highlight.Strict = true
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Validate() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CODEPAD_TAB_SIZE":      "3",
		"CODEPAD_INSERT_SPACES": "false",
		"CODEPAD_HIGHLIGHT":     "1-2",
		"CODEPAD_LOG_LEVEL":     "warn",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Editor.TabSize != 3 || cfg.Editor.InsertSpaces {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Highlight.Lines != "1-2" {
		t.Errorf("Highlight.Lines = %q", cfg.Highlight.Lines)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}

	env["CODEPAD_AUTO_INDENT"] = "maybe"
	if err := ApplyEnv(Default(), lookup); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ApplyEnv() error = %v, want ErrInvalidValue", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "codepad.toml", "[editor]\ntabSize = 4\n")
	t.Setenv("CODEPAD_TAB_SIZE", "6")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabSize != 6 {
		t.Errorf("TabSize = %d, want 6", cfg.Editor.TabSize)
	}
}
