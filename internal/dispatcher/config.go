package dispatcher

import "github.com/dshills/codepad/internal/config"

// Config holds the editing settings a Dispatcher applies.
type Config struct {
	// TabToken is inserted or removed per indent level.
	TabToken string

	// AutoIndent carries the current indent over on newline.
	AutoIndent bool

	// ReadOnly rejects all actions with ErrReadOnly.
	ReadOnly bool
}

// DefaultConfig returns settings matching config.Default.
func DefaultConfig() Config {
	return ConfigFrom(config.Default())
}

// ConfigFrom derives dispatcher settings from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		TabToken:   cfg.Editor.TabToken(),
		AutoIndent: cfg.Editor.AutoIndent,
		ReadOnly:   cfg.Editor.ReadOnly,
	}
}
