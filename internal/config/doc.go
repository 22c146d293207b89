// Package config provides codepad's configuration.
//
// Configuration is resolved in three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← CODEPAD_* (highest priority)
//	├─────────────────────────────┤
//	│  2. Config File             │  ← codepad.toml or codepad.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← lowest priority
//	└─────────────────────────────┘
//
// The file format is chosen by extension: .toml files are decoded with
// go-toml, .yaml and .yml files with yaml.v3. A missing file is not an
// error; the defaults are used.
//
// Example codepad.toml:
//
//	[editor]
//	tabSize = 4
//	insertSpaces = true
//	autoIndent = true
//
//	[highlight]
//	lines = "2,4-6"
//
//	[logging]
//	level = "debug"
//
// The watcher sub-package reloads the file when it changes on disk.
package config
