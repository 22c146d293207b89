package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/codepad/internal/dispatcher"
	"github.com/dshills/codepad/internal/engine/edit"
)

// bufferOptions select the input buffer and the selection within it.
type bufferOptions struct {
	File  string `short:"f" long:"file" description:"Read the buffer from file instead of stdin"`
	Start int    `short:"s" long:"start" default:"0" description:"Selection start byte offset"`
	End   int    `short:"e" long:"end" default:"-1" description:"Selection end byte offset (defaults to --start)"`
	JSON  bool   `long:"json" description:"Print the resulting snapshot as JSON"`
}

// snapshotOutput is the --json form of a command result.
type snapshotOutput struct {
	edit.Snapshot
	Action  string `json:"action,omitempty"`
	Changed bool   `json:"changed"`
	ID      string `json:"id,omitempty"`
}

func (a *app) readText(file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "" || file == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("reading buffer: %w", err)
	}
	return string(data), nil
}

func (a *app) readSnapshot(opts bufferOptions) (edit.Snapshot, error) {
	text, err := a.readText(opts.File)
	if err != nil {
		return edit.Snapshot{}, err
	}
	end := opts.End
	if end < 0 {
		end = opts.Start
	}
	return edit.NewSnapshot(text, opts.Start, end), nil
}

func (a *app) writeResult(opts bufferOptions, res dispatcher.Result) error {
	if !opts.JSON {
		_, err := io.WriteString(a.stdout, res.After.Value)
		return err
	}
	return a.writeJSON(snapshotOutput{
		Snapshot: res.After,
		Action:   string(res.Action),
		Changed:  res.Changed,
		ID:       res.ID,
	})
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
