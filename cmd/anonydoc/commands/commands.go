// Package commands holds the anonydoc subcommands. Each command builds its
// dependencies through an OptsFactory so flag parsing happens before any
// config or store is touched.
package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/anonydoc/anonydoc/cmd/anonydoc/opts"
	"github.com/anonydoc/anonydoc/pkg/entity"
	"gitlab.com/tozd/go/errors"
)

// OptsFactory builds the shared options once flags are parsed.
type OptsFactory func(ctx context.Context) (*opts.RootOpts, error)

// writeOutput writes text to path, or stdout when path is empty.
func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text + "\n")
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return errors.Errorf("writing output %s: %w", path, err)
	}
	return nil
}

// writeResultJSON emits the full ProcessingResult as indented JSON.
func writeResultJSON(path string, result *entity.ProcessingResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Errorf("encoding result: %w", err)
	}
	return writeOutput(path, string(data))
}
