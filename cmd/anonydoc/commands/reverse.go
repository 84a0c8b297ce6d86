package commands

import (
	"os"

	"github.com/anonydoc/anonydoc/pkg/pseudonym"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewReverseCmd creates the reverse command
func NewReverseCmd(factory OptsFactory) *cobra.Command {
	var (
		output    string
		tablePath string
	)

	cmd := &cobra.Command{
		Use:   "reverse <file>",
		Short: "Restore original values in a pseudonymized text",
		Long: `Reverse replaces every known pseudonym in the file with the original
value it stands for. Mappings come from the configured bbolt store, or
from a JSON pseudonym table given with --table. Unknown pseudonyms are
left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "reverse").Logger().WithContext(ctx)

			o, err := factory(ctx)
			if err != nil {
				return err
			}
			defer closeStore(o)

			registry := o.Registry
			if tablePath != "" {
				f, err := os.Open(tablePath)
				if err != nil {
					return errors.Errorf("opening table file %s: %w", tablePath, err)
				}
				defer f.Close()
				registry, err = pseudonym.ImportJSON(f)
				if err != nil {
					return errors.Errorf("importing table %s: %w", tablePath, err)
				}
			}

			if registry.Len() == 0 {
				return errors.Errorf("no pseudonym mappings available: configure a store or pass --table")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Errorf("reading %s: %w", args[0], err)
			}

			return writeOutput(output, registry.Reverse(string(data)))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write restored text to file (default stdout)")
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "JSON pseudonym table to reverse with")
	return cmd
}
