package commands

import (
	"os"

	"github.com/anonydoc/anonydoc/cmd/anonydoc/opts"
	"github.com/anonydoc/anonydoc/pkg/extract"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// closeStore closes the pseudonym store when one was opened.
func closeStore(o *opts.RootOpts) {
	if o.Store != nil {
		_ = o.Store.Close()
	}
}

// NewPseudonymizeCmd creates the pseudonymize command
func NewPseudonymizeCmd(factory OptsFactory) *cobra.Command {
	var (
		output    string
		tablePath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "pseudonymize <file>",
		Short: "Replace detected entities with reversible pseudonyms",
		Long: `Pseudonymize extracts the document's text, detects entities for the
configured labels, and replaces each with a stable pseudonym (PERSON_1,
LOC_2, ...). The pseudonym table is written to the configured bbolt
store, or to a JSON file given with --table, so the replacement can be
reversed later.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "pseudonymize").Logger().WithContext(ctx)

			o, err := factory(ctx)
			if err != nil {
				return err
			}
			defer closeStore(o)

			if len(o.Config.Labels) == 0 {
				return errors.Errorf("no labels configured: set labels in the config file")
			}

			text, err := extract.Auto(ctx, args[0])
			if err != nil {
				return errors.Errorf("extracting %s: %w", args[0], err)
			}

			result, err := o.NewProcessor().Pseudonymize(ctx, text, o.Config.Labels)
			if err != nil {
				return errors.Errorf("pseudonymizing %s: %w", args[0], err)
			}

			if err := o.SaveRegistry(); err != nil {
				return err
			}
			if tablePath != "" {
				f, err := os.Create(tablePath)
				if err != nil {
					return errors.Errorf("creating table file %s: %w", tablePath, err)
				}
				defer f.Close()
				if err := o.Registry.ExportJSON(f); err != nil {
					return err
				}
			}

			if asJSON {
				return writeResultJSON(output, result)
			}
			return writeOutput(output, result.ProcessedText)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write processed text to file (default stdout)")
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "also export the pseudonym table as JSON")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full processing result as JSON")
	return cmd
}
