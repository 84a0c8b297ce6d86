package commands

import (
	"github.com/anonydoc/anonydoc/pkg/extract"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewAnonymizeCmd creates the anonymize command
func NewAnonymizeCmd(factory OptsFactory) *cobra.Command {
	var (
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "anonymize <file>",
		Short: "Replace detected entities with fixed tags",
		Long: `Anonymize extracts the document's text, detects entities for every
label in the configured tags mapping, and replaces each with its tag.
Labels without a configured tag pass through unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "anonymize").Logger().WithContext(ctx)

			o, err := factory(ctx)
			if err != nil {
				return err
			}
			defer closeStore(o)

			if len(o.Config.Tags) == 0 {
				return errors.Errorf("no tags configured: set tags in the config file")
			}

			text, err := extract.Auto(ctx, args[0])
			if err != nil {
				return errors.Errorf("extracting %s: %w", args[0], err)
			}

			result, err := o.NewProcessor().Anonymize(ctx, text, o.Config.Tags)
			if err != nil {
				return errors.Errorf("anonymizing %s: %w", args[0], err)
			}

			if asJSON {
				return writeResultJSON(output, result)
			}
			return writeOutput(output, result.ProcessedText)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write processed text to file (default stdout)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full processing result as JSON")
	return cmd
}
