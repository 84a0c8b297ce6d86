package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewTableCmd creates the table command
func NewTableCmd(factory OptsFactory) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Export the stored pseudonym table as JSON",
		Long: `Table dumps the pseudonym-to-original mappings from the configured
bbolt store as JSON, in the format accepted by 'reverse --table'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "table").Logger().WithContext(ctx)

			o, err := factory(ctx)
			if err != nil {
				return err
			}
			defer closeStore(o)

			if o.Store == nil {
				return errors.Errorf("no store configured: set store_path in the config file or pass --store")
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return o.Registry.ExportJSON(w)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to file (default stdout)")
	return cmd
}
