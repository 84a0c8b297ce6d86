package main

import (
	"context"
	"os"

	"github.com/anonydoc/anonydoc/cmd/anonydoc/commands"
	"github.com/anonydoc/anonydoc/cmd/anonydoc/opts"
	"github.com/anonydoc/anonydoc/pkg/config"
	"github.com/anonydoc/anonydoc/pkg/log"
	"github.com/anonydoc/anonydoc/pkg/pseudonym"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	storePath  string
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Optional .env next to the working directory; absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if storePath != "" {
		cfg.StorePath = storePath
	}

	o := &opts.RootOpts{
		Config:     cfg,
		Registry:   pseudonym.NewRegistry(),
		UserLogger: log.New(os.Stdout, zerolog.InfoLevel),
	}

	if cfg.StorePath != "" {
		store, err := pseudonym.OpenBolt(cfg.StorePath)
		if err != nil {
			return nil, errors.Errorf("opening pseudonym store: %w", err)
		}
		reg, err := store.Load()
		if err != nil {
			return nil, errors.Errorf("loading pseudonym store: %w", err)
		}
		o.Store = store
		o.Registry = reg
	}

	return o, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".anonydoc.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&storePath, "store", "", "bbolt pseudonym store path (overrides config)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// NewRootCmd builds the anonydoc command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "anonydoc",
		Short: "Redact or pseudonymize sensitive spans in documents",
		Long: `anonydoc detects sensitive entities in documents and either replaces
them with fixed tags (anonymize) or with reversible, uniquely generated
pseudonyms (pseudonymize). Pseudonym tables can be exported and imported
so pseudonymization can be reversed later, in another process.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}
	addRootFlags(root)

	root.AddCommand(
		commands.NewAnonymizeCmd(newRootOpts),
		commands.NewPseudonymizeCmd(newRootOpts),
		commands.NewReverseCmd(newRootOpts),
		commands.NewBatchCmd(newRootOpts),
		commands.NewTableCmd(newRootOpts),
	)
	return root
}
