package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anonydoc/anonydoc/cmd/anonydoc/opts"
	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/anonydoc/anonydoc/pkg/extract"
	"github.com/anonydoc/anonydoc/pkg/log"
	"github.com/anonydoc/anonydoc/pkg/processor"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// NewBatchCmd creates the batch command
func NewBatchCmd(factory OptsFactory) *cobra.Command {
	var (
		mode    string
		outDir  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch <glob>",
		Short: "Process every document matching a glob pattern",
		Long: `Batch runs anonymize or pseudonymize over every file matched by a
doublestar glob (for example 'docs/**/*.pdf'). Files are processed
concurrently and share one pseudonym registry, so the same original
value maps to the same pseudonym across the whole batch.

Processed text is written next to each source file with a .redacted
suffix, or into --out-dir preserving the base name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "batch").Logger().WithContext(ctx)

			if mode != "anonymize" && mode != "pseudonymize" {
				return errors.Errorf("invalid mode %q: want anonymize or pseudonymize", mode)
			}

			o, err := factory(ctx)
			if err != nil {
				return err
			}
			defer closeStore(o)

			if mode == "anonymize" && len(o.Config.Tags) == 0 {
				return errors.Errorf("no tags configured: set tags in the config file")
			}
			if mode == "pseudonymize" && len(o.Config.Labels) == 0 {
				return errors.Errorf("no labels configured: set labels in the config file")
			}

			paths, err := doublestar.FilepathGlob(args[0])
			if err != nil {
				return errors.Errorf("expanding glob %s: %w", args[0], err)
			}
			if len(paths) == 0 {
				return errors.Errorf("no files match %s", args[0])
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return errors.Errorf("creating output dir %s: %w", outDir, err)
				}
			}

			o.UserLogger.Header(fmt.Sprintf("Processing %d document(s)", len(paths)))

			proc := o.NewProcessor()
			eg, gctx := errgroup.WithContext(ctx)
			eg.SetLimit(workers)

			for _, path := range paths {
				path := path
				eg.Go(func() error {
					op := log.DocOperation{Path: path, Mode: mode}
					op.Err = processOne(gctx, proc, o, mode, path, outDir, &op)
					o.UserLogger.LogDocOperation(op)
					// A failed document is reported, not fatal for the batch.
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			o.UserLogger.Summary()
			return o.SaveRegistry()
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "pseudonymize", "processing mode: anonymize or pseudonymize")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for processed files (default alongside sources)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of documents processed concurrently")
	return cmd
}

// processOne extracts, processes and writes a single document.
func processOne(ctx context.Context, proc *processor.Processor, o *opts.RootOpts, mode, path, outDir string, op *log.DocOperation) error {
	text, err := extract.Auto(ctx, path)
	if err != nil {
		return errors.Errorf("extracting: %w", err)
	}

	var result *entity.ProcessingResult
	if mode == "anonymize" {
		result, err = proc.Anonymize(ctx, text, o.Config.Tags)
	} else {
		result, err = proc.Pseudonymize(ctx, text, o.Config.Labels)
	}
	if err != nil {
		return errors.Errorf("processing: %w", err)
	}
	op.Entities = len(result.Entities)

	return writeOutput(batchOutputPath(path, outDir), result.ProcessedText)
}

// batchOutputPath derives where a processed document lands.
func batchOutputPath(path, outDir string) string {
	if outDir != "" {
		return filepath.Join(outDir, filepath.Base(path)+".redacted.txt")
	}
	return path + ".redacted.txt"
}
