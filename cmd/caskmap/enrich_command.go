package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"caskmap/internal/enricher"
	"caskmap/internal/fileutil"
	"caskmap/internal/logging"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var resolved string
	var output string

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Attach vendor download URLs to unresolved applications",
		Long: `Enrich reads the resolver's output, looks each unresolved application up in
the built-in vendor table, and writes the enriched list sorted by application
name.

A missing input file or an input without an unresolved key yields an empty
list. Malformed JSON is a fatal error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			records, err := enricher.Load(resolved)
			if err != nil {
				return err
			}

			out := enricher.Enrich(records)
			hits := 0
			for _, record := range out.Unresolved {
				if record.Confidence == enricher.ConfidenceHigh {
					hits++
				}
			}
			logger.Info("enrichment complete",
				logging.Int("unresolved", len(out.Unresolved)),
				logging.Int("vendor_hits", hits),
			)

			if err := fileutil.WriteJSONAtomic(output, out, cfg.IndentString()); err != nil {
				return fmt.Errorf("write enrichment output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resolved, "resolved", "", "Path to the resolver's output JSON")
	cmd.Flags().StringVar(&output, "output", "", "Destination path for the enriched JSON")
	_ = cmd.MarkFlagRequired("resolved")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
