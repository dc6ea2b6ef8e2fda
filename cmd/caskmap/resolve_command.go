package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"caskmap/internal/brew"
	"caskmap/internal/fileutil"
	"caskmap/internal/logging"
	"caskmap/internal/resolver"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var appsRaw string
	var brewState string
	var output string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve application names against the Homebrew catalog",
		Long: `Resolve reads a newline-delimited list of application names, queries brew
for its formula and cask catalogs, and splits the list into installable and
unresolved buckets.

A missing input file yields two empty buckets. A failed catalog query yields
an empty catalog, sending every application to the unresolved bucket; neither
case fails the run.`,
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

			client, err := brew.New(cfg.Brew.Binary, cfg.Brew.QueryTimeoutSeconds, brew.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("create brew client: %w", err)
			}

			apps, err := resolver.ReadAppList(appsRaw)
			if err != nil {
				return err
			}
			if len(apps) == 0 {
				logger.Warn("no applications to resolve", logging.String("apps_raw", appsRaw))
			}

			catalog := client.Catalog(cmd.Context())
			logger.Info("brew catalog loaded",
				logging.String("binary", client.Binary()),
				logging.Int("entries", catalog.Size()),
			)

			result := resolver.Resolve(apps, catalog)
			logger.Info("resolution complete",
				logging.Int("apps", len(apps)),
				logging.Int("brew_installable", len(result.BrewInstallable)),
				logging.Int("unresolved", len(result.Unresolved)),
			)

			if err := fileutil.WriteJSONAtomic(output, result, cfg.IndentString()); err != nil {
				return fmt.Errorf("write resolution output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appsRaw, "apps-raw", "", "Path to the newline-delimited application list")
	cmd.Flags().StringVar(&brewState, "brew-state", "", "Path to a Homebrew state snapshot (reserved, not read)")
	cmd.Flags().StringVar(&output, "output", "", "Destination path for the resolution JSON")
	_ = cmd.MarkFlagRequired("apps-raw")
	_ = cmd.MarkFlagRequired("brew-state")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
