package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"caskmap/internal/brew"
	"caskmap/internal/logging"
	"caskmap/internal/vendors"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the external brew dependency",
		Long: `Doctor reports whether the configured brew binary is available and,
with --probe, queries the live catalog to show its size. The resolver itself
never fails on a missing brew; doctor exists so a silent empty catalog can be
diagnosed explicitly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

			path, err := brew.Detect(cfg.Brew.Binary)
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("brew binary", statusError,
					fmt.Sprintf("%q not found on PATH; resolve will run with an empty catalog", cfg.Brew.Binary), colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("brew binary", statusOK, path, colorize))
			}

			fmt.Fprintln(out, renderStatusLine("vendor table", statusOK,
				fmt.Sprintf("%d entries compiled in", vendors.Len()), colorize))

			if probe {
				client, err := brew.New(cfg.Brew.Binary, cfg.Brew.QueryTimeoutSeconds, brew.WithLogger(logging.NewNop()))
				if err != nil {
					return fmt.Errorf("create brew client: %w", err)
				}
				catalog := client.Catalog(cmd.Context())
				kind := statusOK
				detail := fmt.Sprintf("%d installable names", catalog.Size())
				if catalog.IsEmpty() {
					kind = statusWarn
					detail = "catalog query returned nothing; every app will be unresolved"
				}
				fmt.Fprintln(out, renderStatusLine("catalog probe", kind, detail, colorize))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Query the live brew catalog")

	return cmd
}
