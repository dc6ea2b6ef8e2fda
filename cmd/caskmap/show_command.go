package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"caskmap/internal/enricher"
	"caskmap/internal/resolver"
)

// pipelineDocument is the superset of both pipeline file shapes; show decodes
// into it and renders whichever sections are present.
type pipelineDocument struct {
	BrewInstallable []resolver.ResolvedRecord `json:"brew_installable"`
	Unresolved      []enricher.Record         `json:"unresolved"`
}

func newShowCommand() *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "show",
		Short:       "Render a resolver or enricher output file as a table",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read pipeline file: %w", err)
			}

			var document pipelineDocument
			if err := json.Unmarshal(data, &document); err != nil {
				return fmt.Errorf("parse pipeline file %s: %w", file, err)
			}

			if asJSON {
				return writeJSON(cmd, document)
			}

			out := cmd.OutOrStdout()
			if len(document.BrewInstallable) > 0 {
				rows := make([][]string, 0, len(document.BrewInstallable))
				for _, record := range document.BrewInstallable {
					rows = append(rows, []string{record.App, record.Command})
				}
				fmt.Fprintln(out, renderTable([]string{"App", "Brew Command"}, rows))
			}

			if len(document.Unresolved) > 0 {
				enriched := false
				for _, record := range document.Unresolved {
					if record.Confidence != "" {
						enriched = true
						break
					}
				}

				headers := []string{"App", "Normalized"}
				if enriched {
					headers = append(headers, "Download URL", "Confidence")
				}
				rows := make([][]string, 0, len(document.Unresolved))
				for _, record := range document.Unresolved {
					row := []string{record.App, record.Normalized}
					if enriched {
						row = append(row, record.OfficialDownloadURL, string(record.Confidence))
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(out, renderTable(headers, rows))
			}

			fmt.Fprintf(out, "%d installable, %d unresolved\n",
				len(document.BrewInstallable), len(document.Unresolved))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Pipeline JSON file to display")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Re-emit the parsed document as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
