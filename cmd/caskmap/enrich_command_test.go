package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"caskmap/internal/enricher"
)

func TestEnrichCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	resolvedPath := filepath.Join(dir, "resolved.json")
	resolved := `{
  "brew_installable": [],
  "unresolved": [
    {"app": "Zoom", "normalized": "zoom"},
    {"app": "Airtable", "normalized": "airtable"},
    {"app": "Discord", "normalized": "discord"}
  ]
}`
	if err := os.WriteFile(resolvedPath, []byte(resolved), 0o644); err != nil {
		t.Fatalf("write resolved: %v", err)
	}
	outputPath := filepath.Join(dir, "enriched.json")

	_, err := runCLI(t, []string{
		"--config", cfgPath,
		"enrich",
		"--resolved", resolvedPath,
		"--output", outputPath,
	})
	if err != nil {
		t.Fatalf("enrich: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var out enricher.Output
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if len(out.Unresolved) != 3 {
		t.Fatalf("expected 3 records, got %+v", out.Unresolved)
	}
	gotApps := []string{out.Unresolved[0].App, out.Unresolved[1].App, out.Unresolved[2].App}
	if gotApps[0] != "Airtable" || gotApps[1] != "Discord" || gotApps[2] != "Zoom" {
		t.Fatalf("expected records sorted by app, got %v", gotApps)
	}

	for _, record := range out.Unresolved {
		switch record.Normalized {
		case "discord":
			if record.Confidence != enricher.ConfidenceHigh || record.OfficialDownloadURL != "https://discord.com/download" {
				t.Fatalf("unexpected discord enrichment: %+v", record)
			}
		default:
			if record.Confidence != enricher.ConfidenceLow || record.OfficialDownloadURL != enricher.NotFound {
				t.Fatalf("unexpected enrichment for %s: %+v", record.Normalized, record)
			}
		}
	}

	// Source file is untouched.
	after, err := os.ReadFile(resolvedPath)
	if err != nil {
		t.Fatalf("re-read resolved: %v", err)
	}
	if string(after) != resolved {
		t.Fatalf("enrich mutated its input file")
	}
}

func TestEnrichCommandMissingResolvedFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	outputPath := filepath.Join(dir, "enriched.json")

	_, err := runCLI(t, []string{
		"--config", cfgPath,
		"enrich",
		"--resolved", filepath.Join(dir, "absent.json"),
		"--output", outputPath,
	})
	if err != nil {
		t.Fatalf("enrich: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "{\n  \"unresolved\": []\n}\n" {
		t.Fatalf("unexpected output: %q", string(data))
	}
}

func TestEnrichCommandMalformedResolvedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	resolvedPath := filepath.Join(dir, "resolved.json")
	if err := os.WriteFile(resolvedPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write resolved: %v", err)
	}
	outputPath := filepath.Join(dir, "enriched.json")

	_, err := runCLI(t, []string{
		"--config", cfgPath,
		"enrich",
		"--resolved", resolvedPath,
		"--output", outputPath,
	})
	if err == nil {
		t.Fatalf("expected fatal error for malformed input")
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Fatalf("no output file should be written on the fatal path")
	}
}
