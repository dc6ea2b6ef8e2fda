package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShowCommandRendersResolverOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolved.json")
	document := `{
  "brew_installable": [{"app": "Visual Studio Code", "command": "visual-studio-code"}],
  "unresolved": [{"app": "Google Chrome", "normalized": "google-chrome"}]
}`
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCLI(t, []string{"show", "--file", path})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Visual Studio Code")
	requireContains(t, out, "visual-studio-code")
	requireContains(t, out, "Google Chrome")
	requireContains(t, out, "1 installable, 1 unresolved")
}

func TestShowCommandRendersEnrichedOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enriched.json")
	document := `{
  "unresolved": [
    {"app": "Discord", "normalized": "discord", "official_download_url": "https://discord.com/download", "confidence": "high"}
  ]
}`
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCLI(t, []string{"show", "--file", path})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "https://discord.com/download")
	requireContains(t, out, "Confidence")
	requireContains(t, out, "0 installable, 1 unresolved")
}

func TestShowCommandJSONPassthrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enriched.json")
	document := `{"unresolved": [{"app": "Zoom", "normalized": "zoom", "official_download_url": "Not found", "confidence": "low"}]}`
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCLI(t, []string{"show", "--file", path, "--json"})
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	requireContains(t, out, `"official_download_url": "Not found"`)
}

func TestShowCommandMissingFile(t *testing.T) {
	if _, err := runCLI(t, []string{"show", "--file", filepath.Join(t.TempDir(), "absent.json")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
