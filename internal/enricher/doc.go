// Package enricher attaches best-effort vendor download URLs to applications
// the resolver could not map to Homebrew packages.
//
// Enrichment is pure local computation over the resolver's unresolved bucket:
// a static vendor table lookup plus a deterministic sort. Nothing here talks
// to the network.
package enricher
