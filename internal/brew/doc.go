// Package brew queries the Homebrew CLI for its installable catalog.
//
// The catalog is the union of the formula and cask name lists. The query is
// deliberately fail-open: any failure to run brew yields an empty catalog
// rather than an error, so a missing or broken brew degrades resolution
// quality without aborting the pipeline.
package brew
