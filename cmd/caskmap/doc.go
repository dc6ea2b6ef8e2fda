// Package main hosts the caskmap CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the two pipeline stages (resolve and
// enrich) plus inspection and scaffolding helpers. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on the data path.
//
// Keep this package lean: pipeline behavior lives in the internal packages
// and is surfaced here through dedicated commands and flags.
package main
