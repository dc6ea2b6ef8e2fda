// Package resolver maps free-text application names to installable Homebrew
// package names.
//
// Matching is a boolean membership test of the normalized name against the
// catalog; there is no fuzzy matching and no candidate ranking. Applications
// split into exactly two buckets, installable and unresolved, preserving
// input order within each.
package resolver
