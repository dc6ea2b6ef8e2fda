// Package vendors holds the static table of official vendor download pages
// for applications Homebrew cannot install.
//
// The table is an embedded asset decoded once at startup and never mutated;
// there is no runtime registration surface.
package vendors
