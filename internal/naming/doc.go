// Package naming derives catalog-compatible identifiers from free-text
// application names.
//
// The transform is deliberately simple: Unicode lowercasing plus separator
// unification. It carries no fuzzy matching; callers that need anything
// smarter should not get it from here.
package naming
