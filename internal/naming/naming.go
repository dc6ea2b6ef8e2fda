package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// separatorReplacer unifies the separators users type with the hyphens
// Homebrew token names use.
var separatorReplacer = strings.NewReplacer(" ", "-", "_", "-")

// Normalize converts a free-text application name into the form used for
// catalog membership tests: lowercased, with spaces and underscores replaced
// by hyphens. The transform is total and idempotent; it never trims, so line
// trimming belongs to whoever reads the input.
func Normalize(name string) string {
	lowered := cases.Lower(language.Und).String(name)
	return separatorReplacer.Replace(lowered)
}
