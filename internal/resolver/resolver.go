package resolver

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/scylladb/go-set/strset"

	"caskmap/internal/fileutil"
	"caskmap/internal/naming"
)

// ResolvedRecord pairs an application name with the brew package name that
// installs it.
type ResolvedRecord struct {
	App     string `json:"app"`
	Command string `json:"command"`
}

// UnresolvedRecord pairs an application name with its normalized form for
// downstream enrichment.
type UnresolvedRecord struct {
	App        string `json:"app"`
	Normalized string `json:"normalized"`
}

// Result is the resolver's two-bucket output. Both slices are always
// non-nil so the JSON encoding emits empty arrays rather than null.
type Result struct {
	BrewInstallable []ResolvedRecord   `json:"brew_installable"`
	Unresolved      []UnresolvedRecord `json:"unresolved"`
}

// ReadAppList reads the raw application list: one name per non-empty trimmed
// line, duplicates preserved. A missing file is treated as an empty list, not
// an error.
func ReadAppList(path string) ([]string, error) {
	lines, err := fileutil.ReadLines(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read app list: %w", err)
	}
	return lines, nil
}

// Resolve partitions apps by catalog membership of their normalized names.
// Input order is preserved within each bucket and no app lands in both.
func Resolve(apps []string, catalog *strset.Set) Result {
	result := Result{
		BrewInstallable: []ResolvedRecord{},
		Unresolved:      []UnresolvedRecord{},
	}
	if catalog == nil {
		catalog = strset.New()
	}

	for _, app := range apps {
		normalized := naming.Normalize(app)
		if catalog.Has(normalized) {
			result.BrewInstallable = append(result.BrewInstallable, ResolvedRecord{
				App:     app,
				Command: normalized,
			})
			continue
		}
		result.Unresolved = append(result.Unresolved, UnresolvedRecord{
			App:        app,
			Normalized: normalized,
		})
	}
	return result
}
