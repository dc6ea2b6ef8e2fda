package enricher

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"caskmap/internal/vendors"
)

// Confidence grades how trustworthy an enrichment result is.
type Confidence string

const (
	// ConfidenceHigh marks a vendor-table hit.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow marks a miss; the URL carries the NotFound sentinel.
	ConfidenceLow Confidence = "low"
)

// NotFound is the literal sentinel emitted for vendor-table misses. Consumers
// match on this exact string, so it must never change shape.
const NotFound = "Not found"

// Record is one unresolved application, before or after enrichment. The URL
// and confidence fields are empty until Enrich fills them.
type Record struct {
	App                 string     `json:"app"`
	Normalized          string     `json:"normalized"`
	OfficialDownloadURL string     `json:"official_download_url,omitempty"`
	Confidence          Confidence `json:"confidence,omitempty"`
}

// Output is the enricher's result document.
type Output struct {
	Unresolved []Record `json:"unresolved"`
}

// Load reads the resolver's output and returns its unresolved bucket. A
// missing file or a document without an unresolved key yields zero records;
// malformed JSON is an error the caller must treat as fatal.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read resolved file: %w", err)
	}

	var document struct {
		Unresolved []Record `json:"unresolved"`
	}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse resolved file %s: %w", path, err)
	}
	return document.Unresolved, nil
}

// Enrich copies the given records, attaches a vendor download URL and
// confidence to each, and sorts the result ascending by app name. The sort is
// stable and byte-ordered, so records with an empty app field come first and
// ties keep their input order. The input slice is never mutated.
func Enrich(records []Record) Output {
	enriched := make([]Record, len(records))
	copy(enriched, records)

	for i := range enriched {
		// Lowercase defensively: the normalized field is already lowercase
		// when produced by the resolver, but hand-edited intermediates are
		// tolerated.
		key := strings.ToLower(enriched[i].Normalized)
		if url, ok := vendors.Lookup(key); ok {
			enriched[i].OfficialDownloadURL = url
			enriched[i].Confidence = ConfidenceHigh
		} else {
			enriched[i].OfficialDownloadURL = NotFound
			enriched[i].Confidence = ConfidenceLow
		}
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].App < enriched[j].App
	})

	return Output{Unresolved: enriched}
}
