package vendors

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed vendors.yaml
var tableYAML []byte

// table is populated once from the embedded asset and treated as read-only
// afterwards.
var table map[string]string

func init() {
	if err := yaml.Unmarshal(tableYAML, &table); err != nil {
		panic(fmt.Sprintf("vendors: decode embedded table: %v", err))
	}
}

// Lookup returns the official download URL for a normalized application name.
func Lookup(normalized string) (string, bool) {
	url, ok := table[normalized]
	return url, ok
}

// Len reports the number of known vendors.
func Len() int {
	return len(table)
}
