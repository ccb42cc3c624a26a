package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColumnMapping renames source feed headers onto the canonical column
// names. Exports from different tracking tools label the same columns
// differently; the mapping lets operators adapt a feed without code
// changes. Headers without an entry pass through unchanged.
type ColumnMapping map[string]string

// Canonical returns the canonical name for a source header.
func (m ColumnMapping) Canonical(header string) string {
	if canonical, ok := m[header]; ok {
		return canonical
	}
	return header
}

// LoadColumnMapping reads a header-to-canonical mapping from a YAML file
// of the form:
//
//	User ID: Clarity user ID
//	Visit date: Date
//
// An empty path yields an empty mapping.
func LoadColumnMapping(path string) (ColumnMapping, error) {
	if path == "" {
		return ColumnMapping{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column mapping file: %w", err)
	}

	mapping := ColumnMapping{}
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse column mapping file: %w", err)
	}
	return mapping, nil
}
