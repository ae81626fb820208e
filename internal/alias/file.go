package alias

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// aliasFile is the on-disk shape of an alias override file: semantic field
// name to additional literal header names.
//
//	doc_number:
//	  - "Order No"
//	sku:
//	  - "Part Number"
type aliasFile map[string][]string

// LoadTable returns the default table extended with the aliases from the
// YAML file at path. Extra aliases are appended after the built-in ones, so
// built-in priority is preserved. A missing file returns the default table
// without error; a malformed file or an unknown field name is an error.
func LoadTable(path string) (Table, error) {
	table := DefaultTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("error reading alias file: %w", err)
	}

	var extra aliasFile
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("error parsing alias file %s: %w", path, err)
	}

	known := make(map[Field]bool, len(Fields))
	for _, f := range Fields {
		known[f] = true
	}

	for name, aliases := range extra {
		field := Field(name)
		if !known[field] {
			return nil, fmt.Errorf("alias file %s: unknown field %q", path, name)
		}
		table[field] = appendMissing(table[field], aliases)
	}
	return table, nil
}

func appendMissing(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a] = true
	}
	for _, a := range extra {
		if a != "" && !seen[a] {
			existing = append(existing, a)
			seen[a] = true
		}
	}
	return existing
}
