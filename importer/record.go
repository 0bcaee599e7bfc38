package importer

import (
	"strings"

	"choque/internal/fold"
)

// FieldSpec describes how to locate one canonical field in a source and what
// to use when the source has nothing for it.
type FieldSpec struct {
	Name     string
	Synonyms []string
	Default  string
	// Normalize maps a raw cell to its canonical form. An empty result means
	// "no value" and is replaced by Default.
	Normalize func(string) string
}

// Value runs raw through the field normalizer and applies the default.
func (s FieldSpec) Value(raw string) string {
	normalize := s.Normalize
	if normalize == nil {
		normalize = collapseSpaces
	}
	return WithDefault(normalize(raw), s.Default)
}

func (s FieldSpec) matches(headerKey string) bool {
	if headerKey == "" {
		return false
	}
	if fold.Key(s.Name) == headerKey {
		return true
	}
	for _, synonym := range s.Synonyms {
		if fold.Key(synonym) == headerKey {
			return true
		}
	}
	return false
}

// ColumnIndex maps canonical field names to zero-based column positions.
// Fields without a matching header are absent.
type ColumnIndex map[string]int

// ResolveColumns matches each FieldSpec against the header row and records the
// first matching column. Matching compares folded keys, so case, diacritics
// and separators in the header do not matter.
func ResolveColumns(header []string, specs []FieldSpec) ColumnIndex {
	keys := make([]string, len(header))
	for i, cell := range header {
		keys[i] = fold.Key(cell)
	}

	columns := make(ColumnIndex, len(specs))
	for _, spec := range specs {
		for i, key := range keys {
			if spec.matches(key) {
				columns[spec.Name] = i
				break
			}
		}
	}
	return columns
}

// Cell returns the row value for a field. Unresolved fields and short rows
// read as empty.
func (c ColumnIndex) Cell(row []string, name string) string {
	index, ok := c[name]
	if !ok || index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// WithDefault returns value, or defaultValue when value is blank.
func WithDefault(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func collapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
