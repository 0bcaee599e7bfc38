package importer

import "strings"

const (
	fieldSeparator = ','
	quoteChar      = '"'
	byteOrderMark  = "\ufeff"
)

// Table is one delimited-text source split into its header row and data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseRecords splits raw spreadsheet export text into rows of trimmed,
// unquoted fields. Rows are separated by line breaks; rows with no content are
// skipped. The first remaining row becomes the header.
func ParseRecords(text string) Table {
	text = strings.TrimPrefix(text, byteOrderMark)

	var table Table
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := SplitLine(line)
		if isBlankRow(fields) {
			continue
		}
		if table.Header == nil {
			table.Header = fields
			continue
		}
		table.Rows = append(table.Rows, fields)
	}
	return table
}

// SplitLine splits one line on commas that are outside a quoted span. A comma
// inside a field that has seen an odd number of quotes is kept as content.
// Lines with unbalanced quotes fall back to splitting on every comma.
func SplitLine(line string) []string {
	if strings.Count(line, string(quoteChar))%2 != 0 {
		parts := strings.Split(line, string(fieldSeparator))
		for i, part := range parts {
			parts[i] = cleanField(part)
		}
		return parts
	}

	fields := make([]string, 0, 8)
	var current strings.Builder
	quotes := 0
	for _, r := range line {
		switch {
		case r == quoteChar:
			quotes++
		case r == fieldSeparator && quotes%2 == 0:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
			quotes = 0
			continue
		}
		current.WriteRune(r)
	}
	fields = append(fields, cleanField(current.String()))
	return fields
}

// cleanField strips one layer of surrounding quotes and unescapes doubled
// quotes.
func cleanField(raw string) string {
	field := strings.TrimSpace(raw)
	if len(field) >= 2 && field[0] == quoteChar && field[len(field)-1] == quoteChar {
		field = field[1 : len(field)-1]
	}
	field = strings.ReplaceAll(field, `""`, `"`)
	return strings.TrimSpace(field)
}

func isBlankRow(fields []string) bool {
	for _, field := range fields {
		if field != "" {
			return false
		}
	}
	return true
}
