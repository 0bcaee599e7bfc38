package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"choque/listing"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	Records        []listing.Record
}

// Run reads local export files and assembles them with schema. Record
// ordinals continue across files.
func Run(paths []string, format string, schema Schema) (*Result, error) {
	result := &Result{Records: make([]listing.Record, 0, 256)}
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		table, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(table.Rows)
		result.Records = append(result.Records, Ingest(schema, table, len(result.Records))...)
	}

	return result, nil
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv", "txt":
		return "csv", nil
	case "xlsx", "xlsm":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
