package importer

import (
	"fmt"

	"choque/internal/fold"
)

// Reader loads a local spreadsheet file as a table.
type Reader interface {
	Read(path string) (Table, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch fold.Key(format) {
	case "csv", "text":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}
