package importer

import (
	"fmt"
	"os"
)

// CSVReader reads a local export with the same parser used for fetched
// sources, so local files and remote sheets agree on quoting rules.
type CSVReader struct{}

func (r *CSVReader) Read(path string) (Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv file %s: %w", path, err)
	}
	return ParseRecords(string(content)), nil
}
