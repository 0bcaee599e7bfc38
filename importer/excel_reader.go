package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the first sheet of a downloaded workbook.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) (Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return Table{}, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return Table{}, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}

	var table Table
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
		}
		if isBlankRow(cells) {
			continue
		}
		if table.Header == nil {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}
