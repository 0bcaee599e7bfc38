package output

import (
	"fmt"

	"choque/listing"

	"github.com/xuri/excelize/v2"
)

const listingsSheet = "Listings"

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, records []listing.Record) error {
	headers, rows := recordTable(records)
	return writeExcel(path, listingsSheet, headers, rows)
}

func writeExcel(path, sheetName string, headers []string, rows [][]string) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, sheetName); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}
	sheet = sheetName

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, values := range rows {
		row := i + 2
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
