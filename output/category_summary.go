package output

import (
	"fmt"
	"strconv"

	"choque/listing"
)

// CategorySummary aggregates one category of a snapshot.
type CategorySummary struct {
	Category  string
	Label     string
	Count     int
	Available int
	Verified  int
	// MinPrice and MaxPrice only consider listings with a parsed price.
	MinPrice int64
	MaxPrice int64
}

// BuildCategorySummaries groups records by category in order of first
// appearance.
func BuildCategorySummaries(records []listing.Record) []CategorySummary {
	if len(records) == 0 {
		return []CategorySummary{}
	}

	index := make(map[string]int)
	summaries := make([]CategorySummary, 0)
	for _, record := range records {
		i, ok := index[record.Category]
		if !ok {
			i = len(summaries)
			index[record.Category] = i
			summaries = append(summaries, CategorySummary{Category: record.Category, Label: record.CategoryLabel})
		}

		summary := &summaries[i]
		summary.Count++
		if record.Status.Available() {
			summary.Available++
		}
		if record.Verified {
			summary.Verified++
		}
		if record.PriceValue > 0 {
			if summary.MinPrice == 0 || record.PriceValue < summary.MinPrice {
				summary.MinPrice = record.PriceValue
			}
			summary.MaxPrice = max(summary.MaxPrice, record.PriceValue)
		}
	}

	return summaries
}

var summaryHeaders = []string{"Category", "Label", "Count", "Available", "Verified", "MinPrice", "MaxPrice"}

func summaryTable(summaries []CategorySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.Category,
			summary.Label,
			strconv.Itoa(summary.Count),
			strconv.Itoa(summary.Available),
			strconv.Itoa(summary.Verified),
			strconv.FormatInt(summary.MinPrice, 10),
			strconv.FormatInt(summary.MaxPrice, 10),
		})
	}
	return rows
}

// WriteCategorySummaries writes summaries as csv or excel.
func WriteCategorySummaries(path, format string, summaries []CategorySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeCSV(path, summaryHeaders, summaryTable(summaries))
	case "excel", "xlsx":
		return writeExcel(path, "Summary", summaryHeaders, summaryTable(summaries))
	default:
		return fmt.Errorf("unsupported summary format: %s", format)
	}
}
