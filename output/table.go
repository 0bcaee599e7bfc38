package output

import (
	"slices"
	"strconv"

	"choque/listing"
)

var recordHeaders = []string{
	"ID", "Kind", "Title", "Price", "PriceValue", "Category", "CategoryLabel", "Status",
	"Location", "Phone", "Seller", "Verified", "Featured", "ImageURL", "Description",
}

// attributeNames returns the sorted union of attribute names in records.
func attributeNames(records []listing.Record) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for name := range record.Attributes {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// recordTable flattens records into rows. Attribute columns follow the fixed
// ones; cells of attributes a record lacks stay empty.
func recordTable(records []listing.Record) ([]string, [][]string) {
	attributes := attributeNames(records)
	headers := append(slices.Clone(recordHeaders), attributes...)

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			record.ID,
			string(record.Kind),
			record.Title,
			record.PriceText,
			strconv.FormatInt(record.PriceValue, 10),
			record.Category,
			record.CategoryLabel,
			string(record.Status),
			record.Location,
			record.Phone,
			record.Seller,
			strconv.FormatBool(record.Verified),
			strconv.FormatBool(record.Featured),
			record.ImageURL,
			record.Description,
		}
		for _, name := range attributes {
			row = append(row, record.Attribute(name))
		}
		rows = append(rows, row)
	}
	return headers, rows
}
