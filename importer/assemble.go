package importer

import (
	"fmt"

	"choque/internal/classify"
	"choque/listing"
)

// Canonical field names with a dedicated place on listing.Record. Any other
// field name ends up in Record.Attributes.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldPhone       = "phone"
	FieldImage       = "image"
	FieldCategory    = "category"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldSeller      = "seller"
	FieldVerified    = "verified"
	FieldFeatured    = "featured"
)

var recordFields = map[string]struct{}{
	FieldTitle: {}, FieldPrice: {}, FieldLocation: {}, FieldPhone: {}, FieldImage: {},
	FieldCategory: {}, FieldStatus: {}, FieldDescription: {}, FieldSeller: {},
	FieldVerified: {}, FieldFeatured: {},
}

// Schema is the ingestion configuration of one dataset kind.
type Schema struct {
	Kind   listing.Kind
	Fields []FieldSpec
	// Categories classify the raw category cell; rule order is precedence.
	Categories     classify.Rules
	CategoryLabels map[string]string
	// Statuses classify the raw status cell into listing.Status values.
	Statuses classify.Rules
	Price    PriceFormat
	// Value parses the numeric price used for brackets. Defaults to
	// ParsePrice.
	Value func(string) int64
}

func (s Schema) parseValue(raw string) int64 {
	if s.Value == nil {
		return ParsePrice(raw)
	}
	return s.Value(raw)
}

func (s Schema) normalizePrice(raw string) string {
	value := s.parseValue(raw)
	if value <= 0 {
		return ""
	}
	if s.Price.KeepText && ParsePrice(raw) != value {
		return collapseSpaces(raw)
	}
	return s.Price.Format(value)
}

// Label returns the display label of a canonical category.
func (s Schema) Label(category string) string {
	if label, ok := s.CategoryLabels[category]; ok {
		return label
	}
	if label, ok := s.CategoryLabels[listing.CategoryOther]; ok {
		return label
	}
	return category
}

func (s Schema) normalizer(spec FieldSpec) FieldSpec {
	if spec.Normalize != nil {
		return spec
	}
	switch spec.Name {
	case FieldPrice:
		spec.Normalize = s.normalizePrice
	case FieldCategory:
		spec.Normalize = func(raw string) string {
			value, _ := s.Categories.Classify(raw)
			return value
		}
	case FieldStatus:
		spec.Normalize = func(raw string) string {
			value, _ := s.Statuses.Classify(raw)
			return value
		}
	case FieldPhone:
		spec.Normalize = normalizePhone
	case FieldVerified, FieldFeatured:
		spec.Normalize = normalizeFlag
	}
	return spec
}

// Ingest resolves the table header against the schema and assembles every
// data row. offset shifts record ordinals when several sources feed one
// dataset.
func Ingest(schema Schema, table Table, offset int) []listing.Record {
	columns := ResolveColumns(table.Header, schema.Fields)
	return Assemble(schema, columns, table.Rows, offset)
}

// Assemble turns data rows into records. Every row yields exactly one record;
// missing or unusable cells take the field default.
func Assemble(schema Schema, columns ColumnIndex, rows [][]string, offset int) []listing.Record {
	specs := make([]FieldSpec, len(schema.Fields))
	for i, spec := range schema.Fields {
		specs[i] = schema.normalizer(spec)
	}

	records := make([]listing.Record, 0, len(rows))
	for i, row := range rows {
		values := make(map[string]string, len(specs))
		for _, spec := range specs {
			values[spec.Name] = spec.Value(columns.Cell(row, spec.Name))
		}
		records = append(records, buildRecord(schema, values, columns.Cell(row, FieldPrice), offset+i+1))
	}
	return records
}

func buildRecord(schema Schema, values map[string]string, rawPrice string, ordinal int) listing.Record {
	category := WithDefault(values[FieldCategory], listing.CategoryOther)
	record := listing.Record{
		ID:            fmt.Sprintf("%s-%d", schema.Kind, ordinal),
		Kind:          schema.Kind,
		Title:         values[FieldTitle],
		PriceText:     values[FieldPrice],
		PriceValue:    schema.parseValue(rawPrice),
		Location:      values[FieldLocation],
		Phone:         values[FieldPhone],
		PhoneDigits:   PhoneDigits(values[FieldPhone]),
		ImageURL:      values[FieldImage],
		Category:      category,
		CategoryLabel: schema.Label(category),
		Status:        listing.Status(WithDefault(values[FieldStatus], string(listing.StatusAvailable))),
		Description:   values[FieldDescription],
		Seller:        values[FieldSeller],
		Verified:      values[FieldVerified] == "true",
		Featured:      values[FieldFeatured] == "true",
	}

	for name, value := range values {
		if _, ok := recordFields[name]; ok {
			continue
		}
		if record.Attributes == nil {
			record.Attributes = make(map[string]string)
		}
		record.Attributes[name] = value
	}
	return record
}
