// Package search filters and orders an in-memory listing snapshot. Every
// function here is pure: inputs are never modified.
package search

import (
	"sort"
	"strings"

	"choque/internal/fold"
	"choque/listing"
)

// Searchable field names understood by Options.Fields.
const (
	FieldTitle       = "title"
	FieldSeller      = "seller"
	FieldCategory    = "category"
	FieldLocation    = "location"
	FieldDescription = "description"
)

// AllBrackets is the bracket id that disables price filtering.
const AllBrackets = "all"

// Criteria is the current user selection.
type Criteria struct {
	Category string `json:"category"`
	Query    string `json:"q"`
	Bracket  string `json:"price"`
}

// Bracket is a named price range [Min, Max). A zero Max means unbounded.
type Bracket struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max,omitempty"`
}

func (b Bracket) Contains(price int64) bool {
	if price < b.Min {
		return false
	}
	return b.Max <= 0 || price < b.Max
}

// Options carry the dataset-specific parts of filtering.
type Options struct {
	Fields   []string
	Brackets []Bracket
}

// Filter returns the records matching every part of criteria, in input order.
func Filter(records []listing.Record, criteria Criteria, options Options) []listing.Record {
	category := strings.TrimSpace(criteria.Category)
	query := fold.Fold(criteria.Query)
	bracket, hasBracket := findBracket(options.Brackets, criteria.Bracket)

	fields := options.Fields
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	out := make([]listing.Record, 0, len(records))
	for _, record := range records {
		if !matchesCategory(record, category) {
			continue
		}
		if hasBracket && !matchesPrice(record, bracket) {
			continue
		}
		if query != "" && !matchesQuery(record, query, fields) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesCategory(record listing.Record, category string) bool {
	if category == "" || strings.EqualFold(category, listing.CategoryAll) {
		return true
	}
	return record.Category == category
}

// Listings without a usable price stay visible in every bracket.
func matchesPrice(record listing.Record, bracket Bracket) bool {
	if record.PriceValue <= 0 {
		return true
	}
	return bracket.Contains(record.PriceValue)
}

func matchesQuery(record listing.Record, query string, fields []string) bool {
	for _, field := range fields {
		if strings.Contains(fold.Fold(fieldValue(record, field)), query) {
			return true
		}
	}
	return false
}

func fieldValue(record listing.Record, field string) string {
	switch field {
	case FieldTitle:
		return record.Title
	case FieldSeller:
		return record.Seller
	case FieldCategory:
		return record.CategoryLabel
	case FieldLocation:
		return record.Location
	case FieldDescription:
		return record.Description
	default:
		return record.Attribute(field)
	}
}

func findBracket(brackets []Bracket, id string) (Bracket, bool) {
	id = strings.TrimSpace(id)
	if id == "" || strings.EqualFold(id, AllBrackets) {
		return Bracket{}, false
	}
	for _, bracket := range brackets {
		if strings.EqualFold(bracket.ID, id) {
			return bracket, true
		}
	}
	return Bracket{}, false
}

// Sort returns a copy ordered by priority: available listings before sold or
// resolved ones, then verified, then featured. Ties keep their input order.
func Sort(records []listing.Record) []listing.Record {
	out := append([]listing.Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return priority(out[i]) < priority(out[j])
	})
	return out
}

func priority(record listing.Record) int {
	rank := 0
	if !record.Status.Available() {
		rank += 4
	}
	if !record.Verified {
		rank += 2
	}
	if !record.Featured {
		rank++
	}
	return rank
}
