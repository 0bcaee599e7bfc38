package search

import (
	"reflect"
	"testing"

	"choque/listing"
)

func sampleRecords() []listing.Record {
	return []listing.Record{
		{ID: "food-1", Title: "Thịt heo quay", Category: "meat", CategoryLabel: "Thịt", PriceValue: 250000, Status: listing.StatusAvailable, Seller: "Cô Ba"},
		{ID: "food-2", Title: "Rau muống", Category: "vegetable", CategoryLabel: "Rau củ", PriceValue: 15000, Status: listing.StatusSold, Seller: "Chú Tư"},
		{ID: "food-3", Title: "Gà ta thả vườn", Category: "meat", CategoryLabel: "Thịt", PriceText: "Liên hệ", Status: listing.StatusAvailable, Verified: true},
		{ID: "food-4", Title: "Bánh tét", Category: "cake", CategoryLabel: "Bánh", PriceValue: 80000, Status: listing.StatusAvailable, Featured: true, Seller: "Thịt Nguội Hà"},
	}
}

var testBrackets = []Bracket{
	{ID: "under-50k", Label: "Dưới 50.000đ", Max: 50000},
	{ID: "50k-200k", Label: "50.000đ - 200.000đ", Min: 50000, Max: 200000},
	{ID: "over-200k", Label: "Trên 200.000đ", Min: 200000},
}

func ids(records []listing.Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID)
	}
	return out
}

func TestFilter_CategoryAllMatchesEverything(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	got := Filter(records, Criteria{Category: listing.CategoryAll}, Options{})
	if len(got) != len(records) {
		t.Fatalf("expected all records, got %v", ids(got))
	}

	got = Filter(records, Criteria{Category: "meat"}, Options{})
	if want := []string{"food-1", "food-3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("unexpected category result: want %v, got %v", want, ids(got))
	}
}

func TestFilter_QueryIsDiacriticInsensitive(t *testing.T) {
	t.Parallel()

	got := Filter(sampleRecords(), Criteria{Query: "thit"}, Options{Fields: []string{FieldTitle}})
	if want := []string{"food-1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("unexpected title search: want %v, got %v", want, ids(got))
	}

	got = Filter(sampleRecords(), Criteria{Query: "THIT"}, Options{Fields: []string{FieldTitle, FieldSeller, FieldCategory}})
	if want := []string{"food-1", "food-3", "food-4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("unexpected multi-field search: want %v, got %v", want, ids(got))
	}
}

func TestFilter_PriceBracketKeepsUnpricedListings(t *testing.T) {
	t.Parallel()

	options := Options{Brackets: testBrackets}
	for _, bracket := range testBrackets {
		got := Filter(sampleRecords(), Criteria{Bracket: bracket.ID}, options)
		found := false
		for _, record := range got {
			if record.ID == "food-3" {
				found = true
			}
		}
		if !found {
			t.Fatalf("bracket %s excluded the contact-for-price listing: %v", bracket.ID, ids(got))
		}
	}

	got := Filter(sampleRecords(), Criteria{Bracket: "50k-200k"}, options)
	if want := []string{"food-3", "food-4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("unexpected bracket result: want %v, got %v", want, ids(got))
	}

	got = Filter(sampleRecords(), Criteria{Bracket: "unknown"}, options)
	if len(got) != 4 {
		t.Fatalf("expected unknown bracket to match all, got %v", ids(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	before := sampleRecords()
	criteria := Criteria{Category: "meat", Query: "ga", Bracket: "over-200k"}
	options := Options{Fields: []string{FieldTitle}, Brackets: testBrackets}

	first := Filter(records, criteria, options)
	second := Filter(records, criteria, options)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("filter is not idempotent: %v vs %v", ids(first), ids(second))
	}
	if !reflect.DeepEqual(records, before) {
		t.Fatalf("filter modified its input")
	}
}

func TestSort_PriorityIsStable(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	records = append(records, listing.Record{ID: "food-5", Status: listing.StatusAvailable})

	got := Sort(records)
	want := []string{"food-3", "food-4", "food-1", "food-5", "food-2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("unexpected order: want %v, got %v", want, ids(got))
	}
	if records[0].ID != "food-1" {
		t.Fatalf("sort modified its input")
	}
}

func TestBracket_Contains(t *testing.T) {
	t.Parallel()

	bracket := Bracket{Min: 100, Max: 200}
	if !bracket.Contains(100) || bracket.Contains(200) || bracket.Contains(99) {
		t.Fatalf("unexpected half-open range behaviour")
	}
	open := Bracket{Min: 200}
	if !open.Contains(1 << 40) {
		t.Fatalf("expected unbounded bracket to contain large prices")
	}
}
