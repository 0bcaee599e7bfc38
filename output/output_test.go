package output

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"choque/listing"

	"github.com/xuri/excelize/v2"
)

func sampleRecords() []listing.Record {
	return []listing.Record{
		{
			ID: "realestate-2", Kind: listing.KindRealEstate, Title: "Nhà cấp 4, gần chợ", PriceText: "850 Tr",
			PriceValue: 850_000_000, Category: "house", CategoryLabel: "Nhà ở", Status: listing.StatusAvailable,
			Location: "Ấp 3", Phone: "0909 123 456", PhoneDigits: "0909123456", Seller: "Chính chủ",
			Verified: true, ImageURL: "https://img.example.com/1.jpg", Description: "Sổ hồng riêng",
			Attributes: map[string]string{"area": "120m2", "legal": "Sổ hồng"},
		},
		{
			ID: "realestate-1", Kind: listing.KindRealEstate, Title: "Đất vườn", PriceText: "Liên hệ",
			Category: "farmland", CategoryLabel: "Đất vườn & ruộng", Status: listing.StatusSold,
			Location: "Đang cập nhật", Phone: "Đang cập nhật", Seller: "Chính chủ",
			ImageURL: "https://img.example.com/2.jpg", Description: "Chưa có mô tả",
			Attributes: map[string]string{"area": "1000m2"},
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"csv":     "*output.CSVWriter",
		" Excel ": "*output.ExcelWriter",
		"xlsx":    "*output.ExcelWriter",
		"sqlite":  "*output.SQLiteWriter",
	}
	for format, want := range cases {
		writer, err := WriterForFormat(format)
		if err != nil {
			t.Fatalf("WriterForFormat(%q) returned error: %v", format, err)
		}
		if got := fmt.Sprintf("%T", writer); got != want {
			t.Fatalf("WriterForFormat(%q): want %s, got %s", format, want, got)
		}
	}

	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestCSVWriter_WritesAttributesAsColumns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := (&CSVWriter{}).Write(path, sampleRecords()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[len(header)-2] != "area" || header[len(header)-1] != "legal" {
		t.Fatalf("unexpected attribute columns: %v", header)
	}
	if rows[1][2] != "Nhà cấp 4, gần chợ" || rows[1][4] != "850000000" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][len(header)-1] != "" || rows[2][len(header)-2] != "1000m2" {
		t.Fatalf("unexpected attribute cells: %v", rows[2])
	}
}

func TestExcelWriter_WritesListingsSheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.xlsx")
	if err := (&ExcelWriter{}).Write(path, sampleRecords()); err != nil {
		t.Fatalf("write excel: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open excel: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(listingsSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[1][0] != "realestate-2" || rows[2][7] != "sold" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestSQLiteWriter_ReplacesFileAndStoresAttributes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.db")
	writer := &SQLiteWriter{}
	if err := writer.Write(path, sampleRecords()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writer.Write(path, sampleRecords()[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		t.Fatalf("count listings: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected fresh export with 1 listing, got %d", count)
	}

	var area string
	if err := db.QueryRow(`SELECT value FROM listing_attributes WHERE listing_id = ? AND name = 'area'`, "realestate-2").Scan(&area); err != nil {
		t.Fatalf("query attribute: %v", err)
	}
	if area != "120m2" {
		t.Fatalf("unexpected area: %q", area)
	}

	var verified bool
	var priceValue int64
	if err := db.QueryRow(`SELECT verified, price_value FROM listings WHERE id = ?`, "realestate-2").Scan(&verified, &priceValue); err != nil {
		t.Fatalf("query listing: %v", err)
	}
	if !verified || priceValue != 850_000_000 {
		t.Fatalf("unexpected listing columns: verified=%v price=%d", verified, priceValue)
	}
}

func TestBuildCategorySummaries(t *testing.T) {
	t.Parallel()

	records := append(sampleRecords(), listing.Record{
		ID: "realestate-3", Category: "house", CategoryLabel: "Nhà ở", Status: listing.StatusAvailable, PriceValue: 1_200_000_000,
	})
	summaries := BuildCategorySummaries(records)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	house := summaries[0]
	if house.Category != "house" || house.Count != 2 || house.Available != 2 || house.Verified != 1 {
		t.Fatalf("unexpected house summary: %+v", house)
	}
	if house.MinPrice != 850_000_000 || house.MaxPrice != 1_200_000_000 {
		t.Fatalf("unexpected house prices: %+v", house)
	}
	if farm := summaries[1]; farm.Available != 0 || farm.MinPrice != 0 {
		t.Fatalf("unexpected farmland summary: %+v", farm)
	}

	if len(BuildCategorySummaries(nil)) != 0 {
		t.Fatalf("expected no summaries for empty input")
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteCategorySummaries(path, "csv", summaries); err != nil {
		t.Fatalf("write summaries: %v", err)
	}
	if err := WriteCategorySummaries(path, "sqlite", summaries); err == nil {
		t.Fatalf("expected error for unsupported summary format")
	}
}
