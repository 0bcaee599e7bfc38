package output

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"choque/listing"

	_ "modernc.org/sqlite"
)

// SQLiteWriter exports a snapshot into a new SQLite file. An existing file at
// the target path is replaced.
type SQLiteWriter struct{}

var listingsSchema = []string{`
CREATE TABLE listings (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	title TEXT NOT NULL,
	price_text TEXT NOT NULL,
	price_value INTEGER NOT NULL CHECK(price_value >= 0),
	category TEXT NOT NULL,
	category_label TEXT NOT NULL,
	status TEXT NOT NULL,
	location TEXT NOT NULL,
	phone TEXT NOT NULL,
	phone_digits TEXT NOT NULL,
	seller TEXT NOT NULL,
	verified INTEGER NOT NULL,
	featured INTEGER NOT NULL,
	image_url TEXT NOT NULL,
	description TEXT NOT NULL,
	position INTEGER NOT NULL
);`, `
CREATE TABLE listing_attributes (
	listing_id TEXT NOT NULL REFERENCES listings(id),
	name TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (listing_id, name)
);`,
	`CREATE INDEX listings_category ON listings(kind, category);`,
}

func (w *SQLiteWriter) Write(path string, records []listing.Record) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("replace sqlite output %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, statement := range listingsSchema {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return insertListings(db, records)
}

func insertListings(db *sql.DB, records []listing.Record) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	const insertListing = `
INSERT INTO listings (
	id, kind, title, price_text, price_value, category, category_label, status,
	location, phone, phone_digits, seller, verified, featured, image_url, description, position
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	const insertAttribute = `INSERT INTO listing_attributes (listing_id, name, value) VALUES (?, ?, ?);`

	listingStmt, err := tx.Prepare(insertListing)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert statement: %w", err)
	}
	defer listingStmt.Close()

	attributeStmt, err := tx.Prepare(insertAttribute)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare attribute statement: %w", err)
	}
	defer attributeStmt.Close()

	for position, record := range records {
		if _, err := listingStmt.Exec(
			record.ID,
			string(record.Kind),
			record.Title,
			record.PriceText,
			max(record.PriceValue, 0),
			record.Category,
			record.CategoryLabel,
			string(record.Status),
			record.Location,
			record.Phone,
			record.PhoneDigits,
			record.Seller,
			record.Verified,
			record.Featured,
			record.ImageURL,
			record.Description,
			position,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert listing %s: %w", record.ID, err)
		}

		names := make([]string, 0, len(record.Attributes))
		for name := range record.Attributes {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if _, err := attributeStmt.Exec(record.ID, name, record.Attributes[name]); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("insert attribute %s of %s: %w", name, record.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
