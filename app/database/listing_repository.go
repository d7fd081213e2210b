package database

import (
	"context"
	"fmt"
)

var _ ListingRepository = (*listingRepository)(nil)

// search_date is stored as UTC text so comparisons against SQLite's
// datetime('now') are timezone-correct.
const searchDateLayout = "2006-01-02 15:04:05"

const createForTwoView = `
	CREATE VIEW IF NOT EXISTS for_two AS
	SELECT address, price, rooms, url FROM houses
	WHERE rooms < 3 AND price < 1000 AND search_date > datetime('now', '-20 hours')
	ORDER BY rooms, price`

const createForThreeView = `
	CREATE VIEW IF NOT EXISTS for_three AS
	SELECT address, price, rooms, url FROM houses
	WHERE rooms = 3 AND search_date > datetime('now', '-20 hours')
	ORDER BY rooms, price`

type listingRepository struct {
	db *DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *DB) ListingRepository {
	return &listingRepository{db: db}
}

// UpsertListings stores one batch of listings in a single transaction.
// A listing whose URL already exists is fully replaced, search_date
// included; new URLs are inserted. Returns the number of rows written.
func (r *listingRepository) UpsertListings(ctx context.Context, listings []Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO houses (address, numPhotos, price, priceByArea, rooms, thumbnail, url, search_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			address = excluded.address,
			numPhotos = excluded.numPhotos,
			price = excluded.price,
			priceByArea = excluded.priceByArea,
			rooms = excluded.rooms,
			thumbnail = excluded.thumbnail,
			search_date = excluded.search_date
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, listing := range listings {
		_, err := stmt.ExecContext(ctx,
			listing.Address, listing.NumPhotos, listing.Price, listing.PriceByArea,
			listing.Rooms, listing.Thumbnail, listing.URL,
			listing.SearchDate.UTC().Format(searchDateLayout))
		if err != nil {
			return 0, fmt.Errorf("failed to upsert listing %s: %w", listing.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit upsert batch: %w", err)
	}

	return len(listings), nil
}

// GetForTwo returns the fresh listings suitable for two occupants
func (r *listingRepository) GetForTwo(ctx context.Context) ([]CategorizedListing, error) {
	return r.queryView(ctx, "for_two", createForTwoView)
}

// GetForThree returns the fresh listings suitable for three occupants
func (r *listingRepository) GetForThree(ctx context.Context) ([]CategorizedListing, error) {
	return r.queryView(ctx, "for_three", createForThreeView)
}

func (r *listingRepository) queryView(ctx context.Context, name, createStmt string) ([]CategorizedListing, error) {
	// Views are created on access, matching the create-if-absent lifecycle
	// of the store. SQLite evaluates datetime('now') at query time, so the
	// freshness window follows the wall clock on every read.
	if _, err := r.db.ExecContext(ctx, createStmt); err != nil {
		return nil, fmt.Errorf("failed to ensure view %s: %w", name, err)
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT address, price, rooms, url FROM %s", name))
	if err != nil {
		return nil, fmt.Errorf("failed to query view %s: %w", name, err)
	}
	defer rows.Close()

	var listings []CategorizedListing
	for rows.Next() {
		var listing CategorizedListing
		if err := rows.Scan(&listing.Address, &listing.Price, &listing.Rooms, &listing.URL); err != nil {
			return nil, fmt.Errorf("failed to scan view row: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating view rows: %w", err)
	}

	return listings, nil
}

// GetListingCount returns the total number of stored listings
func (r *listingRepository) GetListingCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM houses").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get listing count: %w", err)
	}
	return count, nil
}
