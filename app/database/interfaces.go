package database

import "context"

// ListingRepository handles stored listings and the categorized views over
// them. UpsertListings applies one batch in a single transaction, keyed by
// listing URL. The categorized getters recompute their view on every call;
// freshness depends on wall-clock time at query time.
type ListingRepository interface {
	UpsertListings(ctx context.Context, listings []Listing) (int, error)

	GetForTwo(ctx context.Context) ([]CategorizedListing, error)
	GetForThree(ctx context.Context) ([]CategorizedListing, error)

	GetListingCount(ctx context.Context) (int, error)
}
