package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func setupTestRepo(t *testing.T) ListingRepository {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewListingRepository(db)
}

func testListing(url string, rooms int, price float64, searchDate time.Time) Listing {
	return Listing{
		Address:     "Via Roma 1",
		NumPhotos:   5,
		Price:       price,
		PriceByArea: price / 60,
		Rooms:       rooms,
		Thumbnail:   "http://img/1",
		URL:         url,
		SearchDate:  searchDate,
	}
}

func TestUpsertListings_Insert(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	count, err := repo.UpsertListings(ctx, []Listing{
		testListing("http://x/1", 2, 900, time.Now()),
		testListing("http://x/2", 3, 1200, time.Now()),
	})
	if err != nil {
		t.Fatalf("UpsertListings failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows written, got %d", count)
	}

	total, err := repo.GetListingCount(ctx)
	if err != nil {
		t.Fatalf("GetListingCount failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 stored listings, got %d", total)
	}
}

func TestUpsertListings_IdempotentReplay(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	batch := []Listing{testListing("http://x/1", 2, 900, time.Now())}

	for i := 0; i < 3; i++ {
		if _, err := repo.UpsertListings(ctx, batch); err != nil {
			t.Fatalf("UpsertListings run %d failed: %v", i, err)
		}
	}

	total, err := repo.GetListingCount(ctx)
	if err != nil {
		t.Fatalf("GetListingCount failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected exactly 1 row after replay, got %d", total)
	}
}

func TestUpsertListings_ReobservationReplacesRow(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.UpsertListings(ctx, []Listing{testListing("http://x/1", 2, 950, time.Now())}); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if _, err := repo.UpsertListings(ctx, []Listing{testListing("http://x/1", 2, 850, time.Now())}); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	total, err := repo.GetListingCount(ctx)
	if err != nil {
		t.Fatalf("GetListingCount failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 row for re-observed URL, got %d", total)
	}

	forTwo, err := repo.GetForTwo(ctx)
	if err != nil {
		t.Fatalf("GetForTwo failed: %v", err)
	}
	if len(forTwo) != 1 {
		t.Fatalf("Expected 1 for-two listing, got %d", len(forTwo))
	}
	if forTwo[0].Price != 850 {
		t.Errorf("Expected price from latest observation (850), got %v", forTwo[0].Price)
	}
}

func TestGetForTwo_FreshnessWindowBoundary(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	stale := testListing("http://x/stale", 2, 900, now.Add(-20*time.Hour-time.Second))
	fresh := testListing("http://x/fresh", 2, 900, now.Add(-19*time.Hour))

	if _, err := repo.UpsertListings(ctx, []Listing{stale, fresh}); err != nil {
		t.Fatalf("UpsertListings failed: %v", err)
	}

	forTwo, err := repo.GetForTwo(ctx)
	if err != nil {
		t.Fatalf("GetForTwo failed: %v", err)
	}
	if len(forTwo) != 1 {
		t.Fatalf("Expected 1 fresh listing, got %d", len(forTwo))
	}
	if forTwo[0].URL != "http://x/fresh" {
		t.Errorf("Expected only the fresh listing, got %s", forTwo[0].URL)
	}

	forThree, err := repo.GetForThree(ctx)
	if err != nil {
		t.Fatalf("GetForThree failed: %v", err)
	}
	if len(forThree) != 0 {
		t.Errorf("Expected stale two-room listing in neither view, got %d for-three rows", len(forThree))
	}
}

func TestGetForTwo_RoomAndPricePredicates(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	listings := []Listing{
		testListing("http://x/cheap", 2, 900, now),     // eligible
		testListing("http://x/pricey", 2, 1000, now),   // price not < 1000
		testListing("http://x/three", 3, 800, now),     // rooms not < 3
		testListing("http://x/studio", 1, 999.99, now), // eligible
	}
	if _, err := repo.UpsertListings(ctx, listings); err != nil {
		t.Fatalf("UpsertListings failed: %v", err)
	}

	forTwo, err := repo.GetForTwo(ctx)
	if err != nil {
		t.Fatalf("GetForTwo failed: %v", err)
	}
	if len(forTwo) != 2 {
		t.Fatalf("Expected 2 for-two listings, got %d", len(forTwo))
	}
	for _, listing := range forTwo {
		if listing.URL == "http://x/pricey" || listing.URL == "http://x/three" {
			t.Errorf("Listing %s should not be in for_two", listing.URL)
		}
	}
}

func TestGetForThree_NoPriceCap(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	expensive := testListing("http://x/1", 3, 2500, time.Now())
	if _, err := repo.UpsertListings(ctx, []Listing{expensive}); err != nil {
		t.Fatalf("UpsertListings failed: %v", err)
	}

	forThree, err := repo.GetForThree(ctx)
	if err != nil {
		t.Fatalf("GetForThree failed: %v", err)
	}
	if len(forThree) != 1 {
		t.Fatalf("Expected 1 for-three listing regardless of price, got %d", len(forThree))
	}
	if forThree[0].Price != 2500 {
		t.Errorf("Expected price 2500, got %v", forThree[0].Price)
	}
}

func TestGetForTwo_OrderedByRoomsThenPrice(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	listings := []Listing{
		testListing("http://x/a", 2, 900, now),
		testListing("http://x/b", 1, 800, now),
		testListing("http://x/c", 2, 700, now),
	}
	if _, err := repo.UpsertListings(ctx, listings); err != nil {
		t.Fatalf("UpsertListings failed: %v", err)
	}

	forTwo, err := repo.GetForTwo(ctx)
	if err != nil {
		t.Fatalf("GetForTwo failed: %v", err)
	}
	if len(forTwo) != 3 {
		t.Fatalf("Expected 3 listings, got %d", len(forTwo))
	}

	expected := []struct {
		rooms int
		price float64
	}{{1, 800}, {2, 700}, {2, 900}}
	for i, want := range expected {
		if forTwo[i].Rooms != want.rooms || forTwo[i].Price != want.price {
			t.Errorf("Position %d: expected (%d, %v), got (%d, %v)",
				i, want.rooms, want.price, forTwo[i].Rooms, forTwo[i].Price)
		}
	}
}

func TestUpsertListings_EmptyBatch(t *testing.T) {
	repo := setupTestRepo(t)

	count, err := repo.UpsertListings(context.Background(), nil)
	if err != nil {
		t.Fatalf("UpsertListings failed for empty batch: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 rows written, got %d", count)
	}
}
