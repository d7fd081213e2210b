package database

import (
	"time"
)

// Listing is one stored real-estate offer, uniquely identified by URL.
// Re-ingesting the same URL replaces the whole row, search_date included,
// so search_date always reflects the most recent observation.
type Listing struct {
	Address     string
	NumPhotos   int
	Price       float64
	PriceByArea float64
	Rooms       int
	Thumbnail   string
	URL         string
	SearchDate  time.Time
}

// CategorizedListing is the projection produced by the categorization
// views. Derived, never stored.
type CategorizedListing struct {
	Address string
	Price   float64
	Rooms   int
	URL     string
}
