package ingest

// Element is one listing-shaped record from a provider payload. The
// description is only consulted by the exclusion rules and is never
// persisted.
type Element struct {
	Address     string  `json:"address"`
	NumPhotos   int     `json:"numPhotos"`
	Price       float64 `json:"price"`
	PriceByArea float64 `json:"priceByArea"`
	Rooms       int     `json:"rooms"`
	Thumbnail   string  `json:"thumbnail"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
}

// envelope is the provider response. Pagination and total-count metadata
// also present in the payload are not ingested. ElementList stays a pointer
// so a payload without the field can be told apart from an empty page.
type envelope struct {
	ElementList *[]Element `json:"elementList"`
}

// Stats summarizes one ingestion run
type Stats struct {
	Files       int
	FailedFiles int
	Rows        int
	Excluded    int
}
