package config

// Profile represents a complete search profile
type Profile struct {
	Search SearchParams `yaml:"search"`
	Ingest IngestRules  `yaml:"ingest"`
	Digest DigestInfo   `yaml:"digest"`
}

// SearchParams is the fixed provider query parameter set. Only the page
// number varies between calls; everything else comes from the profile.
type SearchParams struct {
	Center       string `yaml:"center"`
	Distance     string `yaml:"distance"`
	PropertyType string `yaml:"property_type"`
	Operation    string `yaml:"operation"`
	Locale       string `yaml:"locale"`
	LocationID   string `yaml:"location_id"`
	SinceDate    string `yaml:"since_date"`
	MaxPrice     string `yaml:"max_price"`
	Bedrooms     string `yaml:"bedrooms"`
	MaxItems     int    `yaml:"max_items"`
	Order        string `yaml:"order"`
	Sort         string `yaml:"sort"`
}

// IngestRules contains content-based exclusion rules applied at ingestion
type IngestRules struct {
	ExcludeMarkers []string `yaml:"exclude_markers"`
}

// DigestInfo contains digest rendering settings
type DigestInfo struct {
	Subject          string `yaml:"subject"`
	ReferenceAddress string `yaml:"reference_address"`
}
