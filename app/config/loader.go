package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the search profile
type Loader struct {
	path string
}

// NewLoader creates a new profile loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the profile file, applies defaults and validates the result.
// A missing file is not an error: the defaults describe a complete profile.
func (l *Loader) Load() (*Profile, error) {
	profile := &Profile{}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Profile file not found, using defaults", "path", l.path)
			l.setDefaults(profile)
			return profile, nil
		}
		return nil, fmt.Errorf("failed to read profile %s: %w", l.path, err)
	}

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", l.path, err)
	}

	l.setDefaults(profile)

	if err := l.validate(profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", l.path, err)
	}

	return profile, nil
}

// setDefaults applies default values to the profile
func (l *Loader) setDefaults(profile *Profile) {
	s := &profile.Search
	if s.Center == "" {
		s.Center = "45.469,9.182"
	}
	if s.Distance == "" {
		s.Distance = "5500"
	}
	if s.PropertyType == "" {
		s.PropertyType = "homes"
	}
	if s.Operation == "" {
		s.Operation = "rent"
	}
	if s.Locale == "" {
		s.Locale = "en"
	}
	if s.LocationID == "" {
		s.LocationID = "0-EU-IT-MI-01-001-135"
	}
	if s.SinceDate == "" {
		s.SinceDate = "T"
	}
	if s.MaxPrice == "" {
		s.MaxPrice = "1300"
	}
	if s.Bedrooms == "" {
		s.Bedrooms = "2"
	}
	if s.MaxItems == 0 {
		s.MaxItems = 50
	}
	if s.Order == "" {
		s.Order = "price"
	}
	if s.Sort == "" {
		s.Sort = "desc"
	}

	if profile.Ingest.ExcludeMarkers == nil {
		profile.Ingest.ExcludeMarkers = []string{"NO STUDENTS"}
	}

	if profile.Digest.Subject == "" {
		profile.Digest.Subject = "New flats for today"
	}
	if profile.Digest.ReferenceAddress == "" {
		profile.Digest.ReferenceAddress = "Via Festa del Perdono, 7"
	}
}

// validate validates the profile
func (l *Loader) validate(profile *Profile) error {
	if profile.Search.Center == "" {
		return fmt.Errorf("search center is required")
	}
	if profile.Search.LocationID == "" {
		return fmt.Errorf("location id is required")
	}
	if profile.Search.MaxItems < 0 {
		return fmt.Errorf("max items must be non-negative")
	}
	validSorts := map[string]bool{"asc": true, "desc": true}
	if !validSorts[profile.Search.Sort] {
		return fmt.Errorf("invalid sort direction: %s", profile.Search.Sort)
	}
	return nil
}
