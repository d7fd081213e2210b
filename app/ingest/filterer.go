package ingest

import (
	"log/slog"
	"strings"
)

// Filterer applies the content-based exclusion rules to parsed elements.
// Matching is a case-sensitive substring check against the description;
// markers are never case-folded or localized.
type Filterer struct {
	markers []string
}

func NewFilterer(markers []string) *Filterer {
	return &Filterer{markers: markers}
}

// Run returns the elements that survive the exclusion rules and the number
// of elements dropped.
func (f *Filterer) Run(elements []Element) ([]Element, int) {
	if len(f.markers) == 0 {
		return elements, 0
	}

	kept := make([]Element, 0, len(elements))
	excluded := 0
	for _, element := range elements {
		if marker, ok := f.matchMarker(element.Description); ok {
			slog.Debug("Listing excluded", "url", element.URL, "marker", marker)
			excluded++
			continue
		}
		kept = append(kept, element)
	}

	return kept, excluded
}

func (f *Filterer) matchMarker(description string) (string, bool) {
	for _, marker := range f.markers {
		if strings.Contains(description, marker) {
			return marker, true
		}
	}
	return "", false
}
