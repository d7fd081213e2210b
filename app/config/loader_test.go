package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.yml"))

	profile, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if profile.Search.Center != "45.469,9.182" {
		t.Errorf("Expected default center, got '%s'", profile.Search.Center)
	}
	if profile.Search.MaxItems != 50 {
		t.Errorf("Expected default max items 50, got %d", profile.Search.MaxItems)
	}
	if len(profile.Ingest.ExcludeMarkers) != 1 || profile.Ingest.ExcludeMarkers[0] != "NO STUDENTS" {
		t.Errorf("Expected default exclusion marker, got %v", profile.Ingest.ExcludeMarkers)
	}
	if profile.Digest.ReferenceAddress != "Via Festa del Perdono, 7" {
		t.Errorf("Expected default reference address, got '%s'", profile.Digest.ReferenceAddress)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	content := `
search:
  center: "41.902,12.496"
  max_price: "900"
ingest:
  exclude_markers:
    - "NO STUDENTS"
    - "SHORT TERM ONLY"
digest:
  subject: "Roman flats"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	loader := NewLoader(path)
	profile, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if profile.Search.Center != "41.902,12.496" {
		t.Errorf("Expected overridden center, got '%s'", profile.Search.Center)
	}
	if profile.Search.MaxPrice != "900" {
		t.Errorf("Expected overridden max price, got '%s'", profile.Search.MaxPrice)
	}
	// Unset fields still get defaults
	if profile.Search.Operation != "rent" {
		t.Errorf("Expected default operation 'rent', got '%s'", profile.Search.Operation)
	}
	if len(profile.Ingest.ExcludeMarkers) != 2 {
		t.Errorf("Expected 2 exclusion markers, got %v", profile.Ingest.ExcludeMarkers)
	}
	if profile.Digest.Subject != "Roman flats" {
		t.Errorf("Expected overridden subject, got '%s'", profile.Digest.Subject)
	}
}

func TestLoad_InvalidSortRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	content := `
search:
  sort: "sideways"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected validation error for invalid sort direction")
	}
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	if err := os.WriteFile(path, []byte("search: [not: valid"), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}
