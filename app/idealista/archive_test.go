package idealista

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestArchivePayload_DatedFileName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)

	path, err := ArchivePayload(dir, `{"total": 0, "elementList": []}`, now)
	if err != nil {
		t.Fatalf("ArchivePayload failed: %v", err)
	}

	expected := filepath.Join(dir, "idealista_json_2024-03-15_09-30.json")
	if path != expected {
		t.Errorf("Expected path '%s', got '%s'", expected, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected archived file to exist: %v", err)
	}
}

func TestArchivePayload_DoubleEncoded(t *testing.T) {
	dir := t.TempDir()

	path, err := ArchivePayload(dir, `{"total": 1, "elementList": [{"url": "http://x/1"}]}`, time.Now())
	if err != nil {
		t.Fatalf("ArchivePayload failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read archived file: %v", err)
	}

	// Outer layer is a JSON string literal
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		t.Fatalf("Archived file is not a JSON string literal: %v", err)
	}

	// Inner layer is the response JSON itself
	var envelope map[string]any
	if err := json.Unmarshal([]byte(inner), &envelope); err != nil {
		t.Fatalf("Inner payload is not valid JSON: %v", err)
	}
	if _, ok := envelope["elementList"]; !ok {
		t.Error("Expected inner payload to carry elementList")
	}
}

func TestArchivePayload_RejectsMalformedResponse(t *testing.T) {
	if _, err := ArchivePayload(t.TempDir(), "not json", time.Now()); err == nil {
		t.Error("Expected error for malformed API response")
	}
}
