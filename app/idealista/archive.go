package idealista

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchivePayload writes one raw API response to a dated file under dataDir.
// The on-disk convention is double-encoded: the file contains a JSON string
// literal whose content is the (re-indented) response JSON. Archived files
// are the ingestion input, so fetch-time and ingest-time stay decoupled and
// old payloads can be replayed.
func ArchivePayload(dataDir, body string, now time.Time) (string, error) {
	var response any
	if err := json.Unmarshal([]byte(body), &response); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	pretty, err := json.MarshalIndent(response, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to re-indent API response: %w", err)
	}

	wrapped, err := json.Marshal(string(pretty))
	if err != nil {
		return "", fmt.Errorf("failed to encode payload envelope: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	name := "idealista_json_" + now.Format("2006-01-02_15-04") + ".json"
	path := filepath.Join(dataDir, name)

	if err := os.WriteFile(path, wrapped, 0644); err != nil {
		return "", fmt.Errorf("failed to write payload file: %w", err)
	}

	return path, nil
}
