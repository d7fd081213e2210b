package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/flathunt/flathunt/app/database"
)

// Ingester turns archived payload files into stored listing rows. Each
// file is read, parsed, exclusion-filtered and staged completely before a
// single transactional batch upsert; a file that cannot be read or parsed
// is skipped without affecting the rest of the batch.
type Ingester struct {
	parser   *Parser
	filterer *Filterer
	repo     database.ListingRepository
	now      func() time.Time
}

func NewIngester(parser *Parser, filterer *Filterer, repo database.ListingRepository) *Ingester {
	return &Ingester{
		parser:   parser,
		filterer: filterer,
		repo:     repo,
		now:      time.Now,
	}
}

// Run ingests the given payload files. Parse failures isolate to their
// file; a store failure aborts the run.
func (i *Ingester) Run(ctx context.Context, paths []string) (Stats, error) {
	stats := Stats{}

	for _, path := range paths {
		rows, excluded, err := i.ingestFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			var fatal *storeError
			if errors.As(err, &fatal) {
				return stats, fmt.Errorf("ingestion of %s: %w", path, err)
			}
			slog.Warn("Skipping payload file", "path", path, "error", err)
			stats.FailedFiles++
			continue
		}

		stats.Files++
		stats.Rows += rows
		stats.Excluded += excluded
	}

	return stats, nil
}

func (i *Ingester) ingestFile(ctx context.Context, path string) (int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read payload file: %w", err)
	}

	elements, err := i.parser.Run(data)
	if err != nil {
		return 0, 0, err
	}

	kept, excluded := i.filterer.Run(elements)

	// Stage every row before touching the store; one shared timestamp
	// marks the whole observation batch.
	searchDate := i.now()
	listings := make([]database.Listing, 0, len(kept))
	for _, element := range kept {
		listings = append(listings, database.Listing{
			Address:     element.Address,
			NumPhotos:   element.NumPhotos,
			Price:       element.Price,
			PriceByArea: element.PriceByArea,
			Rooms:       element.Rooms,
			Thumbnail:   element.Thumbnail,
			URL:         element.URL,
			SearchDate:  searchDate,
		})
	}

	rows, err := i.repo.UpsertListings(ctx, listings)
	if err != nil {
		return 0, 0, &storeError{err: err}
	}

	return rows, excluded, nil
}

// storeError marks failures that must abort the run instead of isolating
// to one file.
type storeError struct {
	err error
}

func (e *storeError) Error() string {
	return e.err.Error()
}

func (e *storeError) Unwrap() error {
	return e.err
}

// ListPayloadFiles returns the archived payload files under dataDir,
// sorted by name. A missing directory yields an empty list.
func ListPayloadFiles(dataDir string) ([]string, error) {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list payload files: %w", err)
	}

	return files, nil
}
