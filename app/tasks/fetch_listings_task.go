package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/flathunt/flathunt/app/config"
	"github.com/flathunt/flathunt/app/idealista"
)

// FetchListingsTask runs one provider query: token exchange, authenticated
// search, raw payload archived to a dated file for later ingestion.
type FetchListingsTask struct {
	Task
	client  *idealista.Client
	params  config.SearchParams
	page    int
	dataDir string

	// SearchBaseURL can point at a test server; zero value means the real
	// provider.
	SearchBaseURL string
}

func NewFetchListingsTask(client *idealista.Client, params config.SearchParams, page int, dataDir string) *FetchListingsTask {
	return &FetchListingsTask{
		Task:          NewTask(TaskTypeFetchListings),
		client:        client,
		params:        params,
		page:          page,
		dataDir:       dataDir,
		SearchBaseURL: idealista.DefaultSearchURL,
	}
}

func (t *FetchListingsTask) Execute(ctx context.Context) error {
	token, err := t.client.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain token: %w", err)
	}

	searchURL := idealista.BuildSearchURL(t.SearchBaseURL, t.params, t.page)

	body, err := t.client.Search(ctx, searchURL, token)
	if err != nil {
		return fmt.Errorf("failed to fetch listings: %w", err)
	}

	path, err := idealista.ArchivePayload(t.dataDir, body, time.Now())
	if err != nil {
		return fmt.Errorf("failed to archive payload: %w", err)
	}

	slog.Info("Task completed",
		"type", "FetchListings",
		"duration", t.GetDuration(),
		"page", t.page,
		"payload", path)

	return nil
}
