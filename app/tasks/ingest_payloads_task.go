package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flathunt/flathunt/app/ingest"
)

// IngestPayloadsTask ingests every archived payload file under the data
// directory into the listing store.
type IngestPayloadsTask struct {
	Task
	ingester *ingest.Ingester
	dataDir  string
}

func NewIngestPayloadsTask(ingester *ingest.Ingester, dataDir string) *IngestPayloadsTask {
	return &IngestPayloadsTask{
		Task:     NewTask(TaskTypeIngestPayloads),
		ingester: ingester,
		dataDir:  dataDir,
	}
}

func (t *IngestPayloadsTask) Execute(ctx context.Context) error {
	paths, err := ingest.ListPayloadFiles(t.dataDir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		slog.Info("No payload files to ingest", "data_dir", t.dataDir)
		return nil
	}

	stats, err := t.ingester.Run(ctx, paths)
	if err != nil {
		return fmt.Errorf("failed to ingest payloads: %w", err)
	}

	slog.Info("Task completed",
		"type", "IngestPayloads",
		"duration", t.GetDuration(),
		"files", stats.Files,
		"failed_files", stats.FailedFiles,
		"rows", stats.Rows,
		"excluded", stats.Excluded)

	return nil
}
