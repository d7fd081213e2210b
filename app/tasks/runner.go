package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

// Runner executes pipeline tasks strictly in order. The pipeline is a
// single sequential batch: there are no workers, no queue and no retries,
// and the first failing task aborts the run.
type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Run(ctx context.Context, taskList []TaskInterface) error {
	for _, task := range taskList {
		task.Start()

		slog.Debug("Task started", "type", string(task.GetType()), "id", task.GetID())

		if err := task.Execute(ctx); err != nil {
			slog.Error("Task failed",
				"type", string(task.GetType()),
				"id", task.GetID(),
				"duration", task.GetDuration(),
				"error", err)
			return fmt.Errorf("%s task: %w", task.GetType(), err)
		}
	}

	return nil
}
