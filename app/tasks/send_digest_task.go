package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flathunt/flathunt/app/database"
	"github.com/flathunt/flathunt/app/notify"
)

// SendDigestTask recomputes both categorization views and delivers the
// rendered digest through the selected channel.
type SendDigestTask struct {
	Task
	repo     database.ListingRepository
	notifier notify.Notifier
	channel  string
}

func NewSendDigestTask(repo database.ListingRepository, notifier notify.Notifier, channel string) *SendDigestTask {
	return &SendDigestTask{
		Task:     NewTask(TaskTypeSendDigest),
		repo:     repo,
		notifier: notifier,
		channel:  channel,
	}
}

func (t *SendDigestTask) Execute(ctx context.Context) error {
	forTwo, err := t.repo.GetForTwo(ctx)
	if err != nil {
		return fmt.Errorf("failed to query for_two view: %w", err)
	}

	forThree, err := t.repo.GetForThree(ctx)
	if err != nil {
		return fmt.Errorf("failed to query for_three view: %w", err)
	}

	if err := t.notifier.Send(ctx, forTwo, forThree); err != nil {
		return fmt.Errorf("failed to deliver digest: %w", err)
	}

	slog.Info("Task completed",
		"type", "SendDigest",
		"duration", t.GetDuration(),
		"channel", t.channel,
		"for_two", len(forTwo),
		"for_three", len(forThree))

	return nil
}
