package notify

import (
	"context"

	"github.com/flathunt/flathunt/app/database"
)

// Notifier delivers one rendered digest for the two categorized buckets.
// Exactly one notifier is used per run; a failed delivery is fatal for
// that run and is never retried.
type Notifier interface {
	Send(ctx context.Context, forTwo, forThree []database.CategorizedListing) error
}
