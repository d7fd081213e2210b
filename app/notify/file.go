package notify

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/flathunt/flathunt/app/database"
)

var _ Notifier = (*FileNotifier)(nil)

// FileNotifier appends the plain-text digest to the result log
type FileNotifier struct {
	renderer *Renderer
	path     string
	now      func() time.Time
}

func NewFileNotifier(renderer *Renderer, path string) *FileNotifier {
	return &FileNotifier{
		renderer: renderer,
		path:     path,
		now:      time.Now,
	}
}

func (n *FileNotifier) Send(ctx context.Context, forTwo, forThree []database.CategorizedListing) error {
	digest := n.renderer.RenderText(forTwo, forThree, n.now())

	file, err := os.OpenFile(n.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open result log: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(digest); err != nil {
		return fmt.Errorf("failed to append digest to result log: %w", err)
	}

	return nil
}
