package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/flathunt/flathunt/app/database"
)

// ErrMissingEmailSettings indicates an incomplete SMTP configuration; no
// SMTP session is opened in that case.
var ErrMissingEmailSettings = errors.New("missing sender, receiver or SMTP password")

// EmailSettings is the SMTP configuration handed to the notifier at
// construction time.
type EmailSettings struct {
	Host     string
	Port     int
	Sender   string
	Receiver string
	Password string
	Subject  string
}

var _ Notifier = (*EmailNotifier)(nil)

// EmailNotifier delivers the HTML digest over one authenticated SMTP
// session on the submission port with STARTTLS.
type EmailNotifier struct {
	renderer *Renderer
	settings EmailSettings
}

func NewEmailNotifier(renderer *Renderer, settings EmailSettings) *EmailNotifier {
	return &EmailNotifier{renderer: renderer, settings: settings}
}

func (n *EmailNotifier) Send(ctx context.Context, forTwo, forThree []database.CategorizedListing) error {
	if n.settings.Sender == "" || n.settings.Receiver == "" || n.settings.Password == "" {
		return ErrMissingEmailSettings
	}

	msg := mail.NewMsg()
	if err := msg.From(n.settings.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.settings.Receiver); err != nil {
		return fmt.Errorf("invalid receiver address: %w", err)
	}
	msg.Subject(n.settings.Subject)
	msg.SetBodyString(mail.TypeTextHTML, n.renderer.RenderHTML(forTwo, forThree))

	client, err := mail.NewClient(n.settings.Host,
		mail.WithPort(n.settings.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(n.settings.Sender),
		mail.WithPassword(n.settings.Password))
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}

	return nil
}
