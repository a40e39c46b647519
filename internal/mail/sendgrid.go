// Package mail delivers notification emails through SendGrid.
package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/ventaroai/storefront/internal/notify"
)

// SendGridSender implements notify.Sender on the SendGrid v3 mail API.
type SendGridSender struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

var _ notify.Sender = (*SendGridSender)(nil)

// NewSendGridSender builds a sender. An empty API key is accepted so the
// service can boot without mail configured; sends then fail and are logged by
// the notifier, matching the best-effort delivery contract.
func NewSendGridSender(apiKey, fromAddr, fromName string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromAddr),
	}
}

// Send delivers one envelope. Both the plain-text and HTML bodies are always
// attached so text-only mail clients see the same information.
func (s *SendGridSender) Send(ctx context.Context, env notify.Envelope) error {
	to := sgmail.NewEmail("", env.To)
	message := sgmail.NewSingleEmail(s.from, env.Subject, to, env.Text, env.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
