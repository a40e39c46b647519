// Package notify implements the transactional notification pipeline shared
// by the storefront's form endpoints: a validated submission is rendered into
// paired HTML and plain-text bodies for two audiences, then delivered
// best-effort to both.
package notify

import (
	"context"

	"github.com/ventaroai/storefront/internal/metrics"
	"github.com/ventaroai/storefront/pkg/logger"
)

// Envelope is one outbound notification. It is constructed per request and
// discarded after the send attempt; there is no retry or outbox.
type Envelope struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a single envelope.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// Notifier sends the submitter and operator notifications for one
// submission. The two sends are independent: a failure of either is logged
// and swallowed, and never aborts the other or the surrounding request.
type Notifier struct {
	sender Sender
	log    *logger.Logger
}

// NewNotifier wires a delivery backend.
func NewNotifier(sender Sender, log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewDefault("notify")
	}
	return &Notifier{sender: sender, log: log}
}

// Dispatch attempts both sends. Delivery is best-effort: the user-visible
// action already succeeded by the time this runs.
func (n *Notifier) Dispatch(ctx context.Context, submitter, operator Envelope) {
	n.attempt(ctx, "submitter", submitter)
	n.attempt(ctx, "operator", operator)
}

func (n *Notifier) attempt(ctx context.Context, audience string, env Envelope) {
	err := n.sender.Send(ctx, env)
	metrics.RecordEmailAttempt(audience, err == nil)
	if err != nil {
		n.log.WithError(err).
			WithField("audience", audience).
			WithField("subject", env.Subject).
			Warn("notification send failed")
		return
	}
	n.log.WithField("audience", audience).
		WithField("subject", env.Subject).
		Info("notification sent")
}
