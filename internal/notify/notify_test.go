package notify

import (
	"context"
	"errors"
	"testing"
)

// recordingSender captures envelopes and fails for configured recipients.
type recordingSender struct {
	sent   []Envelope
	failTo map[string]bool
}

func (s *recordingSender) Send(_ context.Context, env Envelope) error {
	s.sent = append(s.sent, env)
	if s.failTo[env.To] {
		return errors.New("delivery refused")
	}
	return nil
}

func TestDispatchSendsBoth(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, nil)

	n.Dispatch(context.Background(),
		Envelope{To: "client@example.com", Subject: "a"},
		Envelope{To: adminAddr, Subject: "b"},
	)

	if len(sender.sent) != 2 {
		t.Fatalf("got %d sends, want 2", len(sender.sent))
	}
	if sender.sent[0].To != "client@example.com" || sender.sent[1].To != adminAddr {
		t.Errorf("send order = %q, %q", sender.sent[0].To, sender.sent[1].To)
	}
}

func TestDispatchFailureIsolation(t *testing.T) {
	// A failed submitter send must not stop the operator send, and the
	// other way around.
	for _, failing := range []string{"client@example.com", adminAddr} {
		sender := &recordingSender{failTo: map[string]bool{failing: true}}
		n := NewNotifier(sender, nil)

		n.Dispatch(context.Background(),
			Envelope{To: "client@example.com", Subject: "a"},
			Envelope{To: adminAddr, Subject: "b"},
		)

		if len(sender.sent) != 2 {
			t.Fatalf("failing %s: got %d sends, want 2", failing, len(sender.sent))
		}
	}
}
