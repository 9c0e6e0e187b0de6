package notify

import (
	"context"
	"log"
)

// LogNotifier implements Notifier by writing events to the process log. It is
// the default when no email delivery is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Publish(ctx context.Context, event Event) error {
	log.Printf("📝 New feedback %s: %s comment=%q phone=%q email=%q",
		event.ID, Stars(event.Rating), event.Comment, event.ContactPhone, event.ContactEmail)
	return nil
}
