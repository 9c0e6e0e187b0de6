package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

// EmailNotifier sends each feedback event to the restaurant owner's inbox
// via Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewEmailNotifier(apiKey, from, to string) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *EmailNotifier) Publish(ctx context.Context, event Event) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: fmt.Sprintf("New feedback: %s", Stars(event.Rating)),
		Html:    renderEmail(event),
	}

	if _, err := n.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send feedback email: %w", err)
	}
	return nil
}

func renderEmail(event Event) string {
	body := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">New guest feedback</h2>
			<p style="font-size: 20px;">%s</p>`, Stars(event.Rating))

	body += subRatingRow("Food", event.FoodRating)
	body += subRatingRow("Service", event.ServiceRating)
	body += subRatingRow("Atmosphere", event.AtmosphereRating)

	if event.Comment != "" {
		body += fmt.Sprintf(`<p>%s</p>`, html.EscapeString(event.Comment))
	}
	if event.ContactPhone != "" || event.ContactEmail != "" {
		body += fmt.Sprintf(`<p style="color: #888; font-size: 14px;">Contact: %s %s</p>`,
			html.EscapeString(event.ContactPhone), html.EscapeString(event.ContactEmail))
	}

	body += fmt.Sprintf(`
			<p style="color: #aaa; font-size: 12px;">Received %s · ref %s</p>
		</div>`, event.ReceivedAt.Format("2006-01-02 15:04"), event.ID)
	return body
}

func subRatingRow(label string, rating *int) string {
	if rating == nil {
		return ""
	}
	return fmt.Sprintf(`<p style="margin: 2px 0;">%s: %d/5</p>`, label, *rating)
}
