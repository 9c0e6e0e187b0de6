package notify

import (
	"context"
	"strings"
	"time"
)

// Event describes one received feedback submission.
type Event struct {
	ID               string
	Rating           int
	FoodRating       *int
	ServiceRating    *int
	AtmosphereRating *int
	Comment          string
	ContactPhone     string
	ContactEmail     string
	ReceivedAt       time.Time
}

// Notifier publishes feedback events to a notification channel. Delivery is
// best-effort: the intake path fires it in the background and only logs
// failures, so an implementation must never block indefinitely.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// Stars renders a rating as a row of filled and empty stars, e.g. "★★★☆☆".
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
