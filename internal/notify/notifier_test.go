package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestRenderEmail(t *testing.T) {
	food := 4
	event := Event{
		ID:           "ref-1",
		Rating:       2,
		FoodRating:   &food,
		Comment:      `service was <slow>`,
		ContactPhone: "050-1234567",
		ReceivedAt:   time.Date(2026, 8, 30, 19, 30, 0, 0, time.UTC),
	}

	body := renderEmail(event)

	assert.Contains(t, body, "★★☆☆☆")
	assert.Contains(t, body, "Food: 4/5")
	assert.NotContains(t, body, "Service:")
	// Comment is HTML-escaped.
	assert.Contains(t, body, "service was &lt;slow&gt;")
	assert.Contains(t, body, "050-1234567")
	assert.Contains(t, body, "2026-08-30 19:30")
	assert.True(t, strings.Contains(body, "ref-1"))
}
