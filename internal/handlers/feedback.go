package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"kabakeh-backend/internal/models"
	"kabakeh-backend/internal/notify"

	"github.com/google/uuid"
)

// maxFeedbackList is a hard ceiling, not a page size — there is no
// pagination beyond it.
const maxFeedbackList = 200

const (
	maxCommentLen = 2000
	maxPhoneLen   = 50
	maxEmailLen   = 200
)

// FeedbackStore is the persistence boundary for feedback records.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListRecent(ctx context.Context, limit int64) ([]models.Feedback, error)
}

type FeedbackHandler struct {
	store    FeedbackStore
	notifier notify.Notifier
}

func NewFeedbackHandler(store FeedbackStore, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		store:    store,
		notifier: notifier,
	}
}

// --- POST /feedback ---
// The one deliberately public write path in the system.

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil || body == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	rating, ok := intField(body, "rating")
	if !ok || rating < 1 || rating > 5 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Rating must be 1-5"})
		return
	}

	feedback := &models.Feedback{
		Rating: rating,
		// Sub-ratings are stored as submitted, without a range check; the
		// form constrains them to 1-5 before the request is ever made.
		FoodRating:       optionalIntField(body, "food_rating"),
		ServiceRating:    optionalIntField(body, "service_rating"),
		AtmosphereRating: optionalIntField(body, "atmosphere_rating"),
		Comment:          textField(body, "comment", maxCommentLen),
		ContactPhone:     textField(body, "contact_phone", maxPhoneLen),
		ContactEmail:     textField(body, "contact_email", maxEmailLen),
	}

	if err := h.store.Create(r.Context(), feedback); err != nil {
		log.Printf("Error creating feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// Notify in a background goroutine (best-effort, never blocks the caller)
	event := notify.Event{
		ID:               uuid.New().String(),
		Rating:           feedback.Rating,
		FoodRating:       feedback.FoodRating,
		ServiceRating:    feedback.ServiceRating,
		AtmosphereRating: feedback.AtmosphereRating,
		Comment:          deref(feedback.Comment),
		ContactPhone:     deref(feedback.ContactPhone),
		ContactEmail:     deref(feedback.ContactEmail),
		ReceivedAt:       time.Now(),
	}
	go func() {
		if err := h.notifier.Publish(context.Background(), event); err != nil {
			log.Printf("Error publishing feedback notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// --- GET /admin/feedback ---
// Mounted behind the admin session middleware.

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.store.ListRecent(r.Context(), maxFeedbackList)
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": feedbacks})
}

// --- Payload coercion helpers ---

// intField coerces a payload value to an integer. Numbers must be integral;
// numeric strings are accepted the way a loosely typed client would send them.
func intField(body map[string]interface{}, key string) (int, bool) {
	raw, present := body[key]
	if !present || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, err := v.Float64(); err == nil && f == float64(int64(f)) {
			return int(f), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}

// optionalIntField returns a pointer for a present, coercible value and nil
// otherwise.
func optionalIntField(body map[string]interface{}, key string) *int {
	if n, ok := intField(body, key); ok {
		return &n
	}
	return nil
}

// textField coerces a payload value to text and truncates it to maxLen
// characters. An absent or empty value becomes nil, never an empty string.
func textField(body map[string]interface{}, key string, maxLen int) *string {
	raw, present := body[key]
	if !present || raw == nil {
		return nil
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case bool:
		s = strconv.FormatBool(v)
	default:
		return nil
	}

	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
