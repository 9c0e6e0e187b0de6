package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"kabakeh-backend/internal/models"
	"kabakeh-backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements FeedbackStore in memory.
type fakeStore struct {
	records   []models.Feedback
	createErr error
	listErr   error
	lastLimit int64
}

func (s *fakeStore) Create(ctx context.Context, feedback *models.Feedback) error {
	if s.createErr != nil {
		return s.createErr
	}
	feedback.CreatedAt = time.Now()
	s.records = append(s.records, *feedback)
	return nil
}

func (s *fakeStore) ListRecent(ctx context.Context, limit int64) ([]models.Feedback, error) {
	s.lastLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	// Newest first, capped — the shape the Mongo query produces.
	out := []models.Feedback{}
	for i := len(s.records) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func seedRecords(n int) []models.Feedback {
	records := make([]models.Feedback, n)
	for i := range records {
		records[i] = models.Feedback{Rating: i%5 + 1, CreatedAt: time.Now()}
	}
	return records
}

// fakeNotifier records published events on a channel so tests can wait for
// the background publish.
type fakeNotifier struct {
	events chan notify.Event
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan notify.Event, 1)}
}

func (n *fakeNotifier) Publish(ctx context.Context, event notify.Event) error {
	n.events <- event
	return nil
}

func submit(t *testing.T, h *FeedbackHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.SubmitFeedback(rec, req)
	return rec
}

func TestSubmitFeedbackAcceptsAllValidRatings(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		store := &fakeStore{}
		h := NewFeedbackHandler(store, newFakeNotifier())

		before := time.Now()
		rec := submit(t, h, `{"rating":`+strconv.Itoa(rating)+`}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
		require.Len(t, store.records, 1)
		assert.Equal(t, rating, store.records[0].Rating)
		assert.False(t, store.records[0].CreatedAt.Before(before))
		assert.Nil(t, store.records[0].Comment)
	}
}

func TestSubmitFeedbackRejectsBadRatings(t *testing.T) {
	for _, body := range []string{
		`{"rating":0}`,
		`{"rating":6}`,
		`{"rating":-1}`,
		`{"rating":3.5}`,
		`{"rating":"excellent"}`,
		`{"rating":null}`,
		`{"comment":"no rating at all"}`,
	} {
		store := &fakeStore{}
		h := NewFeedbackHandler(store, newFakeNotifier())

		rec := submit(t, h, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.JSONEq(t, `{"error":"Rating must be 1-5"}`, rec.Body.String())
		assert.Empty(t, store.records, "body %s", body)
	}
}

func TestSubmitFeedbackRejectsInvalidJSON(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	rec := submit(t, h, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON"}`, rec.Body.String())
	assert.Empty(t, store.records)
}

func TestSubmitFeedbackCoercesStringRating(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	rec := submit(t, h, `{"rating":"4"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.records, 1)
	assert.Equal(t, 4, store.records[0].Rating)
}

func TestSubmitFeedbackTruncatesComment(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	long := strings.Repeat("x", 3000)
	rec := submit(t, h, `{"rating":2,"comment":"`+long+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.records, 1)
	require.NotNil(t, store.records[0].Comment)
	assert.Len(t, *store.records[0].Comment, 2000)
}

func TestSubmitFeedbackTruncatesContactFields(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	phone := strings.Repeat("1", 80)
	email := strings.Repeat("e", 250)
	rec := submit(t, h, `{"rating":3,"contact_phone":"`+phone+`","contact_email":"`+email+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.records, 1)
	require.NotNil(t, store.records[0].ContactPhone)
	assert.Len(t, *store.records[0].ContactPhone, 50)
	require.NotNil(t, store.records[0].ContactEmail)
	assert.Len(t, *store.records[0].ContactEmail, 200)
}

func TestSubmitFeedbackEmptyStringsBecomeNull(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	rec := submit(t, h, `{"rating":1,"comment":"","contact_phone":"","contact_email":""}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.records, 1)
	assert.Nil(t, store.records[0].Comment)
	assert.Nil(t, store.records[0].ContactPhone)
	assert.Nil(t, store.records[0].ContactEmail)
}

// Sub-ratings are stored as submitted, without a server-side range check.
// The submission form already constrains them to 1-5, so an out-of-range
// value here proves the pass-through.
func TestSubmitFeedbackSubRatingsPassThroughUnclamped(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	rec := submit(t, h, `{"rating":5,"food_rating":9,"service_rating":4}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.records, 1)
	require.NotNil(t, store.records[0].FoodRating)
	assert.Equal(t, 9, *store.records[0].FoodRating)
	require.NotNil(t, store.records[0].ServiceRating)
	assert.Equal(t, 4, *store.records[0].ServiceRating)
	assert.Nil(t, store.records[0].AtmosphereRating)
}

func TestSubmitFeedbackSurfacesStoreError(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection refused")}
	h := NewFeedbackHandler(store, newFakeNotifier())

	rec := submit(t, h, `{"rating":4}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, rec.Body.String())
}

func TestSubmitFeedbackPublishesNotification(t *testing.T) {
	store := &fakeStore{}
	notifier := newFakeNotifier()
	h := NewFeedbackHandler(store, notifier)

	rec := submit(t, h, `{"rating":2,"comment":"cold soup","contact_phone":"050-1234567"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case event := <-notifier.events:
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, 2, event.Rating)
		assert.Equal(t, "cold soup", event.Comment)
		assert.Equal(t, "050-1234567", event.ContactPhone)
	case <-time.After(time.Second):
		t.Fatal("notification was never published")
	}
}

func TestListFeedbackNewestFirstAndCapped(t *testing.T) {
	store := &fakeStore{}
	h := NewFeedbackHandler(store, newFakeNotifier())

	for rating := 1; rating <= 3; rating++ {
		rec := submit(t, h, `{"rating":`+strconv.Itoa(rating)+`}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
	rec := httptest.NewRecorder()
	h.ListFeedback(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(200), store.lastLimit)

	var resp struct {
		Data []models.Feedback `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Data[0].Rating)
	assert.Equal(t, 2, resp.Data[1].Rating)
	assert.Equal(t, 1, resp.Data[2].Rating)
}

func TestListFeedbackSurfacesStoreError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("timeout")}
	h := NewFeedbackHandler(store, newFakeNotifier())

	req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
	rec := httptest.NewRecorder()
	h.ListFeedback(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"timeout"}`, rec.Body.String())
}
