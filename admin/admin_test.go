package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratguide/catalog"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/rdx"
)

type fakeContacts struct {
	msgs      []models.ContactMessage
	err       error
	lastLimit int64
}

func (f *fakeContacts) List(_ context.Context, limit int64) ([]models.ContactMessage, error) {
	f.lastLimit = limit
	return f.msgs, f.err
}

type fakeItineraries struct {
	its       []models.SavedItinerary
	err       error
	lastLimit int64
}

func (f *fakeItineraries) List(_ context.Context, limit int64) ([]models.SavedItinerary, error) {
	f.lastLimit = limit
	return f.its, f.err
}

type countingFetcher struct{ calls int }

func (f *countingFetcher) Fetch(context.Context, string) (json.RawMessage, error) {
	f.calls++
	return json.RawMessage(`[{"id":"1","name":"Koh Tao","category":"Nature","description":"Dive site","price":"$$","rating":4.5}]`), nil
}

func newRouter(h *Handler) *httprouter.Router {
	router := httprouter.New()
	router.POST("/api/admin/feeds/refresh", h.RefreshFeeds)
	router.POST("/api/admin/feeds/warm", h.WarmFeeds)
	router.GET("/api/admin/contact", h.ListContact)
	router.GET("/api/admin/itineraries", h.ListItineraries)
	return router
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRefreshAndWarmFeeds(t *testing.T) {
	fetcher := &countingFetcher{}
	cache := rdx.NewMemoryCache()
	c := catalog.New(fetcher, cache, time.Hour,
		map[catalog.Collection]string{catalog.Destinations: "https://feeds.example/destinations"},
		logger.Nop())
	router := newRouter(NewHandler(c, &fakeContacts{}, &fakeItineraries{}, logger.Nop()))

	rec := do(router, http.MethodPost, "/api/admin/feeds/warm")
	require.Equal(t, http.StatusOK, rec.Code)
	var warm struct {
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &warm))
	assert.Equal(t, 1, warm.Counts["destinations"])
	assert.Equal(t, 6, warm.Counts["planner"])
	assert.Equal(t, 1, fetcher.calls)

	do(router, http.MethodPost, "/api/admin/feeds/warm")
	assert.Equal(t, 1, fetcher.calls, "second warm is served from cache")

	rec = do(router, http.MethodPost, "/api/admin/feeds/refresh")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refreshed":["destinations"]}`, rec.Body.String())

	do(router, http.MethodPost, "/api/admin/feeds/warm")
	assert.Equal(t, 2, fetcher.calls)
}

func TestListContact(t *testing.T) {
	contacts := &fakeContacts{msgs: []models.ContactMessage{{MessageID: "m1", Name: "Ann"}}}
	router := newRouter(NewHandler(catalog.New(nil, rdx.NewMemoryCache(), time.Minute, nil, logger.Nop()), contacts, &fakeItineraries{}, logger.Nop()))

	rec := do(router, http.MethodGet, "/api/admin/contact?limit=10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), contacts.lastLimit)

	var body struct {
		Messages []models.ContactMessage `json:"messages"`
		Count    int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "m1", body.Messages[0].MessageID)

	do(router, http.MethodGet, "/api/admin/contact?limit=9999")
	assert.Equal(t, int64(500), contacts.lastLimit)

	contacts.err = errors.New("mongo down")
	rec = do(router, http.MethodGet, "/api/admin/contact")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int64(50), contacts.lastLimit)
}

func TestListItineraries(t *testing.T) {
	its := &fakeItineraries{}
	router := newRouter(NewHandler(catalog.New(nil, rdx.NewMemoryCache(), time.Minute, nil, logger.Nop()), &fakeContacts{}, its, logger.Nop()))

	rec := do(router, http.MethodGet, "/api/admin/itineraries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"itineraries":[],"count":0}`, rec.Body.String())

	its.err = errors.New("mongo down")
	rec = do(router, http.MethodGet, "/api/admin/itineraries")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
