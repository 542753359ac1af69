package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratguide/activity"
	"suratguide/admin"
	"suratguide/auth"
	"suratguide/catalog"
	"suratguide/chats"
	"suratguide/contact"
	"suratguide/db"
	"suratguide/globals"
	"suratguide/home"
	"suratguide/itinerary"
	"suratguide/logger"
	"suratguide/menu"
	"suratguide/middleware"
	"suratguide/models"
	"suratguide/places"
	"suratguide/ratelim"
	"suratguide/rdx"
)

type itineraryStore struct{ saved map[string]models.SavedItinerary }

func (s *itineraryStore) Save(_ context.Context, it models.SavedItinerary) error {
	s.saved[it.ItineraryID] = it
	return nil
}

func (s *itineraryStore) Get(_ context.Context, id string) (models.SavedItinerary, error) {
	it, ok := s.saved[id]
	if !ok {
		return models.SavedItinerary{}, db.ErrNotFound
	}
	return it, nil
}

func (s *itineraryStore) List(context.Context, int64) ([]models.SavedItinerary, error) {
	out := make([]models.SavedItinerary, 0, len(s.saved))
	for _, it := range s.saved {
		out = append(out, it)
	}
	return out, nil
}

type contactStore struct{ msgs []models.ContactMessage }

func (s *contactStore) Save(_ context.Context, msg models.ContactMessage) error {
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *contactStore) List(context.Context, int64) ([]models.ContactMessage, error) {
	return s.msgs, nil
}

func newTestRouter(t *testing.T) (*httprouter.Router, *middleware.JWT) {
	t.Helper()
	log := logger.Nop()
	c := catalog.New(nil, rdx.NewMemoryCache(), time.Minute, nil, log)
	its := &itineraryStore{saved: map[string]models.SavedItinerary{}}
	msgs := &contactStore{}
	jwt := middleware.NewJWT("routes-test-secret-0123456789")

	assistant := chats.NewAssistant("", time.Second, log)
	hub := chats.NewHub(assistant, log)

	router := httprouter.New()
	RoutesWrapper(router, Handlers{
		Home:      home.NewHandler(c, log),
		Places:    places.NewHandler(c, log),
		Activity:  activity.NewHandler(c, log),
		Menu:      menu.NewHandler(c, log),
		Itinerary: itinerary.NewHandler(c, its, "http://localhost:3000", log),
		Chat:      chats.NewHandler(assistant, hub),
		Contact:   contact.NewHandler(msgs, log),
		Auth:      auth.NewHandler(jwt, "admin", "", time.Hour, log),
		Admin:     admin.NewHandler(c, msgs, its, log),
		JWT:       jwt,
	}, ratelim.NewRateLimiter(60, 2, log))
	return router, jwt
}

func TestPublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/health",
		"/api/home",
		"/api/destinations?category=Nature",
		"/api/activities",
		"/api/food/dishes",
		"/api/food/restaurants",
		"/api/food/tips",
		"/api/planner/activities",
		"/placeholder.png?width=10&height=10",
	} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestUnknownItinerary(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/itineraries/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	router, jwt := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contact", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwt.Issue("someone", []string{"visitor"}, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/contact", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	token, _, err = jwt.Issue("admin", []string{globals.AdminRole}, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/itineraries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"x"}`)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestContactIsRateLimited(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Hello"}`

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.1.1.1:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}
