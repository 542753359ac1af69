package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratguide/catalog"
	"suratguide/feeds"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/rdx"
)

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, string) (json.RawMessage, error) {
	return nil, feeds.ErrUnexpectedShape
}

func newRouter(c *catalog.Catalog) *httprouter.Router {
	h := NewHandler(c, logger.Nop())
	router := httprouter.New()
	router.GET("/api/food/dishes", h.GetDishes)
	router.GET("/api/food/restaurants", h.GetRestaurants)
	router.GET("/api/food/tips", h.GetFoodTips)
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestFoodGuide(t *testing.T) {
	router := newRouter(catalog.New(nil, rdx.NewMemoryCache(), time.Minute, nil, logger.Nop()))

	rec := get(t, router, "/api/food/dishes?category=Dessert")
	require.Equal(t, http.StatusOK, rec.Code)
	var dishes struct {
		Dishes     []models.Dish `json:"dishes"`
		Categories []string      `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dishes))
	assert.Len(t, dishes.Dishes, 2)
	assert.Equal(t, []string{"All", "Main Course", "Noodles", "Dessert", "Snack"}, dishes.Categories)

	rec = get(t, router, "/api/food/restaurants")
	require.Equal(t, http.StatusOK, rec.Code)
	var rests struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rests))
	assert.Len(t, rests.Restaurants, 4)

	rec = get(t, router, "/api/food/tips")
	require.Equal(t, http.StatusOK, rec.Code)
	var tips struct {
		Tips []models.FoodTip `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tips))
	require.Len(t, tips.Tips, 5)
	assert.Equal(t, "Best Times to Eat", tips.Tips[0].Title)
}

func TestDishesFeedFailure(t *testing.T) {
	c := catalog.New(failingFetcher{}, rdx.NewMemoryCache(), time.Minute,
		map[catalog.Collection]string{catalog.Dishes: "https://feeds.example/dishes"}, logger.Nop())

	rec := get(t, newRouter(c), "/api/food/dishes")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"Unexpected data format from API."}`, rec.Body.String())

	// Restaurants have no feed configured and still load.
	assert.Equal(t, http.StatusOK, get(t, newRouter(c), "/api/food/restaurants").Code)
}
