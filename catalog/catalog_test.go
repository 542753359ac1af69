package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratguide/feeds"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/rdx"
)

type fakeFetcher struct {
	calls int
	body  string
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.body), nil
}

func newCatalog(f Fetcher, urls map[Collection]string) *Catalog {
	return New(f, rdx.NewMemoryCache(), time.Minute, urls, logger.Nop())
}

func TestEmbeddedCollections(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(&fakeFetcher{}, nil)

	acts, err := c.PlannerActivities(ctx)
	require.NoError(t, err)
	require.Len(t, acts, 6)
	assert.Equal(t, "1", acts[0].ID)
	assert.Equal(t, models.CostModerate, acts[0].Cost)
	assert.InDelta(t, 8, acts[0].Hours, 1e-9)
	assert.Equal(t, models.CostFree, acts[3].Cost)

	dests, err := c.Destinations(ctx)
	require.NoError(t, err)
	assert.Len(t, dests, 6)

	tours, err := c.Tours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 6)
	assert.Equal(t, "1,000-2,500 THB", tours[0].PriceRange)

	dishes, err := c.Dishes(ctx)
	require.NoError(t, err)
	assert.Len(t, dishes, 6)

	rests, err := c.Restaurants(ctx)
	require.NoError(t, err)
	require.Len(t, rests, 4)
	assert.Equal(t, models.CostLuxury, rests[2].PriceRange)

	featured, err := c.Featured(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	assert.Equal(t, "Phanom District", featured[0].Location)
	assert.Equal(t, []string{"Adventure", "Nature", "Wildlife"}, featured[0].Tags)

	tips, err := c.FoodTips()
	require.NoError(t, err)
	assert.Len(t, tips, 5)

	types, err := c.TripTypes()
	require.NoError(t, err)
	assert.Len(t, types, 3)
}

func TestRemoteFeedIsCached(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetcher{body: `[{"id":"a","name":"Ang Thong","timeNeeded":6,"cost":"$$$"}]`}
	c := newCatalog(f, map[Collection]string{Planner: "https://feeds.example/planner"})

	for range 3 {
		acts, err := c.PlannerActivities(ctx)
		require.NoError(t, err)
		require.Len(t, acts, 1)
		assert.Equal(t, "Ang Thong", acts[0].Name)
	}
	assert.Equal(t, 1, f.calls)

	remote, err := c.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Collection{Planner}, remote)

	_, err = c.PlannerActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
}

func TestRemoteFeedErrorIsReturned(t *testing.T) {
	f := &fakeFetcher{err: &feeds.StatusError{URL: "x", Code: 503}}
	c := newCatalog(f, map[Collection]string{Tours: "https://feeds.example/tours"})

	_, err := c.Tours(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 503", feeds.UserMessage(err))

	// Collections without a feed are unaffected.
	dishes, err := c.Dishes(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, dishes)
}

func TestInvalidRecordsAreSkipped(t *testing.T) {
	f := &fakeFetcher{body: `[{"id":"ok","name":"Pier","priceRange":"$"},{"id":"bad","name":"Nope","priceRange":"€"}]`}
	c := newCatalog(f, map[Collection]string{Restaurants: "https://feeds.example/r"})

	got, err := c.Restaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestEmptyURLMeansEmbedded(t *testing.T) {
	c := newCatalog(&fakeFetcher{}, map[Collection]string{Planner: ""})
	assert.False(t, c.Remote(Planner))
}
