package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratguide/models"
)

// connectTest needs a live server; set MONGO_TEST_URI to run these tests.
func connectTest(t *testing.T) *Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	name := "suratguide_test_" + uuid.NewString()[:8]

	d, err := Connect(ctx, uri, name)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = d.Client.Database(name).Drop(ctx)
		_ = d.Disconnect(ctx)
	})
	return d
}

func TestItineraryStore(t *testing.T) {
	d := connectTest(t)
	ctx := context.Background()
	store := NewItineraryStore(d)

	it := models.SavedItinerary{
		ItineraryID:   uuid.NewString(),
		Name:          "Weekend in Khao Sok",
		Preferences:   models.Preferences{Duration: models.TripShort, Interests: []string{"Nature"}},
		Selection:     []string{"1", "5"},
		TotalHours:    12,
		EstimatedDays: 2,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.Save(ctx, it))

	got, err := store.Get(ctx, it.ItineraryID)
	require.NoError(t, err)
	assert.Equal(t, it, got)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestContactStore(t *testing.T) {
	d := connectTest(t)
	ctx := context.Background()
	store := NewContactStore(d)

	list, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for i, subject := range []string{"older", "newer"} {
		require.NoError(t, store.Save(ctx, models.ContactMessage{
			MessageID: uuid.NewString(),
			Name:      "Nok",
			Email:     "nok@example.com",
			Subject:   subject,
			Message:   "Ferry times to Koh Samui?",
			CreatedAt: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}))
	}

	list, err = store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Subject)
}
