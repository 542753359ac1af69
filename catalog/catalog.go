// Package catalog serves the site's collections. Each collection comes from its feed
// when one is configured and from the curated YAML compiled into the binary otherwise.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"suratguide/feeds"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/rdx"
)

//go:embed data/*.yaml
var dataFS embed.FS

type Collection string

const (
	Planner      Collection = "planner"
	Destinations Collection = "destinations"
	Tours        Collection = "activities"
	Dishes       Collection = "dishes"
	Restaurants  Collection = "restaurants"
	Featured     Collection = "home"
)

// Feeds lists every collection that can be backed by a remote feed.
var Feeds = []Collection{Planner, Destinations, Tours, Dishes, Restaurants, Featured}

var embeddedFile = map[Collection]string{
	Planner:      "data/planner.yaml",
	Destinations: "data/destinations.yaml",
	Tours:        "data/tours.yaml",
	Dishes:       "data/dishes.yaml",
	Restaurants:  "data/restaurants.yaml",
	Featured:     "data/featured.yaml",
}

// Fetcher is satisfied by *feeds.Client.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (json.RawMessage, error)
}

type Catalog struct {
	fetcher Fetcher
	cache   rdx.Cache
	ttl     time.Duration
	urls    map[Collection]string
	log     *logger.Logger
}

// New builds a catalog. urls maps collections to feed endpoints; collections
// without an entry are served from the embedded data.
func New(fetcher Fetcher, cache rdx.Cache, ttl time.Duration, urls map[Collection]string, log *logger.Logger) *Catalog {
	clean := make(map[Collection]string, len(urls))
	for coll, u := range urls {
		if u != "" {
			clean[coll] = u
		}
	}
	return &Catalog{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		urls:    clean,
		log:     log.With("component", "catalog"),
	}
}

func cacheKey(coll Collection) string {
	return "feed:" + string(coll)
}

// Remote reports whether coll is read from a feed.
func (c *Catalog) Remote(coll Collection) bool {
	_, ok := c.urls[coll]
	return ok
}

func (c *Catalog) items(ctx context.Context, coll Collection) ([]any, error) {
	url, ok := c.urls[coll]
	if !ok {
		return embeddedItems(coll)
	}

	key := cacheKey(coll)
	if raw, err := c.cache.Get(ctx, key); err == nil {
		if items, err := feeds.Items(raw); err == nil {
			return items, nil
		}
		c.log.Warn("dropping unreadable cache entry", "key", key)
	} else if !errors.Is(err, rdx.ErrMiss) {
		c.log.Warn("cache read failed", "key", key, "error", err)
	}

	raw, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", coll, err)
	}
	items, err := feeds.Items(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", coll, err)
	}

	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
	return items, nil
}

func embeddedItems(coll Collection) ([]any, error) {
	name, ok := embeddedFile[coll]
	if !ok {
		return nil, fmt.Errorf("catalog: no embedded data for %q", coll)
	}
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	var items []any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	if items == nil {
		items = []any{}
	}
	return items, nil
}

func load[T any](ctx context.Context, c *Catalog, coll Collection, decode func([]any) ([]T, error)) ([]T, error) {
	items, err := c.items(ctx, coll)
	if err != nil {
		return nil, err
	}
	out, err := decode(items)
	if err != nil {
		c.log.Warn("skipped invalid records", "collection", coll, "error", err)
	}
	return out, nil
}

func (c *Catalog) PlannerActivities(ctx context.Context) ([]models.ActivityRecord, error) {
	return load(ctx, c, Planner, feeds.DecodeActivities)
}

func (c *Catalog) Destinations(ctx context.Context) ([]models.Destination, error) {
	return load(ctx, c, Destinations, feeds.DecodeDestinations)
}

func (c *Catalog) Tours(ctx context.Context) ([]models.Tour, error) {
	return load(ctx, c, Tours, feeds.DecodeTours)
}

func (c *Catalog) Dishes(ctx context.Context) ([]models.Dish, error) {
	return load(ctx, c, Dishes, feeds.DecodeDishes)
}

func (c *Catalog) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	return load(ctx, c, Restaurants, feeds.DecodeRestaurants)
}

func (c *Catalog) Featured(ctx context.Context) ([]models.FeaturedPlace, error) {
	return load(ctx, c, Featured, feeds.DecodeFeatured)
}

// FoodTips and TripTypes have no feed.
func (c *Catalog) FoodTips() ([]models.FoodTip, error) {
	var tips []models.FoodTip
	if err := readYAML("data/tips.yaml", &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

func (c *Catalog) TripTypes() ([]models.TripType, error) {
	var types []models.TripType
	if err := readYAML("data/triptypes.yaml", &types); err != nil {
		return nil, err
	}
	return types, nil
}

func readYAML(name string, dst any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

// Refresh drops every cached feed payload so the next read hits the feeds again.
// It returns the collections that are feed-backed.
func (c *Catalog) Refresh(ctx context.Context) ([]Collection, error) {
	keys := make([]string, 0, len(Feeds))
	remote := make([]Collection, 0, len(Feeds))
	for _, coll := range Feeds {
		keys = append(keys, cacheKey(coll))
		if c.Remote(coll) {
			remote = append(remote, coll)
		}
	}
	if err := c.cache.Del(ctx, keys...); err != nil {
		return nil, fmt.Errorf("catalog refresh: %w", err)
	}
	c.log.Info("feed cache dropped", "remote", remote)
	return remote, nil
}
