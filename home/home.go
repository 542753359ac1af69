package home

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"suratguide/catalog"
	"suratguide/feeds"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/utils"
)

type Handler struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

func NewHandler(c *catalog.Catalog, log *logger.Logger) *Handler {
	return &Handler{catalog: c, log: log.With("handler", "home")}
}

type Page struct {
	Featured  []models.FeaturedPlace `json:"featured"`
	Stats     models.HomeStats       `json:"stats"`
	TripTypes []models.TripType      `json:"trip_types"`
}

// Load reads every collection the home page needs concurrently.
func (h *Handler) Load(ctx context.Context) (Page, error) {
	var (
		page        Page
		dests       []models.Destination
		tours       []models.Tour
		dishes      []models.Dish
		restaurants []models.Restaurant
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Featured, err = h.catalog.Featured(ctx)
		return err
	})
	g.Go(func() (err error) {
		dests, err = h.catalog.Destinations(ctx)
		return err
	})
	g.Go(func() (err error) {
		tours, err = h.catalog.Tours(ctx)
		return err
	})
	g.Go(func() (err error) {
		dishes, err = h.catalog.Dishes(ctx)
		return err
	})
	g.Go(func() (err error) {
		restaurants, err = h.catalog.Restaurants(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.TripTypes, err = h.catalog.TripTypes()
		return err
	})
	if err := g.Wait(); err != nil {
		return Page{}, err
	}

	page.Stats = Stats(dests, tours, dishes, restaurants)
	return page, nil
}

// Stats counts the numbers shown in the home page stats section.
func Stats(dests []models.Destination, tours []models.Tour, dishes []models.Dish, restaurants []models.Restaurant) models.HomeStats {
	cultural := 0
	for _, d := range dests {
		if strings.EqualFold(d.Category, "Culture") {
			cultural++
		}
	}
	return models.HomeStats{
		Destinations:    len(dests),
		Activities:      len(tours),
		CulturalPlaces:  cultural,
		FoodExperiences: len(dishes) + len(restaurants),
	}
}

// GET /api/home
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	page, err := h.Load(ctx)
	if err != nil {
		h.log.Error("load home page", "error", err)
		utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	utils.RespondWithJSON(w, http.StatusOK, page)
}
