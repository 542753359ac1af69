package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"suratguide/catalog"
	"suratguide/feeds"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/utils"
)

type ContactLister interface {
	List(ctx context.Context, limit int64) ([]models.ContactMessage, error)
}

type ItineraryLister interface {
	List(ctx context.Context, limit int64) ([]models.SavedItinerary, error)
}

// Handler serves the admin-only endpoints. Routes are wrapped with
// middleware.Authenticate(globals.AdminRole, ...).
type Handler struct {
	catalog     *catalog.Catalog
	contacts    ContactLister
	itineraries ItineraryLister
	log         *logger.Logger
}

func NewHandler(c *catalog.Catalog, contacts ContactLister, itineraries ItineraryLister, log *logger.Logger) *Handler {
	return &Handler{catalog: c, contacts: contacts, itineraries: itineraries, log: log.With("handler", "admin")}
}

// POST /api/admin/feeds/refresh
func (h *Handler) RefreshFeeds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	refreshed, err := h.catalog.Refresh(ctx)
	if err != nil {
		h.log.Error("refresh feeds", "error", err, "by", utils.UsernameFromContext(r.Context()))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to refresh feeds")
		return
	}

	h.log.Debug("feeds refreshed", "by", utils.UsernameFromContext(r.Context()))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"refreshed": refreshed})
}

// POST /api/admin/feeds/warm
// Loads every remote collection so the next visitor hits a warm cache.
func (h *Handler) WarmFeeds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	loaders := map[catalog.Collection]func(context.Context) (int, error){
		catalog.Planner:      count(h.catalog.PlannerActivities),
		catalog.Destinations: count(h.catalog.Destinations),
		catalog.Tours:        count(h.catalog.Tours),
		catalog.Dishes:       count(h.catalog.Dishes),
		catalog.Restaurants:  count(h.catalog.Restaurants),
		catalog.Featured:     count(h.catalog.Featured),
	}

	counts := make(map[catalog.Collection]int, len(loaders))
	for _, coll := range catalog.Feeds {
		n, err := loaders[coll](ctx)
		if err != nil {
			h.log.Warn("warm feed", "collection", coll, "error", err)
			utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
			return
		}
		counts[coll] = n
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"counts": counts})
}

func count[T any](load func(context.Context) ([]T, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := load(ctx)
		return len(items), err
	}
}

// GET /api/admin/contact?limit=
func (h *Handler) ListContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := utils.IntParam(r, "limit", 50, 1, 500)

	msgs, err := h.contacts.List(r.Context(), int64(limit))
	if err != nil {
		h.log.Error("list contact messages", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"messages": msgs, "count": len(msgs)})
}

// GET /api/admin/itineraries?limit=
func (h *Handler) ListItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := utils.IntParam(r, "limit", 50, 1, 500)

	its, err := h.itineraries.List(r.Context(), int64(limit))
	if err != nil {
		h.log.Error("list itineraries", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}
	if its == nil {
		its = []models.SavedItinerary{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"itineraries": its, "count": len(its)})
}
