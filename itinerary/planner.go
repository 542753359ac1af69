// Package itinerary serves the trip planner: recommendations, the selection sidebar
// and saved itineraries.
package itinerary

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"suratguide/catalog"
	"suratguide/feeds"
	"suratguide/logger"
	"suratguide/models"
	"suratguide/planner"
	"suratguide/utils"
)

// Store persists saved itineraries.
type Store interface {
	Save(ctx context.Context, it models.SavedItinerary) error
	Get(ctx context.Context, id string) (models.SavedItinerary, error)
}

type Handler struct {
	catalog *catalog.Catalog
	store   Store
	baseURL string
	log     *logger.Logger
	now     func() time.Time
}

// NewHandler wires the planner. baseURL is the public site address used in exported
// itineraries.
func NewHandler(c *catalog.Catalog, store Store, baseURL string, log *logger.Logger) *Handler {
	return &Handler{
		catalog: c,
		store:   store,
		baseURL: baseURL,
		log:     log.With("handler", "itinerary"),
		now:     time.Now,
	}
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) ([]models.ActivityRecord, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	recs, err := h.catalog.PlannerActivities(ctx)
	if err != nil {
		h.log.Error("load planner activities", "error", err)
		utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
		return nil, false
	}
	return recs, true
}

// GET /api/planner/activities
func (h *Handler) GetPlannerActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	recs, ok := h.activities(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"activities": recs,
		"interests":  models.InterestOptions,
	})
}

// POST /api/planner/recommendations
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var prefs models.Preferences
	if err := utils.DecodeJSON(w, r, &prefs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.Validate.Struct(prefs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	recs, ok := h.activities(w, r)
	if !ok {
		return
	}

	matches := planner.Filter(recs, prefs)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"activities": matches,
		"count":      len(matches),
	})
}

type toggleRequest struct {
	Selection  planner.Selection `json:"selection"`
	ActivityID string            `json:"activity_id" validate:"required"`
	Group      models.GroupType  `json:"group_type,omitempty" validate:"omitempty,oneof=solo couple family friends"`
}

type selectionResponse struct {
	Selection  planner.Selection       `json:"selection"`
	Activities []models.ActivityRecord `json:"activities"`
	Summary    models.TripSummary      `json:"summary"`
}

func newSelectionResponse(sel planner.Selection, recs []models.ActivityRecord, group models.GroupType) selectionResponse {
	return selectionResponse{
		Selection:  sel,
		Activities: planner.Resolve(sel, recs),
		Summary:    planner.Summarize(sel, recs, group),
	}
}

// POST /api/planner/selection/toggle
func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req toggleRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	recs, ok := h.activities(w, r)
	if !ok {
		return
	}

	if len(planner.Resolve(planner.Selection{req.ActivityID}, recs)) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown activity: "+req.ActivityID)
		return
	}

	sel := planner.Toggle(planner.Prune(req.Selection, recs), req.ActivityID)
	utils.RespondWithJSON(w, http.StatusOK, newSelectionResponse(sel, recs, req.Group))
}

type summaryRequest struct {
	Selection planner.Selection `json:"selection"`
	Group     models.GroupType  `json:"group_type,omitempty" validate:"omitempty,oneof=solo couple family friends"`
}

// POST /api/planner/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req summaryRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	recs, ok := h.activities(w, r)
	if !ok {
		return
	}

	sel := planner.Prune(req.Selection, recs)
	utils.RespondWithJSON(w, http.StatusOK, newSelectionResponse(sel, recs, req.Group))
}
