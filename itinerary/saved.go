package itinerary

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"suratguide/db"
	"suratguide/models"
	"suratguide/planner"
	"suratguide/utils"
)

type saveRequest struct {
	Name        string             `json:"name" validate:"required,max=120"`
	Preferences models.Preferences `json:"preferences"`
	Selection   planner.Selection  `json:"selection" validate:"required,min=1"`
}

// POST /api/itineraries
func (h *Handler) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req saveRequest
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
	if len(sel) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Selection has no known activities")
		return
	}
	agg := planner.Aggregate(sel, recs)

	it := models.SavedItinerary{
		ItineraryID:   utils.GetUUID(),
		Name:          req.Name,
		Preferences:   req.Preferences,
		Selection:     sel,
		TotalHours:    agg.TotalHours,
		EstimatedDays: agg.EstimatedDays,
		CreatedAt:     h.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Save(ctx, it); err != nil {
		h.log.Error("save itinerary", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}

	h.log.Info("itinerary saved", "id", it.ItineraryID, "activities", len(sel))
	utils.RespondWithJSON(w, http.StatusCreated, models.ItineraryView{
		SavedItinerary: it,
		Activities:     planner.Resolve(sel, recs),
	})
}

// load fetches a saved itinerary and resolves it against the current collection.
// It writes the error response itself when it returns false.
func (h *Handler) load(w http.ResponseWriter, r *http.Request, id string) (models.ItineraryView, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := h.store.Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return models.ItineraryView{}, false
	}
	if err != nil {
		h.log.Error("get itinerary", "id", id, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load itinerary")
		return models.ItineraryView{}, false
	}

	recs, ok := h.activities(w, r)
	if !ok {
		return models.ItineraryView{}, false
	}

	// Activities removed from the feed since saving drop out of the view.
	sel := planner.Prune(it.Selection, recs)
	agg := planner.Aggregate(sel, recs)
	it.Selection = sel
	it.TotalHours = agg.TotalHours
	it.EstimatedDays = agg.EstimatedDays

	return models.ItineraryView{SavedItinerary: it, Activities: planner.Resolve(sel, recs)}, true
}

// GET /api/itineraries/:id
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, ok := h.load(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}
