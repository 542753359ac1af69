package activity

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

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
	return &Handler{catalog: c, log: log.With("handler", "activity")}
}

// GET /api/activities?category=
func (h *Handler) GetTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	tours, err := h.catalog.Tours(ctx)
	if err != nil {
		h.log.Error("load tours", "error", err)
		utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
		return
	}

	opts := utils.ParseQueryOptions(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"activities": FilterTours(tours, opts.Category),
		"categories": models.Categories,
	})
}

// FilterTours keeps the tours of one category. An empty category keeps all.
func FilterTours(tours []models.Tour, category string) []models.Tour {
	out := make([]models.Tour, 0, len(tours))
	for _, t := range tours {
		if category == "" || strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}
