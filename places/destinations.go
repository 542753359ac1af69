package places

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
	return &Handler{catalog: c, log: log.With("handler", "places")}
}

// GET /api/destinations?category=&search=
func (h *Handler) GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	dests, err := h.catalog.Destinations(ctx)
	if err != nil {
		h.log.Error("load destinations", "error", err)
		utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
		return
	}

	result := FilterDestinations(dests, utils.ParseQueryOptions(r))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"destinations": result,
		"categories":   models.Categories,
	})
}

// FilterDestinations keeps destinations in the requested category whose name or
// description contains the search text. Both checks ignore case.
func FilterDestinations(dests []models.Destination, opts utils.QueryOptions) []models.Destination {
	out := make([]models.Destination, 0, len(dests))
	for _, d := range dests {
		if opts.Category != "" && !strings.EqualFold(d.Category, opts.Category) {
			continue
		}
		if opts.Search != "" &&
			!utils.ContainsIgnoreCase(d.Name, opts.Search) &&
			!utils.ContainsIgnoreCase(d.Description, opts.Search) {
			continue
		}
		out = append(out, d)
	}
	return out
}
