package menu

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
	return &Handler{catalog: c, log: log.With("handler", "food")}
}

// GET /api/food/dishes?category=
func (h *Handler) GetDishes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	dishes, err := h.catalog.Dishes(ctx)
	if err != nil {
		h.log.Error("load dishes", "error", err)
		utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
		return
	}

	category := utils.ParseQueryOptions(r).Category
	filtered := make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if category == "" || strings.EqualFold(d.Category, category) {
			filtered = append(filtered, d)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"dishes":     filtered,
		"categories": DishCategories(dishes),
	})
}

// DishCategories is "All" followed by each dish category in first-seen order.
func DishCategories(dishes []models.Dish) []string {
	out := []string{utils.AllCategories}
	for _, d := range dishes {
		if d.Category == "" {
			continue
		}
		seen := false
		for _, c := range out {
			if strings.EqualFold(c, d.Category) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, d.Category)
		}
	}
	return out
}

// GET /api/food/restaurants
func (h *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	rests, err := h.catalog.Restaurants(ctx)
	if err != nil {
		h.log.Error("load restaurants", "error", err)
		utils.RespondWithError(w, http.StatusBadGateway, feeds.UserMessage(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"restaurants": rests})
}

// GET /api/food/tips
func (h *Handler) GetFoodTips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tips, err := h.catalog.FoodTips()
	if err != nil {
		h.log.Error("load food tips", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load food tips")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"tips": tips})
}
