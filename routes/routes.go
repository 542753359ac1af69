package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"suratguide/activity"
	"suratguide/admin"
	"suratguide/auth"
	"suratguide/chats"
	"suratguide/contact"
	"suratguide/globals"
	"suratguide/home"
	"suratguide/itinerary"
	"suratguide/media"
	"suratguide/menu"
	"suratguide/middleware"
	"suratguide/places"
	"suratguide/ratelim"
	"suratguide/utils"
)

// Handlers bundles every handler the router serves.
type Handlers struct {
	Home      *home.Handler
	Places    *places.Handler
	Activity  *activity.Handler
	Menu      *menu.Handler
	Itinerary *itinerary.Handler
	Chat      *chats.Handler
	Contact   *contact.Handler
	Auth      *auth.Handler
	Admin     *admin.Handler
	JWT       *middleware.JWT
}

func Index(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ok"})
}

func AddHomeRoutes(router *httprouter.Router, h *home.Handler) {
	router.GET("/health", Index)
	router.GET("/api/home", h.GetHome)
}

func AddPlaceRoutes(router *httprouter.Router, p *places.Handler, a *activity.Handler) {
	router.GET("/api/destinations", p.GetDestinations)
	router.GET("/api/activities", a.GetTours)
}

func AddFoodRoutes(router *httprouter.Router, h *menu.Handler) {
	router.GET("/api/food/dishes", h.GetDishes)
	router.GET("/api/food/restaurants", h.GetRestaurants)
	router.GET("/api/food/tips", h.GetFoodTips)
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler) {
	router.GET("/api/planner/activities", h.GetPlannerActivities)
	router.POST("/api/planner/recommendations", h.Recommend)
	router.POST("/api/planner/selection/toggle", h.ToggleSelection)
	router.POST("/api/planner/summary", h.Summary)

	router.POST("/api/itineraries", h.SaveItinerary)
	router.GET("/api/itineraries/:id", h.GetItinerary)
	router.GET("/api/itineraries/:id/pdf", h.ExportPDF)
}

func AddChatRoutes(router *httprouter.Router, h *chats.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/chat", rl.Limit(h.Ask))
	router.GET("/ws/chat", rl.Limit(h.ServeWS))
}

func AddContactRoutes(router *httprouter.Router, h *contact.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(h.Submit))
}

func AddMediaRoutes(router *httprouter.Router) {
	router.GET("/placeholder.png", media.ServePlaceholder)
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(h.Login))
}

func AddAdminRoutes(router *httprouter.Router, h *admin.Handler, jwt *middleware.JWT) {
	router.POST("/api/admin/feeds/refresh", jwt.Authenticate(globals.AdminRole, h.RefreshFeeds))
	router.POST("/api/admin/feeds/warm", jwt.Authenticate(globals.AdminRole, h.WarmFeeds))
	router.GET("/api/admin/contact", jwt.Authenticate(globals.AdminRole, h.ListContact))
	router.GET("/api/admin/itineraries", jwt.Authenticate(globals.AdminRole, h.ListItineraries))
}

// RoutesWrapper registers every route group.
func RoutesWrapper(router *httprouter.Router, h Handlers, rl *ratelim.RateLimiter) {
	AddHomeRoutes(router, h.Home)
	AddPlaceRoutes(router, h.Places, h.Activity)
	AddFoodRoutes(router, h.Menu)
	AddItineraryRoutes(router, h.Itinerary)
	AddChatRoutes(router, h.Chat, rl)
	AddContactRoutes(router, h.Contact, rl)
	AddMediaRoutes(router)
	AddAuthRoutes(router, h.Auth, rl)
	AddAdminRoutes(router, h.Admin, h.JWT)
}
