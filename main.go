package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"suratguide/activity"
	"suratguide/admin"
	"suratguide/auth"
	"suratguide/catalog"
	"suratguide/chats"
	"suratguide/config"
	"suratguide/contact"
	"suratguide/db"
	"suratguide/feeds"
	"suratguide/home"
	"suratguide/itinerary"
	"suratguide/logger"
	"suratguide/menu"
	"suratguide/middleware"
	"suratguide/places"
	"suratguide/ratelim"
	"suratguide/rdx"
	"suratguide/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Connect(startCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		cancel()
		log.Fatal("connect mongo", "error", err)
	}

	var cache rdx.Cache
	var redisCache *rdx.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache, err = rdx.Connect(startCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, "suratguide:")
		if err != nil {
			cancel()
			log.Fatal("connect redis", "error", err)
		}
		cache = redisCache
	} else {
		log.Info("REDIS_ADDR not set; caching feeds in memory")
		cache = rdx.NewMemoryCache()
	}
	cancel()

	c := catalog.New(feeds.NewClient(cfg.Feeds.Timeout, log), cache, cfg.Redis.CacheTTL, map[catalog.Collection]string{
		catalog.Featured:     cfg.Feeds.HomeURL,
		catalog.Destinations: cfg.Feeds.DestinationsURL,
		catalog.Tours:        cfg.Feeds.ActivitiesURL,
		catalog.Planner:      cfg.Feeds.PlannerURL,
		catalog.Dishes:       cfg.Feeds.DishesURL,
		catalog.Restaurants:  cfg.Feeds.RestaurantsURL,
	}, log)

	itineraries := db.NewItineraryStore(database)
	messages := db.NewContactStore(database)
	jwt := middleware.NewJWT(cfg.Auth.JWTSecret)
	if !cfg.AdminEnabled() {
		log.Warn("admin login disabled; set JWT_SECRET and ADMIN_PASSWORD_HASH to enable it")
	}

	assistant := chats.NewAssistant(cfg.Chat.WebhookURL, cfg.Chat.Timeout, log)
	hub := chats.NewHub(assistant, log)
	go hub.Run()

	rateLimiter := ratelim.NewRateLimiter(cfg.Rate.PerMinute, cfg.Rate.Burst, log)
	stopJanitor := make(chan struct{})
	go rateLimiter.Janitor(time.Minute, stopJanitor)

	router := httprouter.New()
	routes.RoutesWrapper(router, routes.Handlers{
		Home:      home.NewHandler(c, log),
		Places:    places.NewHandler(c, log),
		Activity:  activity.NewHandler(c, log),
		Menu:      menu.NewHandler(c, log),
		Itinerary: itinerary.NewHandler(c, itineraries, cfg.PublicBaseURL, log),
		Chat:      chats.NewHandler(assistant, hub),
		Contact:   contact.NewHandler(messages, log),
		Auth:      auth.NewHandler(jwt, cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, cfg.Auth.TokenTTL, log),
		Admin:     admin.NewHandler(c, messages, itineraries, log),
		JWT:       jwt,
	}, rateLimiter)

	// CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(log)(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Info("shutting down chat hub")
		hub.Stop()
		close(stopJanitor)
	})

	go func() {
		log.Info("server listening", "addr", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen and serve", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		log.Error("disconnect mongo", "error", err)
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			log.Error("close redis", "error", err)
		}
	}

	log.Info("server stopped cleanly")
}
