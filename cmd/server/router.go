package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lumina-reserve/backend/internal/auth"
	"github.com/lumina-reserve/backend/internal/handlers"
	"github.com/lumina-reserve/backend/internal/metrics"
	"github.com/lumina-reserve/backend/internal/middleware"
	"github.com/lumina-reserve/backend/internal/service"
)

type routerDeps struct {
	appName        string
	allowedOrigins []string
	data           *service.DataService
	stats          *service.StatsService
	sessions       *auth.Sessions
	ids            *service.EventIDs
	metrics        *metrics.Metrics
	log            *slog.Logger
}

func newRouter(deps routerDeps) http.Handler {
	healthHandler := handlers.NewHealthHandler(deps.appName, deps.data.Mode(), deps.log)
	catalogHandler := handlers.NewCatalogHandler(deps.data, deps.log)
	bookingHandler := handlers.NewBookingHandler(deps.data, deps.log)
	adminHandler := handlers.NewAdminHandler(deps.data, deps.stats, deps.sessions, deps.ids, deps.log)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(deps.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// The static site is served from another origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.AdminTokenHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", deps.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", catalogHandler.ListMenu)
		r.Get("/reviews", catalogHandler.ListReviews)
		r.Get("/events", catalogHandler.ListEvents)

		r.Post("/reservations", bookingHandler.CreateReservation)
		r.Post("/subscribers", bookingHandler.Subscribe)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", adminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(deps.sessions))

				r.Post("/logout", adminHandler.Logout)
				r.Get("/reservations", adminHandler.ListReservations)
				r.Get("/events", adminHandler.ListEvents)
				r.Post("/events", adminHandler.CreateEvent)
				r.Delete("/events/{eventId}", adminHandler.DeleteEvent)
				r.Get("/stats", adminHandler.Stats)
			})
		})
	})

	return r
}
