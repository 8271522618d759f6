package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kabarett-api/internal/config"
	"kabarett-api/internal/content"
	"kabarett-api/internal/content/content_api"
	"kabarett-api/internal/database"
	"kabarett-api/internal/logger"
	"kabarett-api/internal/metrics"
	"kabarett-api/internal/reservation"
	"kabarett-api/internal/reservation/qr"
	"kabarett-api/internal/reservation/reservation_api"
	"kabarett-api/internal/store"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Kabarett Salon API initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.Mongo.URI, log)
	if err != nil {
		log.Fatal("DATABASE", err.Error())
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error("DATABASE", fmt.Sprintf("Disconnect failed: %v", err))
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db, log); err != nil {
		log.Fatal("DATABASE", err.Error())
	}

	st := store.New(db)

	reservationService := reservation.NewService(st)
	contentService := content.NewService(st)
	qrGenerator := qr.NewGenerator(cfg.QR.Secret)

	reservationHandler := &reservation_api.Handler{
		Service: reservationService,
		QR:      qrGenerator,
		Logger:  log,
	}
	contentHandler := &content_api.Handler{
		Service: contentService,
		DB:      st,
		Logger:  log,
	}

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware(log))

	r.Get("/", contentHandler.Root)
	r.Get("/test", contentHandler.TestDatabase)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", contentHandler.ListEvents)
		r.Get("/owners", contentHandler.ListOwners)
		r.Get("/theater", contentHandler.GetTheater)
		r.Get("/video/current", contentHandler.CurrentVideo)
		r.Get("/video/{monthKey}", contentHandler.VideoByMonth)

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window))

			r.Route("/reservations", func(r chi.Router) {
				r.Post("/", reservationHandler.CreateReservation)
				r.Get("/{reservationId}", reservationHandler.GetReservation)
				r.Get("/{reservationId}/qr", reservationHandler.GetReservationQR)
			})

			r.Post("/contact", contentHandler.SubmitContact)
			r.Post("/seed", contentHandler.Seed)
		})
	})
	log.Info("ROUTER", "Routes registered under /api")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Kabarett Salon API running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		log.Info("HTTP", "✅ Kabarett Salon API shutdown complete")
	}
}
