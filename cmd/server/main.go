package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/lopes/lopes-events/backend/internal/config"
	"github.com/lopes/lopes-events/backend/internal/events"
	"github.com/lopes/lopes-events/backend/internal/store"
	"github.com/lopes/lopes-events/backend/internal/users"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// ── Store ────────────────────────────────────────────────
	// Each request acquires its own gateway and releases it when done;
	// connections are not shared or pooled across requests.
	eventsHandler := events.NewHandler(func(ctx context.Context) (events.Store, func(), error) {
		gw, err := store.Acquire(ctx, cfg.MongoURI, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return gw.Events(), func() { gw.Release(ctx) }, nil
	})
	usersHandler := users.NewHandler(func(ctx context.Context) (users.Store, func(), error) {
		gw, err := store.Acquire(ctx, cfg.MongoURI, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return gw.Users(), func() { gw.Release(ctx) }, nil
	})

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/events", eventsHandler.List)
		r.Post("/event", eventsHandler.Create)
		r.Get("/event/{id}", eventsHandler.Get)
		r.Put("/event/{id}", eventsHandler.Update)
		r.Delete("/delete/{id}", eventsHandler.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/users", usersHandler.List)
		r.Post("/user", usersHandler.Create)
		r.Get("/user/{id}", usersHandler.Get)
		r.Delete("/user/{id}", usersHandler.Delete)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
