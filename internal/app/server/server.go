// Package server assembles the application: configuration, the in-memory
// registry, fixture seeding and the HTTP router.
package server

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/auth"
	"railops/internal/domain/registry"
	"railops/internal/platform/config"
	"railops/internal/platform/metrics"
	authhandler "railops/internal/transport/http/handlers/auth"
	dashboardhandler "railops/internal/transport/http/handlers/dashboard"
	registryhandler "railops/internal/transport/http/handlers/registry"
	reportshandler "railops/internal/transport/http/handlers/reports"
	"railops/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Store  *registry.Store
	Router http.Handler
}

// New builds a fully wired application. The store starts empty unless
// seeding is enabled, in which case it is populated from generated
// fixtures plus the bootstrap admin user.
func New(cfg config.Config) (*App, error) {
	store := registry.NewStore()

	if cfg.RunSeed {
		seed := cfg.FixtureSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		store.Seed(registry.GenerateFixtures(rand.New(rand.NewSource(seed)), time.Now()))

		password := cfg.SeedAdminPassword
		if password == "" {
			password = "admin"
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		store.CreateUser(cfg.SeedAdminUsername, hash)
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(store, cfg.JWTSecret).RegisterRoutes(r)
		registryhandler.NewHandler(store).RegisterRoutes(r)
		dashboardhandler.NewHandler(store).RegisterRoutes(r)
		reportshandler.NewHandler(store).RegisterRoutes(r)
	})

	return &App{Config: cfg, Store: store, Router: router}, nil
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	log.Printf("railops server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
