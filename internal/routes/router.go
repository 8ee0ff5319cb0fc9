package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"avialab/flightdeck/internal/api"
	"avialab/flightdeck/internal/common"
	"avialab/flightdeck/internal/config"
	"avialab/flightdeck/internal/db/repositories"
	"avialab/flightdeck/internal/metrics"
	"avialab/flightdeck/internal/middleware"
	"avialab/flightdeck/internal/models/dtos"
	"avialab/flightdeck/internal/seed"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	gormlib "gorm.io/gorm"
)

// RegisterRoutes wires the chi router: CORS, request IDs, metrics, the
// seed endpoint and the read-only query endpoints.
func RegisterRoutes(sqlxDB *sqlx.DB, ormDB *gormlib.DB, cfg config.Config, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	// Permissive CORS, matching the demo deployment where the frontend is
	// served from a different origin. OPTIONS preflights are answered here.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	airportRepo := repositories.NewAirportRepository(ormDB)
	flightRepo := repositories.NewFlightRepository(sqlxDB)
	orchestrator := seed.NewOrchestrator(sqlxDB, cfg, metricsReg)

	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, upSince))

	// All verbs route to the handler so non-POST requests get the JSON
	// 405 body rather than chi's plain-text default.
	r.With(middleware.RateLimitMiddleware).
		HandleFunc("/db-generate.php", api.SeedHandler(orchestrator))

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/airports", api.AirportsHandler(airportRepo, cache, metricsReg))
		apiRouter.Get("/flights", api.FlightsHandler(flightRepo))
		apiRouter.Get("/hello", api.HelloHandler())

		apiRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeNotFound(w, r)
		})
	})

	return r
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(dtos.ErrorResponse{
		Error: "The requested API endpoint does not exist.",
		Route: strings.TrimPrefix(r.URL.Path, "/api/"),
	})
}
