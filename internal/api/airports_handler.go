package api

import (
	"net/http"
	"time"

	"avialab/flightdeck/internal/common"
	"avialab/flightdeck/internal/db/repositories"
	"avialab/flightdeck/internal/logging"
	"avialab/flightdeck/internal/metrics"
)

const airportsCacheTTL = 60 * time.Second

// AirportsHandler handles GET /api/airports. A non-empty ?search= term
// returns up to 20 ranked matches; otherwise up to 100 airports ordered
// for browsing. Responses are cached briefly, keyed by the search term.
func AirportsHandler(repo *repositories.AirportRepository, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("search")

		key := "airports:browse"
		if term != "" {
			key = "airports:search:" + term
		}

		if metricsReg != nil {
			if _, found := cache.Get(key); found {
				metricsReg.CacheHitsTotal.WithLabelValues("airports").Inc()
			} else {
				metricsReg.CacheMissesTotal.WithLabelValues("airports").Inc()
			}
		}

		results, err := cache.GetOrSet(key, airportsCacheTTL, func() (any, error) {
			if term != "" {
				return repo.Search(r.Context(), term)
			}
			return repo.Browse(r.Context())
		})
		if err != nil {
			logging.Error("Airports query failed", "search", term, "error", err.Error())
			writeError(w, http.StatusInternalServerError, "A database error occurred while processing your request.")
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}
