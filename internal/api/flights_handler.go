package api

import (
	"net/http"
	"time"

	"avialab/flightdeck/internal/db/repositories"
	"avialab/flightdeck/internal/logging"
)

// FlightsHandler handles GET /api/flights?origin=&destination=&date=.
// All three parameters are required: origin and destination are 3-letter
// IATA codes and must differ, date is a strict YYYY-MM-DD calendar date.
func FlightsHandler(repo *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		origin := q.Get("origin")
		destination := q.Get("destination")
		date := q.Get("date")

		if origin == "" || destination == "" || date == "" {
			writeError(w, http.StatusBadRequest,
				"Missing required parameters: origin (IATA), destination (IATA), date (YYYY-MM-DD)")
			return
		}
		if len(origin) != 3 || len(destination) != 3 {
			writeError(w, http.StatusBadRequest, "Invalid IATA code format (must be 3 letters).")
			return
		}
		if origin == destination {
			// No flight departs and arrives at the same airport.
			writeError(w, http.StatusBadRequest, "Origin and destination must differ.")
			return
		}

		// time.Parse rejects out-of-range dates like 2024-02-31; the
		// round-trip check additionally rejects formats it would accept
		// loosely (missing zero padding).
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil || parsed.Format("2006-01-02") != date {
			writeError(w, http.StatusBadRequest, "Invalid date format or value. Use YYYY-MM-DD.")
			return
		}

		flights, err := repo.Search(r.Context(), origin, destination, date)
		if err != nil {
			logging.Error("Flights query failed",
				"origin", origin, "destination", destination, "date", date, "error", err.Error())
			writeError(w, http.StatusInternalServerError, "A database error occurred while processing your request.")
			return
		}

		writeJSON(w, http.StatusOK, flights)
	}
}
