package api

import (
	"net/http"

	"avialab/flightdeck/internal/logging"
	"avialab/flightdeck/internal/models/dtos"
	"avialab/flightdeck/internal/seed"
)

// SeedHandler handles /db-generate.php: ensures the schema, truncates all
// tables and reseeds them. POST only; OPTIONS preflights are answered by
// the CORS middleware before reaching this handler.
//
// The 500 body deliberately echoes the underlying error in `details` —
// this is an operator endpoint and the message aids diagnosis.
func SeedHandler(orchestrator *seed.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST method required.")
			return
		}

		result, err := orchestrator.Run(r.Context())
		if err != nil {
			logging.Error("Seeding run failed", "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, dtos.ErrorResponse{
				Error:   "Database seeding failed. Check server logs for details.",
				Details: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, dtos.SeedResponse{
			Message: "Database tables ensured/created, cleared and seeded successfully.",
			Log:     result.Log,
		})
	}
}
