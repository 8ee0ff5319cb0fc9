package api

import (
	"net/http"
	"time"

	"avialab/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler handles GET /healthCheck: pings the database and
// reports uptime.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		status := "ok"
		mysqlStatus := "ok"
		mysqlDetails := "MySQL connected"
		if err := db.PingContext(r.Context()); err != nil {
			status = "degraded"
			mysqlStatus = "down"
			mysqlDetails = err.Error()
		}
		services["mysql"] = entities.ServiceStatus{Status: mysqlStatus, Details: mysqlDetails}

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, entities.HealthResponse{
			Status:   status,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		})
	}
}

// HelloHandler handles GET /api/hello, the liveness probe used by the
// frontend. Plain text, not JSON.
func HelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}
}
