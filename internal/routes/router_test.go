package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avialab/flightdeck/internal/common"
	"avialab/flightdeck/internal/config"
	"avialab/flightdeck/internal/metrics"
	"avialab/flightdeck/internal/models/dtos"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mysqldriver "gorm.io/driver/mysql"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gormlib.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gormlib.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return RegisterRoutes(
		sqlx.NewDb(db, "sqlmock"),
		gormDB,
		config.Config{},
		common.NewCacheService(time.Minute, time.Minute),
		metrics.NewMetricsRegistryWith(prometheus.NewRegistry()),
		time.Now(),
	)
}

func TestRouter_Hello(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthCheck", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_UnknownAPIRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body dtos.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The requested API endpoint does not exist.", body.Error)
	assert.Equal(t, "bookings", body.Route)
}

func TestRouter_SeedEndpointRejectsGET(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/db-generate.php", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body dtos.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "POST method required.", body.Error)
}

func TestRouter_AttachesRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// A caller-supplied ID is echoed, not replaced.
	req = httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "test-id-123", rec.Header().Get("X-Request-ID"))
}
