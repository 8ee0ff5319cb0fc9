package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avialab/flightdeck/internal/common"
	"avialab/flightdeck/internal/db/repositories"
	"avialab/flightdeck/internal/metrics"
	"avialab/flightdeck/internal/models/dtos"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mysqldriver "gorm.io/driver/mysql"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAirportRepo(t *testing.T) (*repositories.AirportRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gormlib.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gormlib.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return repositories.NewAirportRepository(gormDB), mock
}

func airportColumns() []string {
	return []string{"id", "iata_code", "name", "city", "country", "latitude", "longitude"}
}

func TestAirportsHandler_Search(t *testing.T) {
	repo, mock := newAirportRepo(t)
	cache := common.NewCacheService(time.Minute, time.Minute)
	reg := metrics.NewMetricsRegistryWith(prometheus.NewRegistry())

	mock.ExpectQuery("SELECT").
		WithArgs("SVO%", "%SVO%", "%SVO%", "SVO%", "%SVO%").
		WillReturnRows(sqlmock.NewRows(airportColumns()).
			AddRow(1, "SVO", "Шереметьево", "Москва", "Россия", 55.972778, 37.414722))

	req := httptest.NewRequest(http.MethodGet, "/api/airports?search=SVO", nil)
	rec := httptest.NewRecorder()

	AirportsHandler(repo, cache, reg)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var results []dtos.AirportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "SVO", results[0].IATACode)
	assert.Equal(t, "Москва", results[0].City)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAirportsHandler_BrowseWithoutSearchTerm(t *testing.T) {
	repo, mock := newAirportRepo(t)
	cache := common.NewCacheService(time.Minute, time.Minute)

	mock.ExpectQuery("SELECT airport_id AS id").
		WillReturnRows(sqlmock.NewRows(airportColumns()).
			AddRow(2, "DME", "Домодедово", "Москва", "Россия", 55.408889, 37.906111).
			AddRow(1, "SVO", "Шереметьево", "Москва", "Россия", 55.972778, 37.414722))

	req := httptest.NewRequest(http.MethodGet, "/api/airports", nil)
	rec := httptest.NewRecorder()

	AirportsHandler(repo, cache, nil)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var results []dtos.AirportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAirportsHandler_SecondRequestServedFromCache(t *testing.T) {
	repo, mock := newAirportRepo(t)
	cache := common.NewCacheService(time.Minute, time.Minute)
	reg := metrics.NewMetricsRegistryWith(prometheus.NewRegistry())

	// A single query expectation covers both requests: a second database
	// round trip would fail the mock.
	mock.ExpectQuery("SELECT").
		WithArgs("LED%", "%LED%", "%LED%", "LED%", "%LED%").
		WillReturnRows(sqlmock.NewRows(airportColumns()).
			AddRow(4, "LED", "Пулково", "Санкт-Петербург", "Россия", 59.800278, 30.2625))

	handler := AirportsHandler(repo, cache, reg)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/airports?search=LED", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAirportsHandler_DatabaseError(t *testing.T) {
	repo, mock := newAirportRepo(t)
	cache := common.NewCacheService(time.Minute, time.Minute)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/airports?search=ZZZ", nil)
	rec := httptest.NewRecorder()

	AirportsHandler(repo, cache, nil)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body dtos.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A database error occurred while processing your request.", body.Error)
}
