package main

import (
	"log"
	"net/http"
	"time"

	"avialab/flightdeck/internal/common"
	"avialab/flightdeck/internal/config"
	"avialab/flightdeck/internal/db"
	"avialab/flightdeck/internal/logging"
	"avialab/flightdeck/internal/metrics"
	"avialab/flightdeck/internal/routes"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Flightdeck starting up", "environment", cfg.AppEnv)

	if err := db.InitMySQL(cfg); err != nil {
		logging.Error("Failed to connect to MySQL (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to MySQL: %v", err)
	}
	logging.Info("Connected to MySQL (sqlx)")

	// The gorm session reuses the sqlx pool.
	orm, err := db.InitMySQLORM(db.DB.DB)
	if err != nil {
		logging.Error("Failed to open gorm session", "error", err.Error())
		log.Fatalf("failed to open gorm session: %v", err)
	}
	logging.Info("Connected to MySQL (gorm)")

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg)
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cache = common.NewCacheService(5*time.Minute, 10*time.Minute)
		} else {
			logging.Info("Using Redis cache", "host", cfg.RedisHost)
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(5*time.Minute, 10*time.Minute)
	}
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry()
	upSince := time.Now()

	router := routes.RegisterRoutes(db.DB, orm, cfg, cache, metricsReg, upSince)

	// Metrics endpoint mounted beside the chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	addr := ":" + cfg.Port
	logging.Info("Server starting", "addr", addr, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
