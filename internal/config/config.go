package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime configuration. Every value has a default so the
// service can come up inside docker-compose with nothing but DB_PASSWORD set.
type Config struct {
	AppEnv string
	Port   string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	CacheBackend  string // "memory" or "redis"
	RedisHost     string
	RedisPort     string
	RedisPassword string

	SeedFlights    int
	SeedUsers      int
	SeedPassengers int
	SeedBookings   int
	BcryptCost     int
}

// Load reads configuration from the environment, applying defaults that
// match the docker-compose service names.
func Load() Config {
	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("APP_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "db"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_DATABASE", "flight_db"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),

		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SeedFlights:    getEnvInt("SEED_FLIGHTS", 150),
		SeedUsers:      getEnvInt("SEED_USERS", 20),
		SeedPassengers: getEnvInt("SEED_PASSENGERS", 50),
		SeedBookings:   getEnvInt("SEED_BOOKINGS", 80),
		BcryptCost:     getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
