package config

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_PORT", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_USER",
		"DB_PASSWORD", "CACHE_BACKEND", "SEED_FLIGHTS", "SEED_USERS",
		"SEED_PASSENGERS", "SEED_BOOKINGS", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.DBHost != "db" || cfg.DBPort != "3306" || cfg.DBName != "flight_db" {
		t.Errorf("unexpected DB defaults: %+v", cfg)
	}
	if cfg.CacheBackend != "memory" {
		t.Errorf("CacheBackend = %q, want memory", cfg.CacheBackend)
	}
	if cfg.SeedFlights != 150 || cfg.SeedUsers != 20 || cfg.SeedPassengers != 50 || cfg.SeedBookings != 80 {
		t.Errorf("unexpected seed count defaults: %+v", cfg)
	}
	if cfg.BcryptCost != bcrypt.DefaultCost {
		t.Errorf("BcryptCost = %d, want %d", cfg.BcryptCost, bcrypt.DefaultCost)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "mysql.internal")
	t.Setenv("SEED_FLIGHTS", "10")
	t.Setenv("SEED_USERS", "not-a-number")

	cfg := Load()

	if cfg.DBHost != "mysql.internal" {
		t.Errorf("DBHost = %q", cfg.DBHost)
	}
	if cfg.SeedFlights != 10 {
		t.Errorf("SeedFlights = %d, want 10", cfg.SeedFlights)
	}
	// Unparseable integers fall back to the default.
	if cfg.SeedUsers != 20 {
		t.Errorf("SeedUsers = %d, want the default 20", cfg.SeedUsers)
	}
}
