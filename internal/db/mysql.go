package db

import (
	"fmt"
	"time"

	"avialab/flightdeck/internal/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

var DB *sqlx.DB

// DSN builds the MySQL connection string. parseTime=true maps DATETIME
// columns to time.Time; loc=UTC keeps generated timestamps consistent.
func DSN(cfg config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// InitMySQL connects via sqlx, retrying while the database container boots.
func InitMySQL(cfg config.Config) error {
	dsn := DSN(cfg)

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("mysql", dsn)
		if err == nil {
			DB.SetMaxOpenConns(25)
			DB.SetMaxIdleConns(25)
			DB.SetConnMaxLifetime(30 * time.Minute)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
