package db

import (
	"database/sql"
	"fmt"

	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ORM *gorm.DB

// InitMySQLORM opens a gorm session for the read repositories. It reuses
// an existing *sql.DB when given one (the sqlx pool, or sqlmock in tests).
func InitMySQLORM(conn *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql via gorm: %w", err)
	}

	ORM = db
	return db, nil
}
