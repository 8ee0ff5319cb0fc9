package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaDDL creates the eight tables in foreign-key dependency order:
// Airlines/Airports/Aircraft before Flights, Users before Bookings before
// Tickets, Passengers before Tickets. Every statement is IF NOT EXISTS so
// repeated runs are side-effect free.
var schemaDDL = []string{
	"CREATE TABLE IF NOT EXISTS `Airlines` (" +
		"`airline_id` int NOT NULL AUTO_INCREMENT," +
		"`name` varchar(255) NOT NULL," +
		"`iata_code` varchar(3) NOT NULL," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`airline_id`)," +
		"UNIQUE KEY `airline_iata_code_unique` (`iata_code`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Airports` (" +
		"`airport_id` int NOT NULL AUTO_INCREMENT," +
		"`iata_code` varchar(3) NOT NULL," +
		"`name` varchar(255) NOT NULL," +
		"`city` varchar(100) NOT NULL," +
		"`country` varchar(100) NOT NULL," +
		"`latitude` decimal(10,7) NOT NULL," +
		"`longitude` decimal(10,7) NOT NULL," +
		"`timezone` varchar(50) DEFAULT NULL," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`airport_id`)," +
		"UNIQUE KEY `airport_iata_code_unique` (`iata_code`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Aircraft` (" +
		"`aircraft_id` int NOT NULL AUTO_INCREMENT," +
		"`model` varchar(100) NOT NULL," +
		"`capacity` int DEFAULT NULL," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`aircraft_id`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Flights` (" +
		"`flight_id` int NOT NULL AUTO_INCREMENT," +
		"`flight_number` varchar(10) NOT NULL," +
		"`departure_airport_id` int NOT NULL," +
		"`arrival_airport_id` int NOT NULL," +
		"`departure_time` datetime NOT NULL," +
		"`arrival_time` datetime NOT NULL," +
		"`airline_id` int NOT NULL," +
		"`aircraft_id` int NOT NULL," +
		"`status` enum('Scheduled','OnTime','Delayed','Departed','Arrived','Cancelled') DEFAULT 'Scheduled'," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`flight_id`)," +
		"INDEX `idx_flight_departure_time` (`departure_time`)," +
		"CONSTRAINT `fk_flight_dep_airport` FOREIGN KEY (`departure_airport_id`) REFERENCES `Airports` (`airport_id`) ON DELETE CASCADE," +
		"CONSTRAINT `fk_flight_arr_airport` FOREIGN KEY (`arrival_airport_id`) REFERENCES `Airports` (`airport_id`) ON DELETE CASCADE," +
		"CONSTRAINT `fk_flight_airline` FOREIGN KEY (`airline_id`) REFERENCES `Airlines` (`airline_id`) ON DELETE CASCADE," +
		"CONSTRAINT `fk_flight_aircraft` FOREIGN KEY (`aircraft_id`) REFERENCES `Aircraft` (`aircraft_id`) ON DELETE CASCADE" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Users` (" +
		"`user_id` int NOT NULL AUTO_INCREMENT," +
		"`first_name` varchar(50) NOT NULL," +
		"`last_name` varchar(50) NOT NULL," +
		"`email` varchar(100) NOT NULL," +
		"`password_hash` varchar(255) NOT NULL," +
		"`phone_number` varchar(20) DEFAULT NULL," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`user_id`)," +
		"UNIQUE KEY `user_email_unique` (`email`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Passengers` (" +
		"`passenger_id` int NOT NULL AUTO_INCREMENT," +
		"`first_name` varchar(50) NOT NULL," +
		"`last_name` varchar(50) NOT NULL," +
		"`date_of_birth` date DEFAULT NULL," +
		"`passport_number` varchar(50) DEFAULT NULL," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`passenger_id`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Bookings` (" +
		"`booking_id` int NOT NULL AUTO_INCREMENT," +
		"`user_id` int NOT NULL," +
		"`booking_reference` varchar(10) NOT NULL," +
		"`total_amount` decimal(10,2) NOT NULL DEFAULT '0.00'," +
		"`status` enum('PendingPayment','Confirmed','Cancelled') DEFAULT 'PendingPayment'," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`booking_id`)," +
		"UNIQUE KEY `booking_reference_unique` (`booking_reference`)," +
		"CONSTRAINT `fk_booking_user` FOREIGN KEY (`user_id`) REFERENCES `Users` (`user_id`) ON DELETE CASCADE" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",

	"CREATE TABLE IF NOT EXISTS `Tickets` (" +
		"`ticket_id` int NOT NULL AUTO_INCREMENT," +
		"`booking_id` int NOT NULL," +
		"`passenger_id` int NOT NULL," +
		"`flight_id` int NOT NULL," +
		"`seat_number` varchar(5) DEFAULT NULL," +
		"`class` enum('Economy','PremiumEconomy','Business','First') DEFAULT 'Economy'," +
		"`price` decimal(10,2) NOT NULL," +
		"`ticket_number` varchar(20) NOT NULL," +
		"`status` enum('Issued','Cancelled','CheckedIn','Boarded') DEFAULT 'Issued'," +
		"`created_at` timestamp NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`ticket_id`)," +
		"UNIQUE KEY `ticket_number_unique` (`ticket_number`)," +
		"CONSTRAINT `fk_ticket_booking` FOREIGN KEY (`booking_id`) REFERENCES `Bookings` (`booking_id`) ON DELETE CASCADE," +
		"CONSTRAINT `fk_ticket_passenger` FOREIGN KEY (`passenger_id`) REFERENCES `Passengers` (`passenger_id`) ON DELETE CASCADE," +
		"CONSTRAINT `fk_ticket_flight` FOREIGN KEY (`flight_id`) REFERENCES `Flights` (`flight_id`) ON DELETE CASCADE" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci",
}

// truncateOrder lists children before parents. With FOREIGN_KEY_CHECKS off
// the order is not load-bearing, but keeping it explicit documents the
// dependency chain.
var truncateOrder = []string{
	"Tickets", "Bookings", "Passengers", "Users",
	"Flights", "Aircraft", "Airports", "Airlines",
}

// EnsureSchema creates any missing tables. DDL is autonomous in MySQL, so
// this runs outside the seeding transaction.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// ClearTables truncates all eight tables with foreign-key enforcement
// suspended, restoring it afterwards even when a truncation fails.
func ClearTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return fmt.Errorf("disable foreign key checks: %w", err)
	}

	var truncErr error
	for _, table := range truncateOrder {
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
			truncErr = fmt.Errorf("truncate %s: %w", table, err)
			break
		}
	}

	if _, err := db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1"); err != nil && truncErr == nil {
		truncErr = fmt.Errorf("restore foreign key checks: %w", err)
	}
	return truncErr
}
