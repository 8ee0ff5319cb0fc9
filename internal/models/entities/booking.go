package entities

import (
	"time"

	"avialab/flightdeck/internal/constants"
)

type Flight struct {
	ID                 int64                  `db:"flight_id"`
	FlightNumber       string                 `db:"flight_number"`
	DepartureAirportID int64                  `db:"departure_airport_id"`
	ArrivalAirportID   int64                  `db:"arrival_airport_id"`
	DepartureTime      time.Time              `db:"departure_time"`
	ArrivalTime        time.Time              `db:"arrival_time"`
	AirlineID          int64                  `db:"airline_id"`
	AircraftID         int64                  `db:"aircraft_id"`
	Status             constants.FlightStatus `db:"status"`
	CreatedAt          time.Time              `db:"created_at"`
}

type User struct {
	ID           int64     `db:"user_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	PhoneNumber  *string   `db:"phone_number"`
	CreatedAt    time.Time `db:"created_at"`
}

type Passenger struct {
	ID             int64      `db:"passenger_id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	PassportNumber *string    `db:"passport_number"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Booking struct {
	ID               int64                   `db:"booking_id"`
	UserID           int64                   `db:"user_id"`
	BookingReference string                  `db:"booking_reference"`
	TotalAmount      float64                 `db:"total_amount"`
	Status           constants.BookingStatus `db:"status"`
	CreatedAt        time.Time               `db:"created_at"`
}

type Ticket struct {
	ID           int64                  `db:"ticket_id"`
	BookingID    int64                  `db:"booking_id"`
	PassengerID  int64                  `db:"passenger_id"`
	FlightID     int64                  `db:"flight_id"`
	SeatNumber   *string                `db:"seat_number"`
	Class        constants.TravelClass  `db:"class"`
	Price        float64                `db:"price"`
	TicketNumber string                 `db:"ticket_number"`
	Status       constants.TicketStatus `db:"status"`
	CreatedAt    time.Time              `db:"created_at"`
}
