package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"avialab/flightdeck/internal/constants"
	"avialab/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

const (
	departureWindowPast   = 10 * 24 * time.Hour
	departureWindowFuture = 30 * 24 * time.Hour

	phonePresence    = 0.8
	passportPresence = 0.7

	placeholderPassword = "password123"
)

// BuildFlight assembles one random flight over the pre-loaded reference
// data. Returns false when no distinct arrival airport can be resolved,
// which only happens with fewer than two airports.
func BuildFlight(rng *rand.Rand, gen *DataGenerator, refs *ReferenceIDs, now time.Time) (*entities.Flight, bool) {
	if len(refs.AirportIDs) < 2 || len(refs.AirlineIDs) == 0 || len(refs.AircraftIDs) == 0 {
		return nil, false
	}

	dep := refs.AirportIDs[rng.Intn(len(refs.AirportIDs))]
	arr := dep
	for arr == dep {
		arr = refs.AirportIDs[rng.Intn(len(refs.AirportIDs))]
	}

	airlineID := refs.AirlineIDs[rng.Intn(len(refs.AirlineIDs))]
	code, ok := refs.AirlineCodes[airlineID]
	if !ok {
		code = "XX"
	}

	departure := gen.TimeBetween(now.Add(-departureWindowPast), now.Add(departureWindowFuture))
	duration := time.Duration(gen.IntBetween(1, 10))*time.Hour +
		time.Duration(gen.IntBetween(0, 59))*time.Minute
	arrival := departure.Add(duration)

	candidate := constants.AllFlightStatuses[rng.Intn(len(constants.AllFlightStatuses))]

	return &entities.Flight{
		FlightNumber:       fmt.Sprintf("%s%d", code, gen.IntBetween(100, 9999)),
		DepartureAirportID: dep,
		ArrivalAirportID:   arr,
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		AirlineID:          airlineID,
		AircraftID:         refs.AircraftIDs[rng.Intn(len(refs.AircraftIDs))],
		Status:             CorrectFlightStatus(candidate, now, departure, arrival, rng),
	}, true
}

// flightPool is what the booking builder needs from the flight phase: the
// bookable identifiers and a status lookup that replaces per-row queries.
type flightPool struct {
	bookableIDs []int64
	statusByID  map[int64]constants.FlightStatus
}

func seedFlights(ctx context.Context, tx *sqlx.Tx, rng *rand.Rand, gen *DataGenerator, refs *ReferenceIDs, count int, now time.Time, log *runLog) (*flightPool, error) {
	pool := &flightPool{statusByID: make(map[int64]constants.FlightStatus)}

	if len(refs.AirportIDs) == 0 || len(refs.AirlineIDs) == 0 || len(refs.AircraftIDs) == 0 {
		log.add("- WARNING: Skipping Flights seeding due to empty Airports, Airlines or Aircraft IDs.")
		log.add("- Flights seeded: 0")
		return pool, nil
	}

	seeded := 0
	for i := 0; i < count; i++ {
		f, ok := BuildFlight(rng, gen, refs, now)
		if !ok {
			continue
		}

		res, err := tx.ExecContext(ctx,
			"INSERT INTO Flights (flight_number, departure_airport_id, arrival_airport_id, departure_time, arrival_time, airline_id, aircraft_id, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			f.FlightNumber, f.DepartureAirportID, f.ArrivalAirportID,
			f.DepartureTime, f.ArrivalTime, f.AirlineID, f.AircraftID, f.Status)
		if err != nil {
			return nil, fmt.Errorf("insert flight %s: %w", f.FlightNumber, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("flight id: %w", err)
		}

		pool.statusByID[id] = f.Status
		for _, s := range constants.BookableFlightStatuses {
			if f.Status == s {
				pool.bookableIDs = append(pool.bookableIDs, id)
				break
			}
		}
		seeded++
	}
	log.addf("- Flights seeded: %d", seeded)

	return pool, nil
}

// BuildUser assembles one user with a pre-computed password hash. All
// seeded accounts share the same placeholder password, so it is hashed
// once per run rather than once per row.
func BuildUser(gen *DataGenerator, passwordHash string) *entities.User {
	first := gen.FirstName()
	last := gen.LastName()
	return &entities.User{
		FirstName:    first,
		LastName:     last,
		Email:        gen.UniqueEmail(first, last),
		PasswordHash: passwordHash,
		PhoneNumber:  gen.Maybe(phonePresence, gen.Phone),
	}
}

func seedUsers(ctx context.Context, tx *sqlx.Tx, gen *DataGenerator, count, bcryptCost int, log *runLog) ([]int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		u := BuildUser(gen, string(hash))
		res, err := tx.ExecContext(ctx,
			"INSERT INTO Users (first_name, last_name, email, password_hash, phone_number) VALUES (?, ?, ?, ?, ?)",
			u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber)
		if err != nil {
			return nil, fmt.Errorf("insert user %s: %w", u.Email, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("user id: %w", err)
		}
		ids = append(ids, id)
	}
	log.addf("- Users seeded: %d", len(ids))

	return ids, nil
}

// BuildPassenger assembles one passenger with a date of birth in a wide
// historical window and an optional passport number.
func BuildPassenger(gen *DataGenerator, now time.Time) *entities.Passenger {
	dob := gen.TimeBetween(now.AddDate(-80, 0, 0), now.AddDate(-1, 0, 0))
	return &entities.Passenger{
		FirstName:      gen.FirstName(),
		LastName:       gen.LastName(),
		DateOfBirth:    &dob,
		PassportNumber: gen.Maybe(passportPresence, gen.PassportNumber),
	}
}

func seedPassengers(ctx context.Context, tx *sqlx.Tx, gen *DataGenerator, count int, now time.Time, log *runLog) ([]int64, error) {
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		p := BuildPassenger(gen, now)
		res, err := tx.ExecContext(ctx,
			"INSERT INTO Passengers (first_name, last_name, date_of_birth, passport_number) VALUES (?, ?, ?, ?)",
			p.FirstName, p.LastName, p.DateOfBirth.Format("2006-01-02"), p.PassportNumber)
		if err != nil {
			return nil, fmt.Errorf("insert passenger: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("passenger id: %w", err)
		}
		ids = append(ids, id)
	}
	log.addf("- Passengers seeded: %d", len(ids))

	return ids, nil
}
