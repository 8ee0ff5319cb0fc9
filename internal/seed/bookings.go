package seed

import (
	"context"
	"fmt"
	"math/rand"

	"avialab/flightdeck/internal/constants"
	"avialab/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

const (
	maxTicketsPerBooking = 5
	seatPresence         = 0.9
	minTicketPrice       = 3000
	maxTicketPrice       = 80000
)

// BuildTickets assembles the tickets of one booking: 1-5 distinct
// passengers, all on the same flight, with statuses derived from the
// booking and flight statuses. BookingID is filled in after the booking
// row exists.
func BuildTickets(rng *rand.Rand, gen *DataGenerator, bookingStatus constants.BookingStatus, flightID int64, flightStatus constants.FlightStatus, passengerIDs []int64) []entities.Ticket {
	n := gen.IntBetween(1, maxTicketsPerBooking)
	if n > len(passengerIDs) {
		n = len(passengerIDs)
	}

	// Partial Fisher-Yates over a copy picks n distinct passengers.
	picked := make([]int64, len(passengerIDs))
	copy(picked, passengerIDs)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}

	tickets := make([]entities.Ticket, 0, n)
	for _, passengerID := range picked[:n] {
		tickets = append(tickets, entities.Ticket{
			PassengerID:  passengerID,
			FlightID:     flightID,
			SeatNumber:   gen.Maybe(seatPresence, gen.SeatNumber),
			Class:        constants.AllTravelClasses[rng.Intn(len(constants.AllTravelClasses))],
			Price:        gen.Price(minTicketPrice, maxTicketPrice),
			TicketNumber: gen.TicketNumber(),
			Status:       DeriveTicketStatus(bookingStatus, flightStatus, rng),
		})
	}
	return tickets
}

// TotalAmount sums the prices of tickets that count towards the booking:
// non-cancelled tickets of a non-cancelled booking. Everything else
// contributes zero.
func TotalAmount(bookingStatus constants.BookingStatus, tickets []entities.Ticket) float64 {
	if bookingStatus == constants.BookingCancelled {
		return 0
	}
	var total float64
	for _, t := range tickets {
		if t.Status != constants.TicketCancelled {
			total += t.Price
		}
	}
	return total
}

func seedBookings(ctx context.Context, tx *sqlx.Tx, rng *rand.Rand, gen *DataGenerator, userIDs, passengerIDs []int64, flights *flightPool, count int, log *runLog) (int, int, error) {
	if len(userIDs) == 0 || len(passengerIDs) == 0 || len(flights.bookableIDs) == 0 {
		log.add("- WARNING: Skipping Bookings/Tickets seeding due to empty User, Passenger or available Flight IDs.")
		log.add("- Bookings seeded: 0")
		log.add("- Tickets seeded: 0")
		return 0, 0, nil
	}

	bookings, ticketTotal := 0, 0
	for i := 0; i < count; i++ {
		userID := userIDs[rng.Intn(len(userIDs))]
		reference := gen.BookingReference()
		status := constants.AllBookingStatuses[rng.Intn(len(constants.AllBookingStatuses))]

		res, err := tx.ExecContext(ctx,
			"INSERT INTO Bookings (user_id, booking_reference, total_amount, status) VALUES (?, ?, ?, ?)",
			userID, reference, 0, status)
		if err != nil {
			return bookings, ticketTotal, fmt.Errorf("insert booking %s: %w", reference, err)
		}
		bookingID, err := res.LastInsertId()
		if err != nil {
			return bookings, ticketTotal, fmt.Errorf("booking id: %w", err)
		}
		bookings++

		flightID := flights.bookableIDs[rng.Intn(len(flights.bookableIDs))]
		tickets := BuildTickets(rng, gen, status, flightID, flights.statusByID[flightID], passengerIDs)

		for _, t := range tickets {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO Tickets (booking_id, passenger_id, flight_id, seat_number, class, price, ticket_number, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
				bookingID, t.PassengerID, t.FlightID, t.SeatNumber, t.Class, t.Price, t.TicketNumber, t.Status); err != nil {
				return bookings, ticketTotal, fmt.Errorf("insert ticket %s: %w", t.TicketNumber, err)
			}
			ticketTotal++
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE Bookings SET total_amount = ? WHERE booking_id = ?",
			TotalAmount(status, tickets), bookingID); err != nil {
			return bookings, ticketTotal, fmt.Errorf("update booking total %s: %w", reference, err)
		}
	}

	log.addf("- Bookings seeded: %d", bookings)
	log.addf("- Tickets seeded: %d", ticketTotal)
	return bookings, ticketTotal, nil
}
