package seed

import (
	"math/rand"
	"time"

	"avialab/flightdeck/internal/constants"
)

var inProgressStatuses = []constants.FlightStatus{
	constants.FlightDeparted, constants.FlightDelayed, constants.FlightOnTime,
}

// CorrectFlightStatus forces a candidate status to be consistent with the
// current time:
//
//	departure in the future        -> Scheduled or Cancelled
//	arrival in the past            -> Arrived or Cancelled
//	between departure and arrival  -> Departed, Delayed or OnTime
//
// When the candidate already satisfies the rule for its window it is kept;
// otherwise a valid status is substituted (picked at random where the rule
// admits more than one).
func CorrectFlightStatus(candidate constants.FlightStatus, now, departure, arrival time.Time, rng *rand.Rand) constants.FlightStatus {
	switch {
	case departure.After(now):
		if candidate != constants.FlightScheduled && candidate != constants.FlightCancelled {
			return constants.FlightScheduled
		}
	case arrival.Before(now):
		if candidate != constants.FlightArrived && candidate != constants.FlightCancelled {
			return constants.FlightArrived
		}
	default:
		for _, s := range inProgressStatuses {
			if candidate == s {
				return candidate
			}
		}
		return inProgressStatuses[rng.Intn(len(inProgressStatuses))]
	}
	return candidate
}

// DeriveTicketStatus applies the cross-entity rule: a PendingPayment or
// Cancelled booking cancels all of its tickets; a Confirmed booking draws
// the ticket status from the subset valid for the flight's current status.
func DeriveTicketStatus(booking constants.BookingStatus, flight constants.FlightStatus, rng *rand.Rand) constants.TicketStatus {
	if booking != constants.BookingConfirmed {
		return constants.TicketCancelled
	}

	switch flight {
	case constants.FlightDeparted, constants.FlightArrived:
		if rng.Intn(2) == 0 {
			return constants.TicketCheckedIn
		}
		return constants.TicketBoarded
	case constants.FlightScheduled, constants.FlightOnTime, constants.FlightDelayed:
		if rng.Intn(2) == 0 {
			return constants.TicketIssued
		}
		return constants.TicketCheckedIn
	default: // cancelled flight
		return constants.TicketCancelled
	}
}
