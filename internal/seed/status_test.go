package seed

import (
	"math/rand"
	"testing"
	"time"

	"avialab/flightdeck/internal/constants"
)

func TestCorrectFlightStatus_FutureDeparture(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	departure := now.Add(24 * time.Hour)
	arrival := departure.Add(2 * time.Hour)

	cases := []struct {
		candidate constants.FlightStatus
		want      []constants.FlightStatus
	}{
		{constants.FlightScheduled, []constants.FlightStatus{constants.FlightScheduled}},
		{constants.FlightCancelled, []constants.FlightStatus{constants.FlightCancelled}},
		{constants.FlightDeparted, []constants.FlightStatus{constants.FlightScheduled}},
		{constants.FlightArrived, []constants.FlightStatus{constants.FlightScheduled}},
		{constants.FlightDelayed, []constants.FlightStatus{constants.FlightScheduled}},
		{constants.FlightOnTime, []constants.FlightStatus{constants.FlightScheduled}},
	}
	for _, tc := range cases {
		got := CorrectFlightStatus(tc.candidate, now, departure, arrival, rng)
		if !containsStatus(tc.want, got) {
			t.Errorf("future departure, candidate %s: got %s, want one of %v", tc.candidate, got, tc.want)
		}
	}
}

func TestCorrectFlightStatus_PastArrival(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	arrival := now.Add(-24 * time.Hour)
	departure := arrival.Add(-2 * time.Hour)

	cases := []struct {
		candidate constants.FlightStatus
		want      []constants.FlightStatus
	}{
		{constants.FlightArrived, []constants.FlightStatus{constants.FlightArrived}},
		{constants.FlightCancelled, []constants.FlightStatus{constants.FlightCancelled}},
		{constants.FlightScheduled, []constants.FlightStatus{constants.FlightArrived}},
		{constants.FlightDeparted, []constants.FlightStatus{constants.FlightArrived}},
	}
	for _, tc := range cases {
		got := CorrectFlightStatus(tc.candidate, now, departure, arrival, rng)
		if !containsStatus(tc.want, got) {
			t.Errorf("past arrival, candidate %s: got %s, want one of %v", tc.candidate, got, tc.want)
		}
	}
}

func TestCorrectFlightStatus_InProgress(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	departure := now.Add(-1 * time.Hour)
	arrival := now.Add(1 * time.Hour)

	valid := []constants.FlightStatus{
		constants.FlightDeparted, constants.FlightDelayed, constants.FlightOnTime,
	}

	// Valid in-progress candidates pass through unchanged, everything else
	// (including Cancelled) is forced into the in-progress set.
	for _, candidate := range constants.AllFlightStatuses {
		got := CorrectFlightStatus(candidate, now, departure, arrival, rng)
		if !containsStatus(valid, got) {
			t.Errorf("in progress, candidate %s: got %s, want one of %v", candidate, got, valid)
		}
		if containsStatus(valid, candidate) && got != candidate {
			t.Errorf("in progress, valid candidate %s was replaced with %s", candidate, got)
		}
	}
}

func TestDeriveTicketStatus_NonConfirmedBookingCancelsTickets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, booking := range []constants.BookingStatus{constants.BookingPendingPayment, constants.BookingCancelled} {
		for _, flight := range constants.AllFlightStatuses {
			if got := DeriveTicketStatus(booking, flight, rng); got != constants.TicketCancelled {
				t.Errorf("booking %s, flight %s: got %s, want Cancelled", booking, flight, got)
			}
		}
	}
}

func TestDeriveTicketStatus_ConfirmedBooking(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		flight constants.FlightStatus
		want   []constants.TicketStatus
	}{
		{constants.FlightDeparted, []constants.TicketStatus{constants.TicketCheckedIn, constants.TicketBoarded}},
		{constants.FlightArrived, []constants.TicketStatus{constants.TicketCheckedIn, constants.TicketBoarded}},
		{constants.FlightScheduled, []constants.TicketStatus{constants.TicketIssued, constants.TicketCheckedIn}},
		{constants.FlightOnTime, []constants.TicketStatus{constants.TicketIssued, constants.TicketCheckedIn}},
		{constants.FlightDelayed, []constants.TicketStatus{constants.TicketIssued, constants.TicketCheckedIn}},
		{constants.FlightCancelled, []constants.TicketStatus{constants.TicketCancelled}},
	}
	for _, tc := range cases {
		for i := 0; i < 20; i++ {
			got := DeriveTicketStatus(constants.BookingConfirmed, tc.flight, rng)
			found := false
			for _, w := range tc.want {
				if got == w {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("confirmed booking, flight %s: got %s, want one of %v", tc.flight, got, tc.want)
			}
		}
	}
}

func containsStatus(set []constants.FlightStatus, s constants.FlightStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
