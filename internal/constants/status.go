package constants

// FlightStatus mirrors the Flights.status ENUM.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "Scheduled"
	FlightOnTime    FlightStatus = "OnTime"
	FlightDelayed   FlightStatus = "Delayed"
	FlightDeparted  FlightStatus = "Departed"
	FlightArrived   FlightStatus = "Arrived"
	FlightCancelled FlightStatus = "Cancelled"
)

// AllFlightStatuses is the candidate pool for freshly generated flights.
var AllFlightStatuses = []FlightStatus{
	FlightScheduled, FlightOnTime, FlightDelayed,
	FlightCancelled, FlightDeparted, FlightArrived,
}

// BookableFlightStatuses are the statuses a flight may have and still
// receive new bookings. Arrived and Cancelled flights are excluded.
var BookableFlightStatuses = []FlightStatus{
	FlightScheduled, FlightOnTime, FlightDelayed, FlightDeparted,
}

// BookingStatus mirrors the Bookings.status ENUM.
type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "PendingPayment"
	BookingConfirmed      BookingStatus = "Confirmed"
	BookingCancelled      BookingStatus = "Cancelled"
)

var AllBookingStatuses = []BookingStatus{
	BookingPendingPayment, BookingConfirmed, BookingCancelled,
}

// TicketStatus mirrors the Tickets.status ENUM.
type TicketStatus string

const (
	TicketIssued    TicketStatus = "Issued"
	TicketCancelled TicketStatus = "Cancelled"
	TicketCheckedIn TicketStatus = "CheckedIn"
	TicketBoarded   TicketStatus = "Boarded"
)

// TravelClass mirrors the Tickets.class ENUM.
type TravelClass string

const (
	ClassEconomy        TravelClass = "Economy"
	ClassPremiumEconomy TravelClass = "PremiumEconomy"
	ClassBusiness       TravelClass = "Business"
	ClassFirst          TravelClass = "First"
)

var AllTravelClasses = []TravelClass{
	ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst,
}
