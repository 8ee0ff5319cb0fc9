package dtos

import (
	"encoding/json"
	"fmt"
	"time"
)

// SQLTime renders DATETIME columns the way the API exposes them
// ("2006-01-02 15:04:05") instead of RFC 3339.
type SQLTime struct {
	time.Time
}

func (t *SQLTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case []byte:
		parsed, err := time.Parse("2006-01-02 15:04:05", string(v))
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into SQLTime", src)
	}
}

func (t SQLTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("2006-01-02 15:04:05"))
}

// AirportResult is a row of the airports search/browse endpoint.
type AirportResult struct {
	ID        int64   `db:"id" gorm:"column:id" json:"id"`
	IATACode  string  `db:"iata_code" gorm:"column:iata_code" json:"iata_code"`
	Name      string  `db:"name" gorm:"column:name" json:"name"`
	City      string  `db:"city" gorm:"column:city" json:"city"`
	Country   string  `db:"country" gorm:"column:country" json:"country"`
	Latitude  float64 `db:"latitude" gorm:"column:latitude" json:"latitude"`
	Longitude float64 `db:"longitude" gorm:"column:longitude" json:"longitude"`
}

// FlightResult is a flattened row of the flights search endpoint, joining
// flight, both airports, airline and aircraft details.
type FlightResult struct {
	FlightID      int64   `db:"flight_id" json:"flight_id"`
	FlightNumber  string  `db:"flight_number" json:"flight_number"`
	DepartureTime SQLTime `db:"departure_time" json:"departure_time"`
	ArrivalTime   SQLTime `db:"arrival_time" json:"arrival_time"`
	FlightStatus  string  `db:"flight_status" json:"flight_status"`

	OriginAirportID int64   `db:"origin_airport_id" json:"origin_airport_id"`
	OriginIATA      string  `db:"origin_iata" json:"origin_iata"`
	OriginName      string  `db:"origin_name" json:"origin_name"`
	OriginCity      string  `db:"origin_city" json:"origin_city"`
	OriginCountry   string  `db:"origin_country" json:"origin_country"`
	OriginLat       float64 `db:"origin_lat" json:"origin_lat"`
	OriginLon       float64 `db:"origin_lon" json:"origin_lon"`
	OriginTimezone  *string `db:"origin_timezone" json:"origin_timezone"`

	DestinationAirportID int64   `db:"destination_airport_id" json:"destination_airport_id"`
	DestinationIATA      string  `db:"destination_iata" json:"destination_iata"`
	DestinationName      string  `db:"destination_name" json:"destination_name"`
	DestinationCity      string  `db:"destination_city" json:"destination_city"`
	DestinationCountry   string  `db:"destination_country" json:"destination_country"`
	DestinationLat       float64 `db:"destination_lat" json:"destination_lat"`
	DestinationLon       float64 `db:"destination_lon" json:"destination_lon"`
	DestinationTimezone  *string `db:"destination_timezone" json:"destination_timezone"`

	AirlineID   int64  `db:"airline_id" json:"airline_id"`
	AirlineName string `db:"airline_name" json:"airline_name"`
	AirlineIATA string `db:"airline_iata" json:"airline_iata"`

	AircraftID       int64  `db:"aircraft_id" json:"aircraft_id"`
	AircraftModel    string `db:"aircraft_model" json:"aircraft_model"`
	AircraftCapacity int    `db:"aircraft_capacity" json:"aircraft_capacity"`
}

// SeedResponse is the success body of POST /db-generate.php.
type SeedResponse struct {
	Message string   `json:"message"`
	Log     []string `json:"log"`
}

// ErrorResponse is the generic error body. Details carries the underlying
// error message on the seed endpoint only; Route is set on 404s.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Route   string `json:"route,omitempty"`
}
