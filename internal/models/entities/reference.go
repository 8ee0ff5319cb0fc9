package entities

import "time"

type Airline struct {
	ID        int64     `db:"airline_id"`
	Name      string    `db:"name"`
	IATACode  string    `db:"iata_code"`
	CreatedAt time.Time `db:"created_at"`
}

type Airport struct {
	ID        int64     `db:"airport_id"`
	IATACode  string    `db:"iata_code"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	Country   string    `db:"country"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Timezone  *string   `db:"timezone"`
	CreatedAt time.Time `db:"created_at"`
}

type Aircraft struct {
	ID        int64     `db:"aircraft_id"`
	Model     string    `db:"model"`
	Capacity  int       `db:"capacity"`
	CreatedAt time.Time `db:"created_at"`
}
