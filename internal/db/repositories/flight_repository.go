package repositories

import (
	"context"

	"avialab/flightdeck/internal/constants"
	"avialab/flightdeck/internal/models/dtos"

	"github.com/jmoiron/sqlx"
)

// FlightRepository serves the flights search endpoint.
type FlightRepository struct {
	db *sqlx.DB
}

func NewFlightRepository(db *sqlx.DB) *FlightRepository {
	return &FlightRepository{db}
}

// Search returns flights from origin to destination departing on the
// given calendar date (YYYY-MM-DD), ordered by departure time. The result
// is never nil so an empty match encodes as [] rather than null.
func (r *FlightRepository) Search(ctx context.Context, originIATA, destinationIATA, date string) ([]dtos.FlightResult, error) {
	results := make([]dtos.FlightResult, 0)
	err := r.db.SelectContext(ctx, &results, constants.SearchFlights,
		originIATA, destinationIATA, date)
	if err != nil {
		return nil, err
	}
	return results, nil
}
