package repositories

import (
	"context"

	"avialab/flightdeck/internal/constants"
	"avialab/flightdeck/internal/models/dtos"
	gormmodels "avialab/flightdeck/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository serves the airports search/browse endpoint.
type AirportRepository struct {
	db *gormlib.DB
}

func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// Search returns up to 20 airports ranked by match quality: IATA prefix
// first, then city substring, then everything else, tie-broken by
// city/name.
func (r *AirportRepository) Search(ctx context.Context, term string) ([]dtos.AirportResult, error) {
	prefix := term + "%"
	substring := "%" + term + "%"

	results := make([]dtos.AirportResult, 0, 20)
	err := r.db.WithContext(ctx).
		Raw(constants.SearchAirports, prefix, substring, substring, prefix, substring).
		Scan(&results).Error
	return results, err
}

// Browse returns up to 100 airports in country/city/name order, for the
// empty-search listing.
func (r *AirportRepository) Browse(ctx context.Context) ([]dtos.AirportResult, error) {
	results := make([]dtos.AirportResult, 0, 100)
	err := r.db.WithContext(ctx).
		Model(&gormmodels.Airport{}).
		Select("airport_id AS id, iata_code, name, city, country, latitude, longitude").
		Order("country, city, name").
		Limit(100).
		Find(&results).Error
	return results, err
}
