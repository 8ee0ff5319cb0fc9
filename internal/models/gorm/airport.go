package gorm

// Airport maps the Airports table for the gorm read path.
type Airport struct {
	AirportID int64   `gorm:"column:airport_id;primaryKey;autoIncrement"`
	IATACode  string  `gorm:"column:iata_code"`
	Name      string  `gorm:"column:name"`
	City      string  `gorm:"column:city"`
	Country   string  `gorm:"column:country"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
	Timezone  *string `gorm:"column:timezone"`
}

// TableName overrides gorm's pluralised snake_case default.
func (Airport) TableName() string {
	return "Airports"
}
