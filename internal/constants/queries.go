package constants

const (
	// SearchAirports ranks matches: IATA prefix first, then city substring,
	// then everything else, with city/name as the tie-breaker.
	SearchAirports = `
	SELECT
		airport_id AS id,
		iata_code,
		name,
		city,
		country,
		latitude,
		longitude
	FROM Airports
	WHERE iata_code LIKE ?
	   OR name LIKE ?
	   OR city LIKE ?
	ORDER BY
		CASE
			WHEN iata_code LIKE ? THEN 0
			WHEN city LIKE ? THEN 1
			ELSE 2
		END,
		city, name
	LIMIT 20
	`

	// SearchFlights joins departure/arrival airports to their own aliases and
	// filters on the calendar date of departure.
	SearchFlights = `
	SELECT
		f.flight_id,
		f.flight_number,
		f.departure_time,
		f.arrival_time,
		f.status AS flight_status,

		orig.airport_id AS origin_airport_id,
		orig.iata_code AS origin_iata,
		orig.name AS origin_name,
		orig.city AS origin_city,
		orig.country AS origin_country,
		orig.latitude AS origin_lat,
		orig.longitude AS origin_lon,
		orig.timezone AS origin_timezone,

		dest.airport_id AS destination_airport_id,
		dest.iata_code AS destination_iata,
		dest.name AS destination_name,
		dest.city AS destination_city,
		dest.country AS destination_country,
		dest.latitude AS destination_lat,
		dest.longitude AS destination_lon,
		dest.timezone AS destination_timezone,

		al.airline_id,
		al.name AS airline_name,
		al.iata_code AS airline_iata,

		ac.aircraft_id,
		ac.model AS aircraft_model,
		ac.capacity AS aircraft_capacity
	FROM Flights f
	JOIN Airports orig ON f.departure_airport_id = orig.airport_id
	JOIN Airports dest ON f.arrival_airport_id = dest.airport_id
	JOIN Airlines al ON f.airline_id = al.airline_id
	JOIN Aircraft ac ON f.aircraft_id = ac.aircraft_id
	WHERE orig.iata_code = ?
	  AND dest.iata_code = ?
	  AND DATE(f.departure_time) = ?
	ORDER BY f.departure_time ASC
	`
)
