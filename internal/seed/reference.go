package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type AirlineSeed struct {
	Name     string
	IATACode string
}

type AirportSeed struct {
	IATACode  string
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
}

type AircraftSeed struct {
	Model    string
	Capacity int
}

// Curated reference data. Values are the demo dataset shipped with the
// project; IATA codes are the natural keys downstream generators rely on.
var Airlines = []AirlineSeed{
	{"Аэрофлот", "SU"},
	{"S7 Airlines", "S7"},
	{"Уральские авиалинии", "U6"},
	{"Победа", "DP"},
	{"Россия", "FV"},
	{"Turkish Airlines", "TK"},
	{"Emirates", "EK"},
}

var Airports = []AirportSeed{
	{"SVO", "Шереметьево", "Москва", "Россия", 55.9727780, 37.4147220, "Europe/Moscow"},
	{"DME", "Домодедово", "Москва", "Россия", 55.4088890, 37.9061110, "Europe/Moscow"},
	{"VKO", "Внуково", "Москва", "Россия", 55.5913890, 37.2613890, "Europe/Moscow"},
	{"LED", "Пулково", "Санкт-Петербург", "Россия", 59.8002780, 30.2625000, "Europe/Moscow"},
	{"AER", "Сочи", "Сочи", "Россия", 43.4450000, 39.9477780, "Europe/Moscow"},
	{"SVX", "Кольцово", "Екатеринбург", "Россия", 56.7430560, 60.8041670, "Asia/Yekaterinburg"},
	{"KZN", "Казань", "Казань", "Россия", 55.6086110, 49.2791670, "Europe/Moscow"},
	{"OVB", "Толмачёво", "Новосибирск", "Россия", 55.0127780, 82.6669440, "Asia/Novosibirsk"},
	{"KJA", "Емельяново", "Красноярск", "Россия", 56.1730560, 92.4891670, "Asia/Krasnoyarsk"},
	{"ROV", "Платов", "Ростов-на-Дону", "Россия", 47.4905560, 39.9188890, "Europe/Moscow"},
	{"KUF", "Курумоч", "Самара", "Россия", 53.5058330, 50.1541670, "Europe/Samara"},
	{"UFA", "Уфа", "Уфа", "Россия", 54.5575000, 55.8741670, "Asia/Yekaterinburg"},
	{"IKT", "Иркутск", "Иркутск", "Россия", 52.2677780, 104.3500000, "Asia/Irkutsk"},
	{"KGD", "Храброво", "Калининград", "Россия", 54.8900000, 20.5925000, "Europe/Kaliningrad"},
	{"MRV", "Минеральные Воды", "Минеральные Воды", "Россия", 44.2250000, 43.0816670, "Europe/Moscow"},
	{"VVO", "Кневичи", "Владивосток", "Россия", 43.3830560, 132.1488890, "Asia/Vladivostok"},
	{"GOJ", "Стригино", "Нижний Новгород", "Россия", 56.2300000, 43.7841670, "Europe/Moscow"},
	{"CEK", "Баландино", "Челябинск", "Россия", 55.3058330, 61.5038890, "Asia/Yekaterinburg"},
	{"IST", "Стамбул (Новый)", "Стамбул", "Турция", 41.2588890, 28.7455560, "Europe/Istanbul"},
	{"DXB", "Дубай (Международный)", "Дубай", "ОАЭ", 25.2527780, 55.3644440, "Asia/Dubai"},
	{"EVN", "Звартноц", "Ереван", "Армения", 40.1472000, 44.3958000, "Asia/Yerevan"},
	{"TBS", "Тбилиси", "Тбилиси", "Грузия", 41.6692000, 44.9547000, "Asia/Tbilisi"},
	{"AYT", "Анталья", "Анталья", "Турция", 36.8987000, 30.8005000, "Europe/Istanbul"},
	{"PEK", "Пекин Столичный", "Пекин", "Китай", 40.0800000, 116.5844440, "Asia/Shanghai"},
	{"BKK", "Суварнабхуми", "Бангкок", "Таиланд", 13.6900000, 100.7501000, "Asia/Bangkok"},
	{"DEL", "Им. Индиры Ганди", "Дели", "Индия", 28.5562000, 77.1000000, "Asia/Kolkata"},
	{"LHR", "Хитроу", "Лондон", "Великобритания", 51.4700000, -0.4543000, "Europe/London"},
	{"CDG", "Шарль-де-Голль", "Париж", "Франция", 49.0097000, 2.5479000, "Europe/Paris"},
	{"FRA", "Франкфурт-на-Майне", "Франкфурт", "Германия", 50.0379000, 8.5622000, "Europe/Berlin"},
	{"AMS", "Схипхол", "Амстердам", "Нидерланды", 52.3105000, 4.7683000, "Europe/Amsterdam"},
	{"JFK", "Им. Джона Кеннеди", "Нью-Йорк", "США", 40.6413000, -73.7781000, "America/New_York"},
	{"LAX", "Лос-Анджелес", "Лос-Анджелес", "США", 33.9416000, -118.4085000, "America/Los_Angeles"},
}

var AircraftTypes = []AircraftSeed{
	{"Boeing 737-800", 180},
	{"Airbus A320neo", 186},
	{"Sukhoi Superjet 100", 98},
	{"Boeing 777-300ER", 400},
	{"Airbus A350-900", 315},
	{"Embraer E190", 100},
}

// ReferenceIDs carries the identifiers assigned during the reference phase,
// pre-loaded so downstream generators never query per row.
type ReferenceIDs struct {
	AirlineIDs   []int64
	AirlineCodes map[int64]string
	AirportIDs   []int64
	AircraftIDs  []int64
}

func seedReference(ctx context.Context, tx *sqlx.Tx, log *runLog) (*ReferenceIDs, error) {
	refs := &ReferenceIDs{AirlineCodes: make(map[int64]string)}

	for _, al := range Airlines {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO Airlines (name, iata_code) VALUES (?, ?)", al.Name, al.IATACode)
		if err != nil {
			return nil, fmt.Errorf("insert airline %s: %w", al.IATACode, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("airline id: %w", err)
		}
		refs.AirlineIDs = append(refs.AirlineIDs, id)
		refs.AirlineCodes[id] = al.IATACode
	}
	log.addf("- Airlines seeded: %d", len(refs.AirlineIDs))

	for _, ap := range Airports {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO Airports (iata_code, name, city, country, latitude, longitude, timezone) VALUES (?, ?, ?, ?, ?, ?, ?)",
			ap.IATACode, ap.Name, ap.City, ap.Country, ap.Latitude, ap.Longitude, ap.Timezone)
		if err != nil {
			return nil, fmt.Errorf("insert airport %s: %w", ap.IATACode, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("airport id: %w", err)
		}
		refs.AirportIDs = append(refs.AirportIDs, id)
	}
	log.addf("- Airports seeded: %d", len(refs.AirportIDs))

	for _, ac := range AircraftTypes {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO Aircraft (model, capacity) VALUES (?, ?)", ac.Model, ac.Capacity)
		if err != nil {
			return nil, fmt.Errorf("insert aircraft %s: %w", ac.Model, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("aircraft id: %w", err)
		}
		refs.AircraftIDs = append(refs.AircraftIDs, id)
	}
	log.addf("- Aircraft seeded: %d", len(refs.AircraftIDs))

	return refs, nil
}
