package store

import (
	"strconv"
	"time"

	"taxi-analytics-api/models"
)

// Row-to-trip conversion is deliberately lenient: optional numeric fields
// fall back to zero values, and a row missing any required identifying
// field is dropped without failing the page. Malformed warehouse data
// degrades completeness, not availability. Dropped rows are not counted and
// do not affect total_records.

func mapFactRows(rows []Row) []models.Trip {
	trips := make([]models.Trip, 0, len(rows))
	for _, row := range rows {
		t, ok := factTrip(row)
		if !ok {
			continue
		}
		trips = append(trips, t)
	}
	return trips
}

func factTrip(row Row) (models.Trip, bool) {
	id, ok := intField(row["trip_id"])
	if !ok {
		return models.Trip{}, false
	}
	svc, ok := stringField(row["service_type"])
	if !ok {
		return models.Trip{}, false
	}
	pickup, ok := timeField(row["pickup_datetime"])
	if !ok {
		return models.Trip{}, false
	}
	dropoff, ok := timeField(row["dropoff_datetime"])
	if !ok {
		return models.Trip{}, false
	}

	return models.Trip{
		TripID:          id,
		ServiceType:     svc,
		PickupDatetime:  pickup,
		DropoffDatetime: dropoff,
		PickupBorough:   asStringPtr(row["pickup_borough"]),
		PickupZone:      asStringPtr(row["pickup_zone"]),
		DropoffBorough:  asStringPtr(row["dropoff_borough"]),
		DropoffZone:     asStringPtr(row["dropoff_zone"]),
		TripDistance:    asFloat(row["trip_distance"]),
		TotalAmount:     asFloat(row["total_amount"]),
		TripDurationSec: asInt(row["trip_duration_sec"]),
	}, true
}

// mapAggregateRows synthesizes trips from daily aggregate rows. Ids are the
// 1-based position within the page; pickup and dropoff both carry the
// metric date, and borough/zone stay unset.
func mapAggregateRows(rows []Row) []models.Trip {
	trips := make([]models.Trip, 0, len(rows))
	for _, row := range rows {
		svc, ok := stringField(row["service_type"])
		if !ok {
			continue
		}
		day, ok := timeField(row["metric_date"])
		if !ok {
			continue
		}
		trips = append(trips, models.Trip{
			TripID:          int64(len(trips) + 1),
			ServiceType:     svc,
			PickupDatetime:  day,
			DropoffDatetime: day,
			TripDistance:    asFloat(row["avg_trip_distance"]),
			TotalAmount:     asFloat(row["total_revenue"]),
			TripDurationSec: asInt(row["avg_trip_duration_sec"]),
		})
	}
	return trips
}

// asFloat coerces an optional numeric value, substituting 0 when it is
// missing, empty or unparseable.
func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case int:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	case []byte:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func asInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case float32:
		return int64(x)
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(x, 64)
			if ferr != nil {
				return 0
			}
			return int64(f)
		}
		return n
	case []byte:
		return asInt(string(x))
	}
	return 0
}

func asStringPtr(v any) *string {
	s, ok := stringField(v)
	if !ok {
		return nil
	}
	return &s
}

// intField is the strict variant used for required identifiers.
func intField(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case int:
		return int64(x), true
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case []byte:
		n, err := strconv.ParseInt(string(x), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func stringField(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return "", false
		}
		return x, true
	case []byte:
		if len(x) == 0 {
			return "", false
		}
		return string(x), true
	}
	return "", false
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func timeField(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return t, true
			}
		}
	case []byte:
		return timeField(string(x))
	}
	return time.Time{}, false
}
