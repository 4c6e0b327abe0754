package store

import (
	"context"
	"fmt"

	"taxi-analytics-api/models"
)

// TripStore executes the trip listing queries. Count and page run as two
// independent calls with no shared snapshot, so the total may be stale
// relative to the fetched page under concurrent writes.
type TripStore struct {
	q Querier
}

func NewTripStore(q Querier) *TripStore {
	return &TripStore{q: q}
}

const factColumns = `trip_id, service_type, pickup_datetime, dropoff_datetime,
	pickup_borough, pickup_zone, dropoff_borough, dropoff_zone,
	trip_distance, total_amount, trip_duration_sec`

// FactTrips returns one page from the per-trip fact table with pagination
// pushed into SQL. Ordering is newest pickup first, trip_id as tie-break so
// page boundaries stay stable across requests.
func (s *TripStore) FactTrips(ctx context.Context, f models.TripFilter) ([]models.Trip, int64, error) {
	pred := NewPredicate().
		DateRange("pickup_datetime", f.StartDate, f.EndDate).
		Equal("service_type", f.ServiceType).
		Equal("pickup_borough", f.Borough)
	where := pred.Clause()

	total, err := s.q.ExecuteScalar(ctx,
		"SELECT COUNT(*) FROM fact_trips WHERE "+where, pred.Args()...)
	if err != nil {
		return nil, 0, &QueryError{Op: OpCount, Err: err}
	}

	query := fmt.Sprintf(
		"SELECT %s FROM fact_trips WHERE %s ORDER BY pickup_datetime DESC, trip_id LIMIT ? OFFSET ?",
		factColumns, where)
	args := append(pred.Args(), f.PageSize, f.Offset())

	rows, err := s.q.ExecuteQuery(ctx, query, args...)
	if err != nil {
		return nil, 0, &QueryError{Op: OpPage, Err: err}
	}

	return mapFactRows(rows), total, nil
}

// SampleTrips returns one page of trips synthesized from the daily
// aggregate table. The source has no native offset support, so the full
// filtered result is fetched and sliced here; the table is small and
// bounded (one row per day per service type), which keeps that acceptable.
// Borough is not a column of the aggregates and is ignored.
func (s *TripStore) SampleTrips(ctx context.Context, f models.TripFilter) ([]models.Trip, int64, error) {
	pred := NewPredicate().
		DateRange("metric_date", f.StartDate, f.EndDate).
		Equal("service_type", f.ServiceType)
	where := pred.Clause()

	total, err := s.q.ExecuteScalar(ctx,
		"SELECT COUNT(*) FROM agg_daily_metrics WHERE "+where, pred.Args()...)
	if err != nil {
		return nil, 0, &QueryError{Op: OpCount, Err: err}
	}

	query := "SELECT metric_date, service_type, total_trips, total_revenue, " +
		"avg_trip_distance, avg_trip_duration_sec FROM agg_daily_metrics WHERE " +
		where + " ORDER BY metric_date DESC, service_type"

	rows, err := s.q.ExecuteQuery(ctx, query, pred.Args()...)
	if err != nil {
		return nil, 0, &QueryError{Op: OpPage, Err: err}
	}

	return mapAggregateRows(slicePage(rows, f.Offset(), f.PageSize)), total, nil
}

// slicePage takes [offset, offset+size) with bounds clamped to the result.
func slicePage(rows []Row, offset, size int) []Row {
	if offset < 0 || offset >= len(rows) {
		return nil
	}
	end := offset + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
