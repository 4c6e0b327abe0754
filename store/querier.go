package store

import (
	"context"

	"gorm.io/gorm"
)

// Row is one result row with named-field access. Value types depend on the
// driver; the mappers in this package coerce them leniently.
type Row map[string]any

// Querier is the narrow database collaborator: parameterized scalar and row
// queries. Connection lifecycle, pooling and timeouts belong to the
// implementation, not to callers.
type Querier interface {
	ExecuteScalar(ctx context.Context, query string, args ...any) (int64, error)
	ExecuteQuery(ctx context.Context, query string, args ...any) ([]Row, error)
}

// Query operations, used to tag failures.
const (
	OpCount = "count"
	OpPage  = "page"
)

// QueryError wraps a count- or page-query failure so the handler boundary
// can map any database failure to the empty-response policy while tests can
// still tell the two apart.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return "trip " + e.Op + " query failed: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// GormQuerier implements Querier on a gorm connection using raw
// parameterized SQL.
type GormQuerier struct {
	db *gorm.DB
}

func NewGormQuerier(db *gorm.DB) *GormQuerier {
	return &GormQuerier{db: db}
}

// ExecuteScalar runs a single-value query. A query that yields no row maps
// to zero, not an error.
func (g *GormQuerier) ExecuteScalar(ctx context.Context, query string, args ...any) (int64, error) {
	var result *int64
	if err := g.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error; err != nil {
		return 0, err
	}
	if result == nil {
		return 0, nil
	}
	return *result, nil
}

func (g *GormQuerier) ExecuteQuery(ctx context.Context, query string, args ...any) ([]Row, error) {
	var raw []map[string]any
	if err := g.db.WithContext(ctx).Raw(query, args...).Scan(&raw).Error; err != nil {
		return nil, err
	}
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}
