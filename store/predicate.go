package store

import (
	"strings"
	"time"
)

// Predicate accumulates parameterized WHERE-clause fragments. Column names
// come from fixed templates in this package, never from request input; only
// the bound args carry user-supplied values.
type Predicate struct {
	clauses []string
	args    []any
}

func NewPredicate() *Predicate {
	return &Predicate{}
}

// DateRange appends an inclusive range on col. Both ends are required; a
// single-sided range is ignored entirely, matching the endpoint's documented
// behavior of filtering only when start and end are supplied together.
func (p *Predicate) DateRange(col string, start, end *time.Time) *Predicate {
	if start == nil || end == nil {
		return p
	}
	p.clauses = append(p.clauses, col+" >= ?", col+" <= ?")
	p.args = append(p.args, *start, *end)
	return p
}

// Equal appends an equality comparison on col. Empty values are skipped.
func (p *Predicate) Equal(col, value string) *Predicate {
	if value == "" {
		return p
	}
	p.clauses = append(p.clauses, col+" = ?")
	p.args = append(p.args, value)
	return p
}

// Clause returns the AND-combined SQL fragment, or a tautology when no
// filter is active.
func (p *Predicate) Clause() string {
	if len(p.clauses) == 0 {
		return "1=1"
	}
	return strings.Join(p.clauses, " AND ")
}

// Args returns the bound values in placeholder order.
func (p *Predicate) Args() []any {
	return append([]any(nil), p.args...)
}
