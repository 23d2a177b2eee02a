// Package analytics computes descriptive metrics over a warehouse-club
// purchase history.
//
// Engine wraps a read-only transaction slice. Every query method recomputes
// its result from scratch in a single pass and returns a fresh value, so
// queries never observe each other's state and may be issued in any order,
// including concurrently, against the same snapshot.
//
// The engine is deliberately permissive: it performs no input validation
// beyond what is needed to avoid dividing by zero. Transactions with an
// unrecognized type are silently excluded from the Sales and Refund subsets
// but still contribute their line items and savings where a query reads all
// transactions.
package analytics

import (
	"github.com/dlitvin/warehouse-insights/internal/domain"
)

// Engine answers aggregate queries over one purchase-history dataset. The
// transaction slice is borrowed, never mutated.
type Engine struct {
	transactions []domain.Transaction
}

// New creates an engine over the given transactions. The slice is typically
// the parsed content of a receipt export; the engine keeps a reference, so
// callers must not mutate it while querying.
func New(transactions []domain.Transaction) *Engine {
	return &Engine{transactions: transactions}
}
