package analytics

import (
	"sort"
)

// WarehouseMetrics aggregates sales at one warehouse, keyed by warehouse
// name. City and state are display metadata taken from the first transaction
// seen for the name.
type WarehouseMetrics struct {
	Name           string  `json:"name"`
	Visits         int     `json:"visits"`
	TotalSpent     float64 `json:"totalSpent"`
	AvgTransaction float64 `json:"avgTransaction"`
	City           string  `json:"city"`
	State          string  `json:"state"`
}

// Warehouses groups sales by warehouse name and returns the groups sorted by
// spend, highest first. Refunds do not count as visits.
func (e *Engine) Warehouses() []WarehouseMetrics {
	byName := make(map[string]*WarehouseMetrics)
	var order []string

	for i := range e.transactions {
		t := &e.transactions[i]
		if !t.IsSale() {
			continue
		}
		m, ok := byName[t.WarehouseName]
		if !ok {
			m = &WarehouseMetrics{
				Name:  t.WarehouseName,
				City:  t.WarehouseCity,
				State: t.WarehouseState,
			}
			byName[t.WarehouseName] = m
			order = append(order, t.WarehouseName)
		}
		m.Visits++
		m.TotalSpent += t.Total
	}

	out := make([]WarehouseMetrics, 0, len(order))
	for _, name := range order {
		m := byName[name]
		m.AvgTransaction = m.TotalSpent / float64(m.Visits)
		out = append(out, *m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	return out
}
