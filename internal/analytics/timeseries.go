package analytics

import (
	"time"
)

// MonthBucket is one calendar month of sales activity. Date is the bucket
// key in "YYYY-MM" form.
type MonthBucket struct {
	Date             string  `json:"date"`
	Amount           float64 `json:"amount"`
	TransactionCount int     `json:"transactionCount"`
	Savings          float64 `json:"savings"`
}

const monthKeyLayout = "2006-01"

// TimeSeries buckets sales by calendar month over the inclusive range from
// the earliest to the latest sale. Months with no transactions are
// pre-seeded with zeros so gaps show up as zero rows rather than missing
// keys. The result is ordered ascending by month. An empty sales subset
// yields an empty series.
func (e *Engine) TimeSeries() []MonthBucket {
	var minT, maxT time.Time
	found := false
	for i := range e.transactions {
		t := &e.transactions[i]
		if !t.IsSale() {
			continue
		}
		when := t.DateTime.Time
		if !found || when.Before(minT) {
			minT = when
		}
		if !found || when.After(maxT) {
			maxT = when
		}
		found = true
	}
	if !found {
		return nil
	}

	start := time.Date(minT.Year(), minT.Month(), 1, 0, 0, 0, 0, minT.Location())
	end := time.Date(maxT.Year(), maxT.Month(), 1, 0, 0, 0, 0, maxT.Location())

	byMonth := make(map[string]*MonthBucket)
	var order []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		key := cur.Format(monthKeyLayout)
		byMonth[key] = &MonthBucket{Date: key}
		order = append(order, key)
	}

	for i := range e.transactions {
		t := &e.transactions[i]
		if !t.IsSale() {
			continue
		}
		if b, ok := byMonth[t.DateTime.Format(monthKeyLayout)]; ok {
			b.Amount += t.Total
			b.TransactionCount++
			b.Savings += t.InstantSavings
		}
	}

	// order is already chronological, which for "YYYY-MM" keys is also
	// lexicographic.
	out := make([]MonthBucket, 0, len(order))
	for _, key := range order {
		out = append(out, *byMonth[key])
	}
	return out
}
