package analytics

import (
	"sort"
)

// HourPattern is the visit pattern for one hour of the day (0-23).
type HourPattern struct {
	Hour     int     `json:"hour"`
	Count    int     `json:"count"`
	AvgSpend float64 `json:"avgSpend"`
}

// ShoppingPatterns groups sales by the local hour of the transaction time
// and returns the hours in ascending order. Unlike TimeSeries there is no
// zero fill: hours with no visits are simply absent.
func (e *Engine) ShoppingPatterns() []HourPattern {
	type bucket struct {
		count int
		spend float64
	}
	byHour := make(map[int]*bucket)

	for i := range e.transactions {
		t := &e.transactions[i]
		if !t.IsSale() {
			continue
		}
		hour := t.DateTime.Hour()
		b, ok := byHour[hour]
		if !ok {
			b = &bucket{}
			byHour[hour] = b
		}
		b.count++
		b.spend += t.Total
	}

	hours := make([]int, 0, len(byHour))
	for hour := range byHour {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	out := make([]HourPattern, 0, len(hours))
	for _, hour := range hours {
		b := byHour[hour]
		out = append(out, HourPattern{
			Hour:     hour,
			Count:    b.count,
			AvgSpend: b.spend / float64(b.count),
		})
	}
	return out
}
