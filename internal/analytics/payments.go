package analytics

import (
	"sort"
)

// PaymentMethodMetrics aggregates tender uses for one payment method. The
// method string is the tender description verbatim; "VISA" and "Visa" are
// distinct keys.
type PaymentMethodMetrics struct {
	Method      string  `json:"method"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
	Percentage  float64 `json:"percentage"`
}

// PaymentMethods flattens all transactions to their tender entries and
// groups them by tender description, sorted by amount descending.
//
// Percentage is relative to the grand total of every tender amount, not to
// transaction totals; a transaction split across several tenders contributes
// each tender separately, so this grand total can diverge from the
// overview's TotalSpent. With no tenders at all the percentages are not
// finite.
func (e *Engine) PaymentMethods() []PaymentMethodMetrics {
	byMethod := make(map[string]*PaymentMethodMetrics)
	var order []string
	var grandTotal float64

	for i := range e.transactions {
		for _, tender := range e.transactions[i].Tenders {
			grandTotal += tender.Amount
			m, ok := byMethod[tender.Description]
			if !ok {
				m = &PaymentMethodMetrics{Method: tender.Description}
				byMethod[tender.Description] = m
				order = append(order, tender.Description)
			}
			m.Count++
			m.TotalAmount += tender.Amount
		}
	}

	out := make([]PaymentMethodMetrics, 0, len(order))
	for _, method := range order {
		m := byMethod[method]
		m.Percentage = m.TotalAmount / grandTotal * 100
		out = append(out, *m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmount > out[j].TotalAmount })
	return out
}
