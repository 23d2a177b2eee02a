package analytics

import (
	"sort"
)

// DefaultTopProductsLimit is used when TopProducts is called with a
// non-positive limit.
const DefaultTopProductsLimit = 20

// ProductMetrics aggregates line items for one product, keyed by item
// number. Description is the receipt text from the first occurrence;
// IsKirkland is classified once from that description and not re-evaluated.
type ProductMetrics struct {
	ItemNumber    string  `json:"itemNumber"`
	Description   string  `json:"description"`
	TotalSpent    float64 `json:"totalSpent"`
	PurchaseCount int     `json:"purchaseCount"`
	AvgPrice      float64 `json:"avgPrice"`
	IsKirkland    bool    `json:"isKirkland"`
}

// TopProducts groups line items across all transactions (refunds included)
// by item number and returns the top products by net spend. Refund line
// amounts are negative and subtract from TotalSpent, but every occurrence
// counts toward PurchaseCount regardless of sign.
func (e *Engine) TopProducts(limit int) []ProductMetrics {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	byItem := make(map[string]*ProductMetrics)
	var order []string

	for i := range e.transactions {
		for _, item := range e.transactions[i].Items {
			p, ok := byItem[item.ItemNumber]
			if !ok {
				p = &ProductMetrics{
					ItemNumber:  item.ItemNumber,
					Description: item.Description,
					IsKirkland:  IsKirklandSignature(item.Description),
				}
				byItem[item.ItemNumber] = p
				order = append(order, item.ItemNumber)
			}
			p.TotalSpent += item.Amount
			p.PurchaseCount++
		}
	}

	out := make([]ProductMetrics, 0, len(order))
	for _, key := range order {
		p := byItem[key]
		p.AvgPrice = p.TotalSpent / float64(p.PurchaseCount)
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
