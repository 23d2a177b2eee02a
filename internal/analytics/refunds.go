package analytics

import (
	"math"
	"sort"
)

// RefundedProduct aggregates refund line items for one product.
type RefundedProduct struct {
	ItemNumber  string  `json:"itemNumber"`
	Description string  `json:"description"`
	Count       int     `json:"count"`
	Amount      float64 `json:"amount"`
}

// RefundAnalysis summarizes the refund subset of the dataset.
type RefundAnalysis struct {
	TotalRefunds      int               `json:"totalRefunds"`
	TotalRefundAmount float64           `json:"totalRefundAmount"`
	RefundedProducts  []RefundedProduct `json:"refundedProducts"`
}

// RefundAnalysis groups refund line items by item number, sorted by refunded
// amount descending.
//
// TotalRefundAmount is the absolute value of the signed sum of refund
// transaction totals, while per-product amounts sum absolute line amounts.
// The two are computed independently and can disagree when a refund total is
// inconsistent with its line items; both views are kept rather than
// reconciled.
func (e *Engine) RefundAnalysis() RefundAnalysis {
	var a RefundAnalysis
	var signedTotal float64
	byItem := make(map[string]*RefundedProduct)
	var order []string

	for i := range e.transactions {
		t := &e.transactions[i]
		if !t.IsRefund() {
			continue
		}
		a.TotalRefunds++
		signedTotal += t.Total
		for _, item := range t.Items {
			r, ok := byItem[item.ItemNumber]
			if !ok {
				r = &RefundedProduct{
					ItemNumber:  item.ItemNumber,
					Description: item.Description,
				}
				byItem[item.ItemNumber] = r
				order = append(order, item.ItemNumber)
			}
			r.Count++
			r.Amount += math.Abs(item.Amount)
		}
	}

	a.TotalRefundAmount = math.Abs(signedTotal)
	a.RefundedProducts = make([]RefundedProduct, 0, len(order))
	for _, key := range order {
		a.RefundedProducts = append(a.RefundedProducts, *byItem[key])
	}
	sort.SliceStable(a.RefundedProducts, func(i, j int) bool {
		return a.RefundedProducts[i].Amount > a.RefundedProducts[j].Amount
	})
	return a
}
