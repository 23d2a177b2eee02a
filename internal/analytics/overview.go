package analytics

import (
	"math"

	"github.com/dlitvin/warehouse-insights/internal/domain"
)

// Overview summarizes the whole dataset: spend, refunds, savings and basket
// shape.
type Overview struct {
	TotalTransactions int     `json:"totalTransactions"`
	SalesCount        int     `json:"salesCount"`
	RefundCount       int     `json:"refundCount"`
	TotalSpent        float64 `json:"totalSpent"`
	TotalRefunded     float64 `json:"totalRefunded"`
	NetSpend          float64 `json:"netSpend"`
	TotalSavings      float64 `json:"totalSavings"`
	AvgTransaction    float64 `json:"avgTransaction"`
	AvgBasketSize     float64 `json:"avgBasketSize"`
	TotalItems        int     `json:"totalItems"`
	UniqueProducts    int     `json:"uniqueProducts"`
}

// Overview computes the summary metrics in one pass.
//
// TotalRefunded is reported as a positive magnitude even though refund
// totals are stored negative. TotalSavings and the item counts cover all
// transactions, refunds included; AvgBasketSize nevertheless divides by the
// sales count only. That asymmetry is the long-standing definition of the
// metric and is kept as-is.
func (e *Engine) Overview() Overview {
	var o Overview
	var refundTotal float64
	seen := make(map[string]struct{})

	o.TotalTransactions = len(e.transactions)
	for i := range e.transactions {
		t := &e.transactions[i]
		switch t.TransactionType {
		case domain.TypeSales:
			o.SalesCount++
			o.TotalSpent += t.Total
		case domain.TypeRefund:
			o.RefundCount++
			refundTotal += t.Total
		}
		o.TotalSavings += t.InstantSavings
		for _, item := range t.Items {
			o.TotalItems++
			seen[item.ItemNumber] = struct{}{}
		}
	}

	o.UniqueProducts = len(seen)
	o.TotalRefunded = math.Abs(refundTotal)
	o.NetSpend = o.TotalSpent - o.TotalRefunded
	if o.SalesCount > 0 {
		o.AvgTransaction = o.TotalSpent / float64(o.SalesCount)
		o.AvgBasketSize = float64(o.TotalItems) / float64(o.SalesCount)
	}
	return o
}
