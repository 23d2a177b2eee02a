package analytics

import (
	"testing"

	"github.com/dlitvin/warehouse-insights/internal/domain"
)

func TestOverview_TwoSalesScenario(t *testing.T) {
	eng := New([]domain.Transaction{
		sale(at(1, 10), 100, 5, item("A", "KS ALMONDS", 100)),
		sale(at(1, 11), 50, 0, item("B", "COCA COLA", 50)),
	})

	o := eng.Overview()
	if o.TotalSpent != 150 {
		t.Errorf("TotalSpent = %v, want 150", o.TotalSpent)
	}
	if o.SalesCount != 2 {
		t.Errorf("SalesCount = %d, want 2", o.SalesCount)
	}
	if o.AvgTransaction != 75 {
		t.Errorf("AvgTransaction = %v, want 75", o.AvgTransaction)
	}
	if o.TotalSavings != 5 {
		t.Errorf("TotalSavings = %v, want 5", o.TotalSavings)
	}
	if o.UniqueProducts != 2 {
		t.Errorf("UniqueProducts = %d, want 2", o.UniqueProducts)
	}
	if o.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", o.TotalItems)
	}
	if o.AvgBasketSize != 1 {
		t.Errorf("AvgBasketSize = %v, want 1", o.AvgBasketSize)
	}
	if o.NetSpend != 150 {
		t.Errorf("NetSpend = %v, want 150", o.NetSpend)
	}
}

func TestOverview_SingleRefund(t *testing.T) {
	eng := New([]domain.Transaction{
		refund(at(3, 12), -20, item("B", "COCA COLA", -20)),
	})

	o := eng.Overview()
	if o.TotalRefunded != 20 {
		t.Errorf("TotalRefunded = %v, want positive magnitude 20", o.TotalRefunded)
	}
	if o.NetSpend != -20 {
		t.Errorf("NetSpend = %v, want -20", o.NetSpend)
	}
	if o.SalesCount != 0 || o.RefundCount != 1 {
		t.Errorf("counts = %d sales / %d refunds, want 0 / 1", o.SalesCount, o.RefundCount)
	}
	// Division guards: no sales means both averages stay 0.
	if o.AvgTransaction != 0 || o.AvgBasketSize != 0 {
		t.Errorf("averages = %v / %v, want 0 / 0 with no sales", o.AvgTransaction, o.AvgBasketSize)
	}
}

func TestOverview_NetSpendIdentity(t *testing.T) {
	eng := New(sampleDataset())
	o := eng.Overview()
	if o.NetSpend != o.TotalSpent-o.TotalRefunded {
		t.Errorf("NetSpend = %v, want TotalSpent-TotalRefunded = %v", o.NetSpend, o.TotalSpent-o.TotalRefunded)
	}
	if o.TotalRefunded < 0 {
		t.Errorf("TotalRefunded = %v, want >= 0", o.TotalRefunded)
	}
}

// Unrecognized transaction types fall outside both the sales and refund
// subsets, but their savings and line items still count in the
// all-transaction aggregates.
func TestOverview_UnrecognizedTypeExcludedFromSubsets(t *testing.T) {
	odd := domain.Transaction{
		TransactionType: "Exchange",
		DateTime:        at(4, 9),
		Total:           40,
		InstantSavings:  3,
		Items:           []domain.LineItem{item("X", "MYSTERY BOX", 40)},
	}
	eng := New([]domain.Transaction{
		sale(at(1, 10), 100, 5, item("A", "KS ALMONDS", 100)),
		odd,
	})

	o := eng.Overview()
	if o.SalesCount != 1 || o.RefundCount != 0 {
		t.Errorf("counts = %d sales / %d refunds, want 1 / 0", o.SalesCount, o.RefundCount)
	}
	if o.TotalSpent != 100 {
		t.Errorf("TotalSpent = %v, want 100 (unrecognized type must not contribute)", o.TotalSpent)
	}
	if o.TotalSavings != 8 {
		t.Errorf("TotalSavings = %v, want 8 (all transactions contribute savings)", o.TotalSavings)
	}
	if o.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2 (all transactions contribute items)", o.TotalItems)
	}
	if o.TotalTransactions != 2 {
		t.Errorf("TotalTransactions = %d, want 2", o.TotalTransactions)
	}
}

// AvgBasketSize divides the all-transaction item count by the sales-only
// transaction count. Refund line items therefore inflate the metric; that is
// the established definition, not a bug to fix.
func TestOverview_AvgBasketSizeCountsRefundItems(t *testing.T) {
	eng := New([]domain.Transaction{
		sale(at(1, 10), 30, 0, item("A", "KS ALMONDS", 30)),
		refund(at(2, 10), -25, item("B", "COCA COLA", -15), item("C", "ORGANIC BANANA", -10)),
	})

	o := eng.Overview()
	if o.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", o.TotalItems)
	}
	if o.AvgBasketSize != 3 {
		t.Errorf("AvgBasketSize = %v, want 3 (3 items / 1 sale)", o.AvgBasketSize)
	}
}

func TestOverview_EmptyDataset(t *testing.T) {
	o := New(nil).Overview()
	if o.TotalTransactions != 0 || o.TotalSpent != 0 || o.AvgTransaction != 0 || o.AvgBasketSize != 0 {
		t.Errorf("empty dataset overview = %+v, want all zeros", o)
	}
}
