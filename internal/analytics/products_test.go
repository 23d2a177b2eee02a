package analytics

import (
	"fmt"
	"testing"

	"github.com/dlitvin/warehouse-insights/internal/domain"
)

func TestTopProducts_GroupsByItemNumber(t *testing.T) {
	eng := New([]domain.Transaction{
		sale(at(1, 10), 100, 0, item("A", "KS ALMONDS", 100)),
		sale(at(2, 10), 50, 0, item("A", "KS ALMONDS", 50)),
		refund(at(3, 10), -50, item("A", "KS ALMONDS", -50)),
	})

	got := eng.TopProducts(0)
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	p := got[0]
	if p.PurchaseCount != 3 {
		t.Errorf("PurchaseCount = %d, want 3 (refund occurrences still count)", p.PurchaseCount)
	}
	if p.TotalSpent != 100 {
		t.Errorf("TotalSpent = %v, want 100 (refund subtracts)", p.TotalSpent)
	}
	if !almostEqual(p.AvgPrice, 100.0/3, 1e-9) {
		t.Errorf("AvgPrice = %v, want %v", p.AvgPrice, 100.0/3)
	}
	if !p.IsKirkland {
		t.Error("IsKirkland = false, want true")
	}
}

// The description and brand flag come from the first occurrence of an item
// number and are never re-evaluated.
func TestTopProducts_FirstSeenDescriptionWins(t *testing.T) {
	eng := New([]domain.Transaction{
		sale(at(1, 10), 40, 0, item("A", "KS ORGANIC PEANUT BUTTER", 40)),
		sale(at(2, 10), 40, 0, item("A", "ORG PNT BTR", 40)),
	})

	got := eng.TopProducts(0)
	if len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
	if got[0].Description != "KS ORGANIC PEANUT BUTTER" {
		t.Errorf("Description = %q, want first-seen description", got[0].Description)
	}
	if !got[0].IsKirkland {
		t.Error("IsKirkland = false, want true from first-seen description")
	}
}

func TestTopProducts_LimitAndDefault(t *testing.T) {
	var items []domain.LineItem
	for i := 0; i < 25; i++ {
		items = append(items, item(fmt.Sprintf("item-%02d", i), "COCA COLA", float64(i+1)))
	}
	eng := New([]domain.Transaction{sale(at(1, 10), 325, 0, items...)})

	if got := eng.TopProducts(0); len(got) != DefaultTopProductsLimit {
		t.Errorf("limit 0: got %d products, want default %d", len(got), DefaultTopProductsLimit)
	}
	got := eng.TopProducts(5)
	if len(got) != 5 {
		t.Fatalf("limit 5: got %d products, want 5", len(got))
	}
	// Sorted by spend descending, so the top product is the priciest.
	if got[0].ItemNumber != "item-24" {
		t.Errorf("top product = %s, want item-24", got[0].ItemNumber)
	}
	for i := 1; i < len(got); i++ {
		if got[i].TotalSpent > got[i-1].TotalSpent {
			t.Errorf("products out of order at %d: %v > %v", i, got[i].TotalSpent, got[i-1].TotalSpent)
		}
	}
}
