package analytics

import (
	"testing"

	"github.com/dlitvin/warehouse-insights/internal/domain"
)

func TestShoppingPatterns_GroupsByLocalHour(t *testing.T) {
	eng := New([]domain.Transaction{
		sale(at(1, 9), 100, 0),
		sale(at(2, 9), 50, 0),
		sale(at(3, 14), 30, 0),
		refund(at(4, 9), -10, item("B", "COCA COLA", -10)),
	})

	got := eng.ShoppingPatterns()
	if len(got) != 2 {
		t.Fatalf("got %d hour buckets, want 2 (gaps are absent, not zero-filled)", len(got))
	}

	nine := got[0]
	if nine.Hour != 9 {
		t.Fatalf("first bucket hour = %d, want 9 (ascending order)", nine.Hour)
	}
	if nine.Count != 2 {
		t.Errorf("hour 9 count = %d, want 2 (refunds excluded)", nine.Count)
	}
	if !almostEqual(nine.AvgSpend, 75, 1e-9) {
		t.Errorf("hour 9 AvgSpend = %v, want 75", nine.AvgSpend)
	}

	if got[1].Hour != 14 || got[1].Count != 1 {
		t.Errorf("second bucket = %+v, want hour 14 with 1 visit", got[1])
	}
}

func TestShoppingPatterns_EmptyWithoutSales(t *testing.T) {
	if got := New(nil).ShoppingPatterns(); len(got) != 0 {
		t.Errorf("got %d buckets, want 0", len(got))
	}
}
