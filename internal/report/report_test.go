package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dlitvin/warehouse-insights/internal/analytics"
	"github.com/dlitvin/warehouse-insights/internal/domain"
)

func testEngine() *analytics.Engine {
	day := func(d, hour int) domain.LocalTime {
		return domain.LocalTime{Time: time.Date(2024, time.January, d, hour, 0, 0, 0, time.UTC)}
	}
	return analytics.New([]domain.Transaction{
		{
			TransactionType: domain.TypeSales,
			DateTime:        day(2, 10),
			Total:           118.99,
			InstantSavings:  4.50,
			WarehouseName:   "SEATTLE DOWNTOWN",
			WarehouseCity:   "Seattle",
			WarehouseState:  "WA",
			Items: []domain.LineItem{
				{ItemNumber: "1234567", Description: "KS ALMONDS", Amount: 18.99},
				{ItemNumber: "7654321", Description: "SONY TV", Amount: 100},
			},
			Tenders: []domain.TenderUse{{Description: "VISA", Amount: 118.99}},
		},
		{
			TransactionType: domain.TypeRefund,
			DateTime:        day(20, 15),
			Total:           -18.99,
			WarehouseName:   "SEATTLE DOWNTOWN",
			Items: []domain.LineItem{
				{ItemNumber: "1234567", Description: "KS ALMONDS", Amount: -18.99},
			},
			Tenders: []domain.TenderUse{{Description: "VISA", Amount: -18.99}},
		},
	})
}

func TestWriteReportCSV_Sections(t *testing.T) {
	var buf bytes.Buffer
	run := NewRun()

	if err := WriteReportCSV(&buf, run, testEngine(), 10); err != nil {
		t.Fatalf("WriteReportCSV failed: %v", err)
	}

	out := buf.String()
	for _, section := range []string{
		"SUMMARY", "WAREHOUSES", "TOP PRODUCTS", "CATEGORIES",
		"MONTHLY", "SHOPPING HOURS", "PAYMENT METHODS", "REFUNDS", "MEMBERSHIP",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("report missing %q section", section)
		}
	}
	if !strings.Contains(out, run.ID) {
		t.Error("report missing the run ID")
	}
	if !strings.Contains(out, "KS ALMONDS") {
		t.Error("report missing product rows")
	}
}

func TestNewRun_UniqueIDs(t *testing.T) {
	if NewRun().ID == NewRun().ID {
		t.Error("consecutive runs share an ID")
	}
}

func TestWriteOverviewTable(t *testing.T) {
	var buf bytes.Buffer
	WriteOverviewTable(&buf, testEngine().Overview())

	out := buf.String()
	if !strings.Contains(out, "Total Spent") || !strings.Contains(out, "$118.99") {
		t.Errorf("overview table missing spend row:\n%s", out)
	}
	if !strings.Contains(out, "$18.99") {
		t.Errorf("overview table missing refund magnitude:\n%s", out)
	}
}

func TestWriteWarehouseTable(t *testing.T) {
	var buf bytes.Buffer
	WriteWarehouseTable(&buf, testEngine().Warehouses())

	out := buf.String()
	if !strings.Contains(out, "SEATTLE DOWNTOWN") || !strings.Contains(out, "Seattle, WA") {
		t.Errorf("warehouse table missing rows:\n%s", out)
	}
}

func TestChartsRejectThinData(t *testing.T) {
	var buf bytes.Buffer
	if err := SpendChart(nil, &buf); err == nil {
		t.Error("SpendChart accepted an empty series")
	}
	if err := CategoryChart(nil, &buf); err == nil {
		t.Error("CategoryChart accepted empty rows")
	}
	if err := HourChart(nil, &buf); err == nil {
		t.Error("HourChart accepted empty rows")
	}
}

func TestCategoryChartRendersPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := CategoryChart(testEngine().CategorySpend(), &buf); err != nil {
		t.Fatalf("CategoryChart failed: %v", err)
	}
	// PNG magic bytes.
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("chart output is not a PNG")
	}
}
