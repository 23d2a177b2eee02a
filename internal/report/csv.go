package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dlitvin/warehouse-insights/internal/analytics"
)

// WriteReportCSV writes the full analytics report as one CSV document: a
// summary block followed by one section per rollup. topLimit caps the
// product section.
func WriteReportCSV(w io.Writer, run Run, eng *analytics.Engine, topLimit int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	o := eng.Overview()

	header := [][]string{
		{"Warehouse Purchase Report"},
		{"Report ID", run.ID},
		{"Generated", run.StartedAt.Format("2006-01-02 15:04:05")},
		{},
		{"SUMMARY"},
		{"Total Transactions", strconv.Itoa(o.TotalTransactions)},
		{"Sales", strconv.Itoa(o.SalesCount)},
		{"Refunds", strconv.Itoa(o.RefundCount)},
		{"Total Spent", fmt.Sprintf("%.2f", o.TotalSpent)},
		{"Total Refunded", fmt.Sprintf("%.2f", o.TotalRefunded)},
		{"Net Spend", fmt.Sprintf("%.2f", o.NetSpend)},
		{"Instant Savings", fmt.Sprintf("%.2f", o.TotalSavings)},
		{"Average Transaction", fmt.Sprintf("%.2f", o.AvgTransaction)},
		{"Average Basket Size", fmt.Sprintf("%.1f", o.AvgBasketSize)},
		{"Unique Products", strconv.Itoa(o.UniqueProducts)},
		{},
	}
	for _, row := range header {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write summary: %w", err)
		}
	}

	if err := writeWarehouseSection(cw, eng.Warehouses()); err != nil {
		return err
	}
	if err := writeProductSection(cw, eng.TopProducts(topLimit)); err != nil {
		return err
	}
	if err := writeCategorySection(cw, eng.CategorySpend()); err != nil {
		return err
	}
	if err := writeMonthSection(cw, eng.TimeSeries()); err != nil {
		return err
	}
	if err := writeHourSection(cw, eng.ShoppingPatterns()); err != nil {
		return err
	}
	if err := writePaymentSection(cw, eng.PaymentMethods()); err != nil {
		return err
	}
	if err := writeRefundSection(cw, eng.RefundAnalysis()); err != nil {
		return err
	}
	if err := writeMembershipSection(cw, eng.MembershipProjection(), eng.KirklandSplit()); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func writeRows(cw *csv.Writer, section string, rows [][]string) error {
	if err := cw.Write([]string{section}); err != nil {
		return fmt.Errorf("report: write %s: %w", section, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write %s: %w", section, err)
		}
	}
	return cw.Write(nil)
}

func writeWarehouseSection(cw *csv.Writer, metrics []analytics.WarehouseMetrics) error {
	rows := [][]string{{"Warehouse", "City", "State", "Visits", "Total Spent", "Avg Transaction"}}
	for _, m := range metrics {
		rows = append(rows, []string{
			m.Name, m.City, m.State,
			strconv.Itoa(m.Visits),
			fmt.Sprintf("%.2f", m.TotalSpent),
			fmt.Sprintf("%.2f", m.AvgTransaction),
		})
	}
	return writeRows(cw, "WAREHOUSES", rows)
}

func writeProductSection(cw *csv.Writer, products []analytics.ProductMetrics) error {
	rows := [][]string{{"Item Number", "Description", "Purchases", "Total Spent", "Avg Price", "Kirkland"}}
	for _, p := range products {
		rows = append(rows, []string{
			p.ItemNumber, p.Description,
			strconv.Itoa(p.PurchaseCount),
			fmt.Sprintf("%.2f", p.TotalSpent),
			fmt.Sprintf("%.2f", p.AvgPrice),
			strconv.FormatBool(p.IsKirkland),
		})
	}
	return writeRows(cw, "TOP PRODUCTS", rows)
}

func writeCategorySection(cw *csv.Writer, categories []analytics.CategorySpend) error {
	rows := [][]string{{"Category", "Items", "Amount", "Percentage"}}
	for _, c := range categories {
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.2f", c.Amount),
			fmt.Sprintf("%.1f", c.Percentage),
		})
	}
	return writeRows(cw, "CATEGORIES", rows)
}

func writeMonthSection(cw *csv.Writer, series []analytics.MonthBucket) error {
	rows := [][]string{{"Month", "Transactions", "Amount", "Savings"}}
	for _, b := range series {
		rows = append(rows, []string{
			b.Date,
			strconv.Itoa(b.TransactionCount),
			fmt.Sprintf("%.2f", b.Amount),
			fmt.Sprintf("%.2f", b.Savings),
		})
	}
	return writeRows(cw, "MONTHLY", rows)
}

func writeHourSection(cw *csv.Writer, patterns []analytics.HourPattern) error {
	rows := [][]string{{"Hour", "Visits", "Avg Spend"}}
	for _, h := range patterns {
		rows = append(rows, []string{
			strconv.Itoa(h.Hour),
			strconv.Itoa(h.Count),
			fmt.Sprintf("%.2f", h.AvgSpend),
		})
	}
	return writeRows(cw, "SHOPPING HOURS", rows)
}

func writePaymentSection(cw *csv.Writer, methods []analytics.PaymentMethodMetrics) error {
	rows := [][]string{{"Method", "Uses", "Total", "Percentage"}}
	for _, m := range methods {
		rows = append(rows, []string{
			m.Method,
			strconv.Itoa(m.Count),
			fmt.Sprintf("%.2f", m.TotalAmount),
			fmt.Sprintf("%.1f", m.Percentage),
		})
	}
	return writeRows(cw, "PAYMENT METHODS", rows)
}

func writeRefundSection(cw *csv.Writer, a analytics.RefundAnalysis) error {
	rows := [][]string{
		{"Total Refunds", strconv.Itoa(a.TotalRefunds)},
		{"Total Refund Amount", fmt.Sprintf("%.2f", a.TotalRefundAmount)},
		{"Item Number", "Description", "Times", "Amount"},
	}
	for _, r := range a.RefundedProducts {
		rows = append(rows, []string{
			r.ItemNumber, r.Description,
			strconv.Itoa(r.Count),
			fmt.Sprintf("%.2f", r.Amount),
		})
	}
	return writeRows(cw, "REFUNDS", rows)
}

func writeMembershipSection(cw *csv.Writer, p analytics.MembershipProjection, s analytics.BrandSplit) error {
	rows := [][]string{
		{"Annualized Spend (estimate)", fmt.Sprintf("%.2f", p.AnnualizedSpend)},
		{"Estimated Rebate", fmt.Sprintf("%.2f", p.EstimatedRebate)},
		{"Annual Fee Difference", fmt.Sprintf("%.2f", p.AnnualFee)},
		{"Net Benefit", fmt.Sprintf("%.2f", p.NetBenefit)},
		{"Break-Even Spend", fmt.Sprintf("%.2f", p.BreakEvenSpend)},
		{"Recommend Upgrade", strconv.FormatBool(p.RecommendUpgrade)},
		{"Kirkland Spend", fmt.Sprintf("%.2f", s.Kirkland)},
		{"Name-Brand Spend", fmt.Sprintf("%.2f", s.Brand)},
		{"Kirkland Share", fmt.Sprintf("%.1f", s.KirklandPercentage)},
	}
	return writeRows(cw, "MEMBERSHIP", rows)
}
