package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/dlitvin/warehouse-insights/internal/analytics"
)

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// WriteOverviewTable renders the overview metrics as a two-column table.
func WriteOverviewTable(w io.Writer, o analytics.Overview) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Transactions", fmt.Sprintf("%d", o.TotalTransactions)})
	table.Append([]string{"Sales", fmt.Sprintf("%d", o.SalesCount)})
	table.Append([]string{"Refunds", fmt.Sprintf("%d", o.RefundCount)})
	table.Append([]string{"Total Spent", money(o.TotalSpent)})
	table.Append([]string{"Total Refunded", money(o.TotalRefunded)})
	table.Append([]string{"Net Spend", money(o.NetSpend)})
	table.Append([]string{"Instant Savings", money(o.TotalSavings)})
	table.Append([]string{"Avg Transaction", money(o.AvgTransaction)})
	table.Append([]string{"Avg Basket Size", fmt.Sprintf("%.1f items", o.AvgBasketSize)})
	table.Append([]string{"Total Items", fmt.Sprintf("%d", o.TotalItems)})
	table.Append([]string{"Unique Products", fmt.Sprintf("%d", o.UniqueProducts)})
	table.Render()
}

// WriteWarehouseTable renders the per-warehouse rollup.
func WriteWarehouseTable(w io.Writer, rows []analytics.WarehouseMetrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Warehouse", "Location", "Visits", "Total Spent", "Avg Transaction"})
	for _, m := range rows {
		table.Append([]string{
			m.Name,
			fmt.Sprintf("%s, %s", m.City, m.State),
			fmt.Sprintf("%d", m.Visits),
			money(m.TotalSpent),
			money(m.AvgTransaction),
		})
	}
	table.Render()
}

// WriteProductTable renders the product ranking.
func WriteProductTable(w io.Writer, rows []analytics.ProductMetrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item #", "Description", "Purchases", "Total Spent", "Avg Price", "Kirkland"})
	for _, p := range rows {
		kirkland := ""
		if p.IsKirkland {
			kirkland = "yes"
		}
		table.Append([]string{
			p.ItemNumber,
			p.Description,
			fmt.Sprintf("%d", p.PurchaseCount),
			money(p.TotalSpent),
			money(p.AvgPrice),
			kirkland,
		})
	}
	table.Render()
}

// WriteCategoryTable renders per-category spend.
func WriteCategoryTable(w io.Writer, rows []analytics.CategorySpend) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Items", "Amount", "Share"})
	for _, c := range rows {
		table.Append([]string{
			c.Category,
			fmt.Sprintf("%d", c.Count),
			money(c.Amount),
			percent(c.Percentage),
		})
	}
	table.Render()
}

// WriteTimeSeriesTable renders the monthly series.
func WriteTimeSeriesTable(w io.Writer, rows []analytics.MonthBucket) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Month", "Transactions", "Amount", "Savings"})
	for _, b := range rows {
		table.Append([]string{
			b.Date,
			fmt.Sprintf("%d", b.TransactionCount),
			money(b.Amount),
			money(b.Savings),
		})
	}
	table.Render()
}

// WriteHourTable renders the hour-of-day shopping pattern.
func WriteHourTable(w io.Writer, rows []analytics.HourPattern) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Hour", "Visits", "Avg Spend"})
	for _, h := range rows {
		table.Append([]string{
			fmt.Sprintf("%02d:00", h.Hour),
			fmt.Sprintf("%d", h.Count),
			money(h.AvgSpend),
		})
	}
	table.Render()
}

// WritePaymentTable renders the payment-method rollup.
func WritePaymentTable(w io.Writer, rows []analytics.PaymentMethodMetrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Uses", "Total", "Share"})
	for _, m := range rows {
		table.Append([]string{
			m.Method,
			fmt.Sprintf("%d", m.Count),
			money(m.TotalAmount),
			percent(m.Percentage),
		})
	}
	table.Render()
}

// WriteRefundTable renders the refund analysis, summary first.
func WriteRefundTable(w io.Writer, a analytics.RefundAnalysis) {
	fmt.Fprintf(w, "Refunds: %d, total %s\n", a.TotalRefunds, money(a.TotalRefundAmount))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item #", "Description", "Times", "Amount"})
	for _, r := range a.RefundedProducts {
		table.Append([]string{
			r.ItemNumber,
			r.Description,
			fmt.Sprintf("%d", r.Count),
			money(r.Amount),
		})
	}
	table.Render()
}

// WriteMembershipTable renders the Executive membership projection. The
// figures are annualized estimates, and the table says so.
func WriteMembershipTable(w io.Writer, p analytics.MembershipProjection) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Estimate"})
	table.Append([]string{"Annualized Spend", money(p.AnnualizedSpend)})
	table.Append([]string{"Estimated 2% Rebate", money(p.EstimatedRebate)})
	table.Append([]string{"Executive Fee Difference", money(p.AnnualFee)})
	table.Append([]string{"Net Benefit", money(p.NetBenefit)})
	table.Append([]string{"Break-Even Spend", money(p.BreakEvenSpend)})
	recommend := "no"
	if p.RecommendUpgrade {
		recommend = "yes"
	}
	table.Append([]string{"Upgrade Worth It", recommend})
	table.Render()
	fmt.Fprintln(w, "Projection based on observed spend rate; not a guarantee.")
}

// WriteBrandSplitTable renders the Kirkland-versus-brand split.
func WriteBrandSplitTable(w io.Writer, s analytics.BrandSplit) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bucket", "Amount", "Share"})
	table.Append([]string{"Kirkland Signature", money(s.Kirkland), percent(s.KirklandPercentage)})
	table.Append([]string{"Name Brands", money(s.Brand), percent(100 - s.KirklandPercentage)})
	table.Render()
}
