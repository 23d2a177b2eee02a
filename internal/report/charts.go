package report

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/dlitvin/warehouse-insights/internal/analytics"
)

// SpendChart renders the monthly spend series as a PNG line chart. It needs
// at least two months of data to draw a line.
func SpendChart(series []analytics.MonthBucket, w io.Writer) error {
	if len(series) < 2 {
		return fmt.Errorf("report: need at least 2 months to chart, have %d", len(series))
	}

	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, b := range series {
		month, err := time.Parse("2006-01", b.Date)
		if err != nil {
			return fmt.Errorf("report: bad month key %q: %w", b.Date, err)
		}
		xs = append(xs, month)
		ys = append(ys, b.Amount)
	}

	graph := chart.Chart{
		Title: "Monthly Spend",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1000,
		Height: 500,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("$%.0f", vf)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Spend",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// CategoryChart renders per-category spend as a PNG bar chart.
func CategoryChart(rows []analytics.CategorySpend, w io.Writer) error {
	if len(rows) == 0 {
		return fmt.Errorf("report: no category data to chart")
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, c := range rows {
		bars = append(bars, chart.Value{
			Label: c.Category,
			Value: c.Amount,
		})
	}

	barChart := chart.BarChart{
		Title: "Spend by Category",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 500,
		Bars:   bars,
	}
	barChart.YAxis.ValueFormatter = func(v interface{}) string {
		if vf, isFloat := v.(float64); isFloat {
			return fmt.Sprintf("$%.0f", vf)
		}
		return ""
	}
	return barChart.Render(chart.PNG, w)
}

// HourChart renders hour-of-day visit counts as a PNG bar chart.
func HourChart(rows []analytics.HourPattern, w io.Writer) error {
	if len(rows) == 0 {
		return fmt.Errorf("report: no shopping-pattern data to chart")
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, h := range rows {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%02d:00", h.Hour),
			Value: float64(h.Count),
		})
	}

	barChart := chart.BarChart{
		Title: "Visits by Hour of Day",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  800,
		Height: 400,
		Bars:   bars,
	}
	return barChart.Render(chart.PNG, w)
}
