package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dlitvin/warehouse-insights/internal/analytics"
	"github.com/dlitvin/warehouse-insights/internal/config"
	"github.com/dlitvin/warehouse-insights/internal/loader"
	"github.com/dlitvin/warehouse-insights/internal/logger"
	"github.com/dlitvin/warehouse-insights/internal/report"
)

func main() {
	log := logger.New()
	cfg := config.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "overview":
		runOverview(log, cfg)
	case "warehouses":
		runWarehouses(log, cfg)
	case "products":
		runProducts(log, cfg)
	case "categories":
		runCategories(log, cfg)
	case "timeline":
		runTimeline(log, cfg)
	case "hours":
		runHours(log, cfg)
	case "payments":
		runPayments(log, cfg)
	case "refunds":
		runRefunds(log, cfg)
	case "membership":
		runMembership(log, cfg)
	case "kirkland":
		runKirkland(log, cfg)
	case "report":
		runReport(log, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Warehouse Insights CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  overview    Dataset summary: spend, refunds, savings, basket size")
	fmt.Println("  warehouses  Visits and spend per warehouse")
	fmt.Println("  products    Top products by net spend")
	fmt.Println("  categories  Spend by product category")
	fmt.Println("  timeline    Monthly spend series")
	fmt.Println("  hours       Shopping pattern by hour of day")
	fmt.Println("  payments    Spend by payment method")
	fmt.Println("  refunds     Refund counts and refunded products")
	fmt.Println("  membership  Executive membership break-even projection")
	fmt.Println("  kirkland    Kirkland Signature vs name-brand split")
	fmt.Println("  report      Write the full CSV report and charts")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

// loadEngine parses command flags shared by every query command, loads the
// dataset and wraps it in an engine.
func loadEngine(log zerolog.Logger, cfg *config.Config, command string, extra func(fs *flag.FlagSet)) *analytics.Engine {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	dataFile := fs.String("data", cfg.DataFile, "Path of the JSON receipt export")
	if extra != nil {
		extra(fs)
	}
	fs.Parse(os.Args[2:])

	txs, err := loader.LoadFile(*dataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load transactions")
	}
	log.Info().Int("transactions", len(txs)).Str("file", *dataFile).Msg("dataset loaded")
	return analytics.New(txs)
}

func runOverview(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "overview", nil)
	report.WriteOverviewTable(os.Stdout, eng.Overview())
}

func runWarehouses(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "warehouses", nil)
	report.WriteWarehouseTable(os.Stdout, eng.Warehouses())
}

func runProducts(log zerolog.Logger, cfg *config.Config) {
	var limit int
	eng := loadEngine(log, cfg, "products", func(fs *flag.FlagSet) {
		fs.IntVar(&limit, "limit", cfg.TopLimit, "Number of products to show")
	})
	report.WriteProductTable(os.Stdout, eng.TopProducts(limit))
}

func runCategories(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "categories", nil)
	report.WriteCategoryTable(os.Stdout, eng.CategorySpend())
}

func runTimeline(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "timeline", nil)
	report.WriteTimeSeriesTable(os.Stdout, eng.TimeSeries())
}

func runHours(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "hours", nil)
	report.WriteHourTable(os.Stdout, eng.ShoppingPatterns())
}

func runPayments(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "payments", nil)
	report.WritePaymentTable(os.Stdout, eng.PaymentMethods())
}

func runRefunds(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "refunds", nil)
	report.WriteRefundTable(os.Stdout, eng.RefundAnalysis())
}

func runMembership(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "membership", nil)
	report.WriteMembershipTable(os.Stdout, eng.MembershipProjection())
}

func runKirkland(log zerolog.Logger, cfg *config.Config) {
	eng := loadEngine(log, cfg, "kirkland", nil)
	report.WriteBrandSplitTable(os.Stdout, eng.KirklandSplit())
}

func runReport(log zerolog.Logger, cfg *config.Config) {
	var outDir string
	var charts bool
	var limit int
	eng := loadEngine(log, cfg, "report", func(fs *flag.FlagSet) {
		fs.StringVar(&outDir, "out", cfg.OutputDir, "Directory for report artifacts")
		fs.BoolVar(&charts, "charts", true, "Render PNG charts alongside the CSV")
		fs.IntVar(&limit, "limit", cfg.TopLimit, "Number of products in the report")
	})

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", outDir).Msg("failed to create output directory")
	}

	run := report.NewRun()
	log = log.With().Str("report_id", run.ID).Logger()

	csvPath := filepath.Join(outDir, "report.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create report file")
	}
	if err := report.WriteReportCSV(f, run, eng, limit); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("failed to write report")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to close report file")
	}
	log.Info().Str("path", csvPath).Msg("report written")

	if !charts {
		return
	}
	renderChart(log, filepath.Join(outDir, "monthly_spend.png"), func(w *os.File) error {
		return report.SpendChart(eng.TimeSeries(), w)
	})
	renderChart(log, filepath.Join(outDir, "categories.png"), func(w *os.File) error {
		return report.CategoryChart(eng.CategorySpend(), w)
	})
	renderChart(log, filepath.Join(outDir, "hours.png"), func(w *os.File) error {
		return report.HourChart(eng.ShoppingPatterns(), w)
	})
}

// renderChart writes one chart, logging instead of aborting on failure so a
// thin dataset still produces the rest of the report.
func renderChart(log zerolog.Logger, path string, render func(w *os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("skipping chart")
		return
	}
	defer f.Close()
	if err := render(f); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("skipping chart")
		return
	}
	log.Info().Str("path", path).Msg("chart written")
}
