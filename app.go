package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gigurra/bank-digest/internal"
	"github.com/gigurra/bank-digest/internal/logger"
	"github.com/gigurra/bank-digest/internal/quotes"
	"github.com/rs/zerolog"
)

// Log components, one file each under the logs directory
const (
	logViews    = "views"
	logServices = "services"
	logReports  = "reports"
)

type app struct {
	params  *Params
	out     io.Writer
	errOut  io.Writer
	console zerolog.Logger
	now     func() time.Time

	// overridable in tests
	rates  func(apiKey string, log zerolog.Logger) internal.RateFetcher
	prices func(apiKey string, log zerolog.Logger) internal.PriceFetcher
}

func newApp(params *Params, out, errOut io.Writer) *app {
	return &app{
		params:  params,
		out:     out,
		errOut:  errOut,
		console: logger.New(),
		now:     time.Now,
		rates: func(apiKey string, log zerolog.Logger) internal.RateFetcher {
			return quotes.NewCurrencyClient(apiKey, log)
		},
		prices: func(apiKey string, log zerolog.Logger) internal.PriceFetcher {
			return quotes.NewStockClient(apiKey, log)
		},
	}
}

func (a *app) dataFile() string {
	if a.params.File == "" {
		return internal.DefaultDataFile
	}
	return a.params.File
}

func (a *app) openLog(component string) (zerolog.Logger, func()) {
	log, closer, err := logger.OpenFile(a.params.LogsDir, component)
	if err != nil {
		a.console.Warn().Err(err).Str("component", component).Msg("file logging disabled")
		return zerolog.Nop(), func() {}
	}
	return log, func() { closer.Close() }
}

func (a *app) loadTransactions(log zerolog.Logger) ([]internal.Transaction, error) {
	txs, err := internal.LoadTransactions(a.dataFile(), a.params.Source, skipLogger(log))
	if err != nil {
		log.Error().Err(err).Str("file", a.dataFile()).Msg("loading operations failed")
		return nil, err
	}
	log.Info().Str("file", a.dataFile()).Int("operations", len(txs)).Msg("operations loaded")
	return txs, nil
}

func skipLogger(log zerolog.Logger) internal.SkipFunc {
	return func(tx internal.Transaction, err error) {
		log.Warn().Err(err).Str("raw_date", tx.RawDate).Float64("amount", tx.Amount).Msg("skipping operation")
	}
}

func (a *app) currency() internal.Currency {
	return internal.GetCurrency(internal.DefaultCurrency)
}

// runHome prints the home page digest for the month up to reference
func (a *app) runHome(ctx context.Context, reference time.Time) error {
	log, done := a.openLog(logViews)
	defer done()

	txs, err := a.loadTransactions(log)
	if err != nil {
		return err
	}

	settings, err := internal.LoadSettings(a.params.Settings)
	if err != nil {
		log.Error().Err(err).Msg("loading settings failed")
		return err
	}

	keys, err := internal.LoadAPIKeys(a.params.EnvFile)
	if err != nil {
		log.Error().Err(err).Msg("loading API keys failed")
		return err
	}

	page, err := internal.BuildHomePage(ctx, internal.HomePageInput{
		Transactions: txs,
		Reference:    reference,
		Now:          a.now(),
		Settings:     settings,
		Rates:        a.rates(keys.Currency, log),
		Prices:       a.prices(keys.Stock, log),
		OnSkip:       skipLogger(log),
		Log:          log,
	})
	if err != nil {
		log.Error().Err(err).Msg("building home page failed")
		return err
	}

	if a.params.Output == internal.OutputTable {
		internal.PrintHomePageTable(a.out, page, a.currency())
		return nil
	}
	return internal.PrintJSON(a.out, page)
}

// runCashback prints the top cashback categories of a month
func (a *app) runCashback(year int, month time.Month, top int) error {
	log, done := a.openLog(logServices)
	defer done()

	txs, err := a.loadTransactions(log)
	if err != nil {
		return err
	}

	ranking := internal.AnalyzeCashback(txs, year, month, top, skipLogger(log))
	for _, c := range ranking {
		log.Info().Str("category", c.Category).Float64("cashback", c.Cashback).Msg("top cashback category")
	}

	if a.params.Output == internal.OutputTable {
		internal.PrintCashbackTable(a.out, ranking, year, month, a.currency())
		return nil
	}
	return internal.PrintJSON(a.out, ranking)
}

// runReport builds, saves and prints the category spending report
func (a *app) runReport(category string, asOf time.Time, name string) error {
	log, done := a.openLog(logReports)
	defer done()

	txs, err := a.loadTransactions(log)
	if err != nil {
		return err
	}
	return a.report(log, txs, category, asOf, name)
}

// report builds, saves and prints the category report over already loaded operations
func (a *app) report(log zerolog.Logger, txs []internal.Transaction, category string, asOf time.Time, name string) error {
	report := internal.SpendingByCategory(txs, category, asOf, skipLogger(log))
	if report.General.TransactionsCount == 0 {
		log.Info().
			Str("category", category).
			Str("start", report.General.StartDate).
			Str("end", report.General.EndDate).
			Msg("no operations for category in period")
	}

	path, err := internal.SaveCategoryReport(internal.FileReportSink{Dir: a.params.ReportsDir}, report, name)
	if err != nil {
		log.Error().Err(err).Msg("saving report failed")
		return err
	}
	log.Info().Str("path", path).Msg("report saved")

	if a.params.Output == internal.OutputTable {
		internal.PrintCategoryReportTable(a.out, report, a.currency())
	} else if err := internal.PrintJSON(a.out, report); err != nil {
		return err
	}
	fmt.Fprintf(a.errOut, "Report saved to %s\n", path)
	return nil
}
