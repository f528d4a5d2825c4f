package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/bank-digest/internal"
)

// Commands accepted by --command
const (
	cmdMenu     = "menu"
	cmdHome     = "home"
	cmdCashback = "cashback"
	cmdReport   = "report"
)

type Params struct {
	Command    string `descr:"What to run" alts:"menu,home,cashback,report" strict:"true" default:"menu"`
	File       string `descr:"Operations file, optionally prefixed with a format (e.g. simple-json:ops.json)" positional:"true" optional:"true"`
	Source     string `descr:"Data source type for files without a format prefix" alts:"operations-xlsx,simple-json" default:"operations-xlsx"`
	Settings   string `descr:"User settings file with user_currencies and user_stocks (JSON or YAML)" default:"user_settings.json"`
	EnvFile    string `descr:"File with CURRENCY_API_KEY and STOCK_API_KEY" default:".env"`
	ReportsDir string `descr:"Directory for saved category reports" default:"reports/spending_by_category"`
	LogsDir    string `descr:"Directory for log files" default:"logs"`
	Date       string `descr:"Reference date: 'YYYY-MM-DD HH:MM:SS' for home, 'YYYY-MM-DD' for report (default: now)" optional:"true"`
	Year       int    `descr:"Year for the cashback analysis" optional:"true"`
	Month      int    `descr:"Month for the cashback analysis (1-12)" optional:"true"`
	Category   string `descr:"Category for the spending report" optional:"true"`
	Name       string `descr:"Custom file name for the saved report" optional:"true"`
	Top        int    `descr:"Number of cashback categories to show" default:"3"`
	Output     string `descr:"Output format" alts:"table,json" strict:"true" default:"json"`
}

func main() {
	boa.NewCmdT[Params]("bank-digest").
		WithShort("Summaries of personal bank operations").
		WithLong("Reads a bank operations export and produces a home page digest (cards, top transactions, currency rates, stock prices), the most profitable cashback categories of a month and 90-day spending reports by category.").
		WithRunFunc(func(params *Params) {
			a := newApp(params, os.Stdout, os.Stderr)

			var err error
			switch params.Command {
			case cmdHome:
				err = a.runHomeFromFlags()
			case cmdCashback:
				err = a.runCashbackFromFlags()
			case cmdReport:
				err = a.runReportFromFlags()
			default:
				err = a.runMenu(bufio.NewReader(os.Stdin))
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func (a *app) runHomeFromFlags() error {
	reference := a.now()
	if a.params.Date != "" {
		t, err := internal.ParseReferenceTime(a.params.Date)
		if err != nil {
			return err
		}
		reference = t
	}
	return a.runHome(context.Background(), reference)
}

func (a *app) runCashbackFromFlags() error {
	if a.params.Year == 0 {
		return fmt.Errorf("--year is required for the cashback command")
	}
	if a.params.Month < 1 || a.params.Month > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", a.params.Month)
	}
	return a.runCashback(a.params.Year, time.Month(a.params.Month), a.params.Top)
}

func (a *app) runReportFromFlags() error {
	if a.params.Category == "" {
		return fmt.Errorf("--category is required for the report command")
	}
	asOf := a.now()
	if a.params.Date != "" {
		t, err := internal.ParseReportDate(a.params.Date)
		if err != nil {
			return err
		}
		asOf = t
	}
	return a.runReport(a.params.Category, asOf, a.params.Name)
}
