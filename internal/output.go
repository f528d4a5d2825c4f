package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Output formats accepted by the Print helpers
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// PrintJSON writes v as indented JSON, keeping non-ASCII text readable
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// newTable prints heading as a plain line (if any) and returns a table mirrored to w
func newTable(w io.Writer, heading string) table.Writer {
	if heading != "" {
		fmt.Fprintf(w, "\n%s\n", heading)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// PrintHomePageTable renders the home page digest as tables
func PrintHomePageTable(w io.Writer, page *HomePage, cur Currency) {
	fmt.Fprintf(w, "%s!\n\n", page.Greeting)

	cards := newTable(w, "Cards")
	cards.AppendHeader(table.Row{"Card", "Status", "Spent", "Cashback"})
	for _, c := range page.Cards {
		status := text.FgGreen.Sprint("ACTIVE")
		if !c.Active {
			status = text.FgHiBlack.Sprint("INACTIVE")
		}
		cards.AppendRow(table.Row{"*" + c.LastDigits, status, cur.Format(c.TotalSpent), cur.Format(c.Cashback)})
	}
	cards.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	cards.Render()

	top := newTable(w, "Top transactions")
	top.AppendHeader(table.Row{"Date", "Amount", "Category", "Description"})
	for _, tx := range page.TopTransactions {
		top.AppendRow(table.Row{tx.Date, cur.Format(tx.Amount), tx.Category, tx.Description})
	}
	top.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	top.Render()

	rates := newTable(w, "Currency rates")
	rates.AppendHeader(table.Row{"Currency", "Rate"})
	for _, r := range page.CurrencyRates {
		rates.AppendRow(table.Row{r.Currency, cur.Format(r.Rate)})
	}
	rates.Render()

	stocks := newTable(w, "Stock prices")
	stocks.AppendHeader(table.Row{"Stock", "Price"})
	for _, s := range page.StockPrices {
		stocks.AppendRow(table.Row{s.Stock, GetCurrency("USD").Format(s.Price)})
	}
	stocks.Render()
}

// PrintCashbackTable renders the top cashback categories for a month
func PrintCashbackTable(w io.Writer, ranking CashbackRanking, year int, month time.Month, cur Currency) {
	if len(ranking) == 0 {
		fmt.Fprintf(w, "No cashback earned in %d-%02d.\n", year, int(month))
		return
	}

	t := newTable(w, fmt.Sprintf("Top cashback categories %d-%02d", year, int(month)))
	t.AppendHeader(table.Row{"#", "Category", "Cashback"})
	for i, c := range ranking {
		t.AppendRow(table.Row{i + 1, c.Category, cur.Format(c.Cashback)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	t.Render()
}

// PrintCategoryReportTable renders a category report and its line items
func PrintCategoryReportTable(w io.Writer, report CategoryReport, cur Currency) {
	g := report.General
	fmt.Fprintf(w, "Category: %s\n", g.Category)
	fmt.Fprintf(w, "Period:   %s - %s\n", g.StartDate, g.EndDate)
	fmt.Fprintf(w, "Spent:    %s\n", cur.Format(g.TotalSpent))
	fmt.Fprintf(w, "Count:    %d\n", g.TransactionsCount)

	if len(report.Detailed) == 0 {
		fmt.Fprintln(w, "\nNo operations found.")
		return
	}

	t := newTable(w, "")
	t.AppendHeader(table.Row{"Date", "Amount", "Category"})
	for _, item := range report.Detailed {
		t.AppendRow(table.Row{item.Date, cur.Format(item.Amount), item.Category})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(cur.Format(g.TotalSpent)), ""})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}
