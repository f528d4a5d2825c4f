package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/gigurra/bank-digest/internal/quotes"
	"github.com/rs/zerolog"
)

// RateFetcher provides currency conversion rates
type RateFetcher interface {
	Rates(ctx context.Context, currencies []string) ([]quotes.CurrencyRate, error)
}

// PriceFetcher provides last-close stock prices
type PriceFetcher interface {
	Prices(ctx context.Context, stocks []string) ([]quotes.StockPrice, error)
}

// HomePage is the digest shown on the main page
type HomePage struct {
	Greeting        string                `json:"greeting"`
	Cards           []CardSummary         `json:"cards"`
	TopTransactions []TopTransaction      `json:"top_transactions"`
	CurrencyRates   []quotes.CurrencyRate `json:"currency_rates"`
	StockPrices     []quotes.StockPrice   `json:"stock_prices"`
}

// HomePageInput carries everything BuildHomePage needs
type HomePageInput struct {
	Transactions []Transaction
	Reference    time.Time // end of the month-to-date window
	Now          time.Time // drives the greeting
	Settings     *Settings
	Rates        RateFetcher
	Prices       PriceFetcher
	OnSkip       SkipFunc
	Log          zerolog.Logger
}

// Greeting returns a salutation for the time of day
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		return "Доброе утро"
	case h >= 12 && h < 18:
		return "Добрый день"
	case h >= 18 && h < 23:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}

// BuildHomePage assembles the digest for the month up to in.Reference.
// Quote provider failures abort the whole page.
func BuildHomePage(ctx context.Context, in HomePageInput) (*HomePage, error) {
	if in.Settings == nil {
		return nil, fmt.Errorf("no user settings")
	}

	window := MonthToDate(in.Reference)
	filtered := Filter(in.Transactions, DateRangePredicate(in.Reference), in.OnSkip)
	in.Log.Info().
		Str("start", window.Start.Format(DateLayout)).
		Str("end", window.End.Format(DateLayout)).
		Int("operations", len(filtered)).
		Msg("filtered operations for period")

	greeting := Greeting(in.Now)

	cards := SummarizeCards(filtered, in.Transactions)
	active := 0
	for _, c := range cards {
		if c.Active {
			active++
		}
	}
	in.Log.Info().Int("active", active).Int("inactive", len(cards)-active).Msg("card summary built")

	top := TopTransactions(filtered, DefaultTopTransactions)
	for _, tx := range top {
		in.Log.Info().Str("category", tx.Category).Float64("amount", tx.Amount).Msg("top transaction")
	}

	rates, err := in.Rates.Rates(ctx, in.Settings.Currencies)
	if err != nil {
		return nil, fmt.Errorf("currency rates: %w", err)
	}

	prices, err := in.Prices.Prices(ctx, in.Settings.Stocks)
	if err != nil {
		return nil, fmt.Errorf("stock prices: %w", err)
	}

	return &HomePage{
		Greeting:        greeting,
		Cards:           nonNil(cards),
		TopTransactions: top,
		CurrencyRates:   nonNil(rates),
		StockPrices:     nonNil(prices),
	}, nil
}

// nonNil keeps empty lists as [] rather than null in JSON
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
