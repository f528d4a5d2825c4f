package internal

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gigurra/bank-digest/internal/quotes"
	"github.com/rs/zerolog"
)

type fakeRates struct {
	rates []quotes.CurrencyRate
	err   error
	asked []string
}

func (f *fakeRates) Rates(_ context.Context, currencies []string) ([]quotes.CurrencyRate, error) {
	f.asked = currencies
	return f.rates, f.err
}

type fakePrices struct {
	prices []quotes.StockPrice
	err    error
	asked  []string
}

func (f *fakePrices) Prices(_ context.Context, stocks []string) ([]quotes.StockPrice, error) {
	f.asked = stocks
	return f.prices, f.err
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Доброй ночи"},
		{4, "Доброй ночи"},
		{5, "Доброе утро"},
		{11, "Доброе утро"},
		{12, "Добрый день"},
		{17, "Добрый день"},
		{18, "Добрый вечер"},
		{22, "Добрый вечер"},
		{23, "Доброй ночи"},
	}
	for _, tt := range tests {
		now := time.Date(2024, 5, 20, tt.hour, 30, 0, 0, time.UTC)
		if got := Greeting(now); got != tt.want {
			t.Errorf("Greeting(%02d:30) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func homeFixture() []Transaction {
	return []Transaction{
		card("2024-04-30", "*7197", -9000, "Еда"),
		card("2024-05-01", "*5091", -1500, "Супермаркеты"),
		card("2024-05-03", "*5091", -250, "Переводы"),
		card("2024-05-10", "*5091", 30000, "Пополнения"),
		card("2024-05-19", "*4556", -640, "Кафе"),
		card("2024-05-21", "*7197", -7000, "Еда"),
		{RawDate: "bad", Amount: -1, CardNumber: "*4556"},
	}
}

func TestBuildHomePage(t *testing.T) {
	rates := &fakeRates{rates: []quotes.CurrencyRate{{Currency: "USD", Rate: 91.5}}}
	prices := &fakePrices{prices: []quotes.StockPrice{{Stock: "AAPL", Price: 189.99}}}
	skips := 0

	page, err := BuildHomePage(context.Background(), HomePageInput{
		Transactions: homeFixture(),
		Reference:    time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC),
		Now:          time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
		Settings:     &Settings{Currencies: []string{"USD"}, Stocks: []string{"AAPL"}},
		Rates:        rates,
		Prices:       prices,
		OnSkip:       func(Transaction, error) { skips++ },
		Log:          zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("BuildHomePage: %v", err)
	}

	if page.Greeting != "Доброе утро" {
		t.Errorf("unexpected greeting %q", page.Greeting)
	}
	if skips != 1 {
		t.Errorf("expected the undated record to be skipped once, got %d", skips)
	}

	wantCards := []CardSummary{
		{LastDigits: "5091", TotalSpent: -1750, Cashback: 15, Active: true},
		{LastDigits: "4556", TotalSpent: -640, Cashback: 6, Active: true},
		{LastDigits: "7197", TotalSpent: 0, Cashback: 0, Active: false},
	}
	if len(page.Cards) != len(wantCards) {
		t.Fatalf("expected %d cards, got %+v", len(wantCards), page.Cards)
	}
	for i := range wantCards {
		if page.Cards[i] != wantCards[i] {
			t.Errorf("card %d: got %+v, want %+v", i, page.Cards[i], wantCards[i])
		}
	}

	if len(page.TopTransactions) != 3 || page.TopTransactions[0].Amount != -1500 {
		t.Errorf("unexpected top transactions %+v", page.TopTransactions)
	}
	if len(rates.asked) != 1 || rates.asked[0] != "USD" || len(prices.asked) != 1 || prices.asked[0] != "AAPL" {
		t.Errorf("fetchers got unexpected symbols: %v %v", rates.asked, prices.asked)
	}
	if page.CurrencyRates[0].Rate != 91.5 || page.StockPrices[0].Price != 189.99 {
		t.Errorf("quotes not passed through: %+v %+v", page.CurrencyRates, page.StockPrices)
	}
}

func TestBuildHomePage_EmptyListsAreArrays(t *testing.T) {
	page, err := BuildHomePage(context.Background(), HomePageInput{
		Reference: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Now:       time.Date(2024, 5, 20, 20, 0, 0, 0, time.UTC),
		Settings:  &Settings{},
		Rates:     &fakeRates{},
		Prices:    &fakePrices{},
		Log:       zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("BuildHomePage: %v", err)
	}

	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"cards":[]`, `"top_transactions":[]`, `"currency_rates":[]`, `"stock_prices":[]`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("expected %s in %s", field, data)
		}
	}
	if strings.Contains(string(data), "active") {
		t.Errorf("active flag should not be serialized: %s", data)
	}
}

func TestBuildHomePage_ProviderErrorsAbort(t *testing.T) {
	in := HomePageInput{
		Transactions: homeFixture(),
		Reference:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Settings:     &Settings{Currencies: []string{"USD"}, Stocks: []string{"AAPL"}},
		Log:          zerolog.Nop(),
	}

	errRates := errors.New("rates down")
	in.Rates = &fakeRates{err: errRates}
	in.Prices = &fakePrices{}
	if _, err := BuildHomePage(context.Background(), in); !errors.Is(err, errRates) {
		t.Errorf("expected rates error, got %v", err)
	}

	missing := quotes.MultiError{&quotes.MissingDataError{Symbol: "AAPL"}}
	in.Rates = &fakeRates{}
	in.Prices = &fakePrices{err: missing}
	_, err := BuildHomePage(context.Background(), in)
	var target *quotes.MissingDataError
	if !errors.As(err, &target) || target.Symbol != "AAPL" {
		t.Errorf("expected missing data error for AAPL, got %v", err)
	}
}

func TestBuildHomePage_RequiresSettings(t *testing.T) {
	_, err := BuildHomePage(context.Background(), HomePageInput{Rates: &fakeRates{}, Prices: &fakePrices{}})
	if err == nil {
		t.Error("expected error without settings")
	}
}
