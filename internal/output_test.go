package internal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gigurra/bank-digest/internal/quotes"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, CashbackRanking{{"Развлечения", 38}}); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	if got := buf.String(); got != "{\n  \"Развлечения\": 38\n}\n" {
		t.Errorf("unexpected output %q", got)
	}

	buf.Reset()
	report := SpendingByCategory(reportFixture(), "Еда", date("2024-12-31"), nil)
	if err := PrintJSON(&buf, report); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "  \"general_information\": {") {
		t.Errorf("expected indented report, got %s", buf.String())
	}
}

func TestPrintCashbackTable(t *testing.T) {
	var buf bytes.Buffer
	PrintCashbackTable(&buf, CashbackRanking{{"Развлечения", 38}, {"Еда", 23}}, 2023, time.March, GetCurrency("RUB"))

	out := buf.String()
	for _, want := range []string{"\nTop cashback categories 2023-03\n", "Развлечения", "Еда", "38,00 ₽"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	PrintCashbackTable(&buf, nil, 2023, time.March, GetCurrency("RUB"))
	if !strings.Contains(buf.String(), "No cashback earned in 2023-03") {
		t.Errorf("unexpected empty output %q", buf.String())
	}
}

func TestPrintCategoryReportTable(t *testing.T) {
	var buf bytes.Buffer
	report := SpendingByCategory(reportFixture(), "Еда", date("2024-12-31"), nil)
	PrintCategoryReportTable(&buf, report, GetCurrency("RUB"))

	out := buf.String()
	for _, want := range []string{"Category: Еда", "2024-10-02 - 2024-12-31", "2024-10-15", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	PrintCategoryReportTable(&buf, SpendingByCategory(nil, "Еда", date("2024-12-31"), nil), GetCurrency("RUB"))
	if !strings.Contains(buf.String(), "No operations found.") {
		t.Errorf("unexpected empty output %q", buf.String())
	}
}

func TestPrintHomePageTable(t *testing.T) {
	page := &HomePage{
		Greeting:        "Добрый день",
		Cards:           []CardSummary{{LastDigits: "5091", TotalSpent: -1750, Cashback: 15, Active: true}},
		TopTransactions: []TopTransaction{{Date: "01.05.2024", Amount: -1500, Category: "Супермаркеты", Description: "Колхоз"}},
		CurrencyRates:   []quotes.CurrencyRate{{Currency: "USD", Rate: 91.5}},
		StockPrices:     []quotes.StockPrice{{Stock: "AAPL", Price: 189.99}},
	}

	var buf bytes.Buffer
	PrintHomePageTable(&buf, page, GetCurrency("RUB"))

	out := buf.String()
	for _, want := range []string{"Добрый день!", "\nCards\n", "\nCurrency rates\n", "\nStock prices\n", "*5091", "Колхоз", "USD", "AAPL", "$189.99"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
