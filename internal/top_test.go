package internal

import "testing"

func TestTopTransactions(t *testing.T) {
	amounts := []float64{-600, -100, -1000, -1500, -5100, -100, -2200, -5000, -500}
	var txs []Transaction
	for i, a := range amounts {
		t := tx("2023-12-01", a, "еда")
		t.Date = t.Date.AddDate(0, 0, i)
		t.Description = "кафе"
		txs = append(txs, t)
	}

	got := TopTransactions(txs, DefaultTopTransactions)

	want := []float64{-5100, -5000, -2200, -1500, -1000}
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i, a := range want {
		if got[i].Amount != a {
			t.Errorf("rank %d: got %v, want %v", i+1, got[i].Amount, a)
		}
	}
	if got[0].Date != "05.12.2023" {
		t.Errorf("expected display date 05.12.2023, got %s", got[0].Date)
	}
	if got[0].Category != "еда" || got[0].Description != "кафе" {
		t.Errorf("unexpected fields %+v", got[0])
	}
}

func TestTopTransactions_IgnoresIncomeAndKeepsInputOrderOnTies(t *testing.T) {
	txs := []Transaction{
		{Date: date("2024-01-01"), Amount: 10000, Description: "salary"},
		{Date: date("2024-01-02"), Amount: -300, Description: "first"},
		{Date: date("2024-01-03"), Amount: -300, Description: "second"},
		{Date: date("2024-01-04"), Amount: -300.004, Description: "third"},
	}

	got := TopTransactions(txs, 5)

	if len(got) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(got))
	}
	if got[0].Description != "third" || got[1].Description != "first" || got[2].Description != "second" {
		t.Errorf("unexpected order: %+v", got)
	}
	if got[0].Amount != -300 {
		t.Errorf("expected amount rounded to 2 decimals, got %v", got[0].Amount)
	}
	if got[1].Category != "Не указано" {
		t.Errorf("expected placeholder category, got %q", got[1].Category)
	}
}

func TestTopTransactions_Empty(t *testing.T) {
	if got := TopTransactions(nil, 5); len(got) != 0 {
		t.Errorf("expected no transactions, got %+v", got)
	}
}
