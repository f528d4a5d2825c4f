package internal

import (
	"math"
	"sort"
)

// DefaultTopTransactions is the size of the home page top list
const DefaultTopTransactions = 5

// TopTransactions returns the n largest expenses by absolute amount.
// Equal amounts keep their input order.
func TopTransactions(txs []Transaction, n int) []TopTransaction {
	expenses := FilterExpenses(txs)
	sort.SliceStable(expenses, func(i, j int) bool {
		return math.Abs(expenses[i].Amount) > math.Abs(expenses[j].Amount)
	})

	if n >= 0 && len(expenses) > n {
		expenses = expenses[:n]
	}

	top := make([]TopTransaction, 0, len(expenses))
	for _, tx := range expenses {
		top = append(top, TopTransaction{
			Date:        displayDate(tx),
			Amount:      round2(tx.Amount),
			Category:    valueOr(tx.Category, "Не указано"),
			Description: valueOr(tx.Description, "Не указано"),
		})
	}
	return top
}

func displayDate(tx Transaction) string {
	if !tx.HasDate() {
		return tx.RawDate
	}
	return tx.Date.Format(DisplayDateLayout)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
