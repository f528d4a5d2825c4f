package internal

import (
	"strings"
	"time"
)

// Transaction is a single normalized bank operation
type Transaction struct {
	Date        time.Time // zero when the source date could not be parsed
	RawDate     string    // date text as it appeared in the source
	Amount      float64   // negative for expenses
	Category    string
	CardNumber  string
	Status      string
	Description string
}

// StatusFailed marks operations that never went through
const StatusFailed = "FAILED"

// cardPlaceholders are card identifiers that do not name a real card
var cardPlaceholders = []string{"", "nan", "Не указано"}

// IsExpense returns true for negative amounts
func (tx Transaction) IsExpense() bool {
	return tx.Amount < 0
}

// HasDate returns true if the operation date was parsed
func (tx Transaction) HasDate() bool {
	return !tx.Date.IsZero()
}

// CardSuffix returns the last 4 characters of the trimmed card identifier.
// ok is false when the identifier is empty or a placeholder.
func (tx Transaction) CardSuffix() (suffix string, ok bool) {
	card := strings.TrimSpace(tx.CardNumber)
	for _, p := range cardPlaceholders {
		if strings.EqualFold(card, p) {
			return "", false
		}
	}
	return lastRunes(card, 4), true
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, comparing dates only
func (r DateRange) Contains(d time.Time) bool {
	d = truncateToDate(d)
	return !d.Before(truncateToDate(r.Start)) && !d.After(truncateToDate(r.End))
}

// CardSummary is the per-card spend and cashback over a period
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
	Active     bool    `json:"-"`
}

// TopTransaction is a display row of the largest expenses
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
