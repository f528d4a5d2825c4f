package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the storage format of operation dates
	DateLayout = "2006-01-02"
	// TimestampLayout is the format of reference timestamps entered by the user
	TimestampLayout = "2006-01-02 15:04:05"
	// DisplayDateLayout is used when showing dates to the user
	DisplayDateLayout = "02.01.2006"
)

// ErrInvalidDate is returned when a caller supplies a malformed reference date
var ErrInvalidDate = errors.New("invalid date")

// Categories that never earn cashback
var cashbackExcludedCategories = []string{
	"Переводы",
	"Наличные",
	"Списание ошибочно зачисленных средств",
}

// Predicate decides whether a transaction passes a filter.
// A non-nil error means the record could not be evaluated.
type Predicate func(tx Transaction) (bool, error)

// SkipFunc receives records a predicate could not evaluate
type SkipFunc func(tx Transaction, err error)

// Filter returns the transactions accepted by pred, preserving input order.
// Records for which pred fails are dropped and reported to onSkip (which may be nil).
func Filter(txs []Transaction, pred Predicate, onSkip SkipFunc) []Transaction {
	var result []Transaction
	for _, tx := range txs {
		ok, err := pred(tx)
		if err != nil {
			if onSkip != nil {
				onSkip(tx, err)
			}
			continue
		}
		if ok {
			result = append(result, tx)
		}
	}
	return result
}

// operationDate returns the parsed date or an error naming the raw value
func operationDate(tx Transaction) (time.Time, error) {
	if !tx.HasDate() {
		return time.Time{}, fmt.Errorf("unparseable operation date %q", tx.RawDate)
	}
	return tx.Date, nil
}

// IsCashbackExcluded returns true if the category never earns cashback
func IsCashbackExcluded(category string) bool {
	for _, c := range cashbackExcludedCategories {
		if strings.EqualFold(category, c) {
			return true
		}
	}
	return false
}

// PeriodCategoryPredicate accepts completed expenses in the given month
// outside the cashback-excluded categories.
func PeriodCategoryPredicate(year int, month time.Month) Predicate {
	return func(tx Transaction) (bool, error) {
		d, err := operationDate(tx)
		if err != nil {
			return false, err
		}
		return d.Year() == year &&
			d.Month() == month &&
			!IsCashbackExcluded(tx.Category) &&
			tx.Status != StatusFailed &&
			tx.IsExpense(), nil
	}
}

// MonthToDate returns the range from the first of the reference month up to
// the reference date itself.
func MonthToDate(reference time.Time) DateRange {
	end := truncateToDate(reference)
	return DateRange{
		Start: time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC),
		End:   end,
	}
}

// DateRangePredicate accepts records dated within the month-to-date range of reference
func DateRangePredicate(reference time.Time) Predicate {
	r := MonthToDate(reference)
	return func(tx Transaction) (bool, error) {
		d, err := operationDate(tx)
		if err != nil {
			return false, err
		}
		return r.Contains(d), nil
	}
}

// FilterExpenses returns only transactions with negative amounts (expenses).
func FilterExpenses(txs []Transaction) []Transaction {
	var expenses []Transaction
	for _, tx := range txs {
		if tx.IsExpense() {
			expenses = append(expenses, tx)
		}
	}
	return expenses
}

// ParseReferenceTime parses a user supplied "YYYY-MM-DD HH:MM:SS" timestamp
func ParseReferenceTime(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected format YYYY-MM-DD HH:MM:SS", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseReportDate parses a user supplied "YYYY-MM-DD" date
func ParseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected format YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}
