package internal

import (
	"fmt"
	"strings"
	"time"
)

// CategoryWindowDays is the trailing window of a category spending report
const CategoryWindowDays = 90

// CategoryReport is the spending in one category over the trailing window
type CategoryReport struct {
	General  CategoryReportSummary `json:"general_information"`
	Detailed []CategoryReportItem  `json:"detailed_information"`
}

// CategoryReportSummary holds the report totals. TotalSpent keeps its sign.
type CategoryReportSummary struct {
	Category          string  `json:"category"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	TotalSpent        float64 `json:"total_spent"`
	TransactionsCount int     `json:"transactions_count"`
}

// CategoryReportItem is one matching operation
type CategoryReportItem struct {
	Date     string  `json:"date_amount"`
	Amount   float64 `json:"transaction_amount"`
	Category string  `json:"category"`
}

// CategoryWindow returns [asOf - 90 days, asOf]
func CategoryWindow(asOf time.Time) DateRange {
	end := truncateToDate(asOf)
	return DateRange{Start: end.AddDate(0, 0, -CategoryWindowDays), End: end}
}

// SpendingByCategory reports expenses in category during the window ending at asOf.
// No matches is not an error: the report just has zero totals.
func SpendingByCategory(txs []Transaction, category string, asOf time.Time, onSkip SkipFunc) CategoryReport {
	window := CategoryWindow(asOf)
	matches := Filter(txs, func(tx Transaction) (bool, error) {
		d, err := operationDate(tx)
		if err != nil {
			return false, err
		}
		return window.Contains(d) && strings.EqualFold(tx.Category, category) && tx.IsExpense(), nil
	}, onSkip)

	report := CategoryReport{
		General: CategoryReportSummary{
			Category:  category,
			StartDate: window.Start.Format(DateLayout),
			EndDate:   window.End.Format(DateLayout),
		},
		Detailed: []CategoryReportItem{},
	}

	var total float64
	for _, tx := range matches {
		total += tx.Amount
		report.Detailed = append(report.Detailed, CategoryReportItem{
			Date:     tx.Date.Format(DateLayout),
			Amount:   tx.Amount,
			Category: tx.Category,
		})
	}
	report.General.TotalSpent = round2(total)
	report.General.TransactionsCount = len(matches)
	return report
}

// ReportName derives the default report name from category and window
func ReportName(report CategoryReport) string {
	return fmt.Sprintf("spending_%s_%s_%s",
		report.General.Category,
		strings.ReplaceAll(report.General.StartDate, "-", ""),
		strings.ReplaceAll(report.General.EndDate, "-", ""))
}
