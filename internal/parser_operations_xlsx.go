package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column titles of the bank operations export
const (
	colDate        = "Дата операции"
	colCard        = "Номер карты"
	colStatus      = "Статус"
	colAmount      = "Сумма операции"
	colCategory    = "Категория"
	colDescription = "Описание"
)

var (
	ErrNoSheets       = errors.New("no sheets found in file")
	ErrMissingColumns = errors.New("could not find required columns")
)

// sourceDateLayouts are tried in order when reading operation dates
var sourceDateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
	DateLayout,
	TimestampLayout,
}

// ParseOperationsXLSX reads transactions from the bank's operations export.
// The header row is located by its column titles; date and amount are required,
// card, status, category and description are optional.
// Cells are read unformatted, so numeric amounts and real date cells keep their values.
// Rows with an unreadable date are kept with a zero Date so later filters can
// report them; rows with an unreadable amount are dropped and reported to onSkip.
func ParseOperationsXLSX(path string, onSkip SkipFunc) ([]Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	// Find header row and column indices
	cols := map[string]int{}
	dataStartRow := -1
	for i, row := range rows {
		found := map[string]int{}
		for j, cell := range row {
			switch title := strings.TrimSpace(cell); title {
			case colDate, colCard, colStatus, colAmount, colCategory, colDescription:
				if _, dup := found[title]; !dup {
					found[title] = j
				}
			}
		}
		_, hasDate := found[colDate]
		_, hasAmount := found[colAmount]
		if hasDate && hasAmount {
			cols = found
			dataStartRow = i + 1
			break
		}
	}

	if dataStartRow < 0 {
		return nil, fmt.Errorf("%w (%s, %s)", ErrMissingColumns, colDate, colAmount)
	}

	cell := func(row []string, title string) string {
		j, ok := cols[title]
		if !ok || j >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[j])
	}

	var transactions []Transaction
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]

		rawDate := cell(row, colDate)
		amountStr := cell(row, colAmount)

		// Skip empty rows
		if rawDate == "" && amountStr == "" {
			continue
		}

		tx := Transaction{
			RawDate:     rawDate,
			Category:    cell(row, colCategory),
			CardNumber:  cell(row, colCard),
			Status:      cell(row, colStatus),
			Description: cell(row, colDescription),
		}

		amount, err := ParseAmount(amountStr)
		if err != nil {
			if onSkip != nil {
				onSkip(tx, fmt.Errorf("row %d: %w", i+1, err))
			}
			continue
		}
		tx.Amount = amount
		tx.Date, _ = parseCellDate(rawDate, date1904)

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// ParseSourceDate parses an operation date as exported by the bank
// and drops the time of day.
func ParseSourceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
}

// parseCellDate parses a date cell given as text or as an Excel serial number
func parseCellDate(s string, date1904 bool) (time.Time, error) {
	t, err := ParseSourceDate(s)
	if err == nil {
		return t, nil
	}
	serial, convErr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if convErr != nil {
		return time.Time{}, err
	}
	t, convErr = excelize.ExcelDateToTime(serial, date1904)
	if convErr != nil {
		return time.Time{}, err
	}
	return truncateToDate(t), nil
}

// ParseAmount parses a signed amount, accepting decimal comma and digit grouping spaces
func ParseAmount(s string) (float64, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return v, nil
}
