package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimpleJSONFormat is a minimal JSON format for importing transactions
// Example:
//
//	{
//	  "transactions": [
//	    {"date": "2024-10-01", "amount": -100, "category": "Еда", "card": "*7197", "status": "OK"},
//	    {"date": "2024-10-15", "amount": -300, "category": "Еда", "description": "Магнит"}
//	  ]
//	}
//
// This format is easy to convert to from any bank export or data source.
type SimpleJSONFormat struct {
	Transactions []SimpleJSONTransaction `json:"transactions"`
}

type SimpleJSONTransaction struct {
	Date        string  `json:"date"`   // YYYY-MM-DD format
	Amount      float64 `json:"amount"` // Negative for expenses
	Category    string  `json:"category"`
	Card        string  `json:"card"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

// ParseSimpleJSON parses a JSON file in the simple JSON format.
// Malformed dates do not fail the file; the record keeps a zero Date.
// Amounts are typed in JSON, so no record is ever passed to onSkip.
func ParseSimpleJSON(path string, onSkip SkipFunc) ([]Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	transactions := make([]Transaction, 0, len(jsonData.Transactions))
	for _, tx := range jsonData.Transactions {
		date, _ := ParseSourceDate(tx.Date)
		transactions = append(transactions, Transaction{
			Date:        date,
			RawDate:     tx.Date,
			Amount:      tx.Amount,
			Category:    tx.Category,
			CardNumber:  tx.Card,
			Status:      tx.Status,
			Description: tx.Description,
		})
	}

	return transactions, nil
}

func init() {
	RegisterParser("simple-json", ParserFunc(ParseSimpleJSON))
}
