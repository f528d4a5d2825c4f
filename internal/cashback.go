package internal

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"
)

// DefaultTopCategories is how many categories the cashback analysis returns
const DefaultTopCategories = 3

// CategoryCashback is the cashback accumulated in one category
type CategoryCashback struct {
	Category string
	Cashback float64
}

// CashbackRanking lists categories by descending cashback.
// It marshals to a JSON object whose keys keep the ranking order.
type CashbackRanking []CategoryCashback

// CashbackUnits is 1 unit per full 100 of spend, floor-divided
func CashbackUnits(amount float64) float64 {
	return math.Floor(-amount / 100)
}

// CalculateCashback returns the category and cashback of a single operation.
// The caller is responsible for passing expenses only.
func CalculateCashback(tx Transaction) (string, float64) {
	return tx.Category, CashbackUnits(tx.Amount)
}

// AnalyzeCashback finds the k categories that earned the most cashback
// in the given month. Ties are ordered by category name.
func AnalyzeCashback(txs []Transaction, year int, month time.Month, k int, onSkip SkipFunc) CashbackRanking {
	eligible := Filter(txs, PeriodCategoryPredicate(year, month), onSkip)

	// Group case-insensitively, keep the first spelling seen for display
	totals := make(map[string]*CategoryCashback)
	var order []string
	for _, tx := range eligible {
		category, cashback := CalculateCashback(tx)
		key := strings.ToLower(category)
		entry, ok := totals[key]
		if !ok {
			entry = &CategoryCashback{Category: category}
			totals[key] = entry
			order = append(order, key)
		}
		entry.Cashback += cashback
	}

	var ranking CashbackRanking
	for _, key := range order {
		entry := totals[key]
		if strings.TrimSpace(entry.Category) == "" || entry.Cashback <= 0 {
			continue
		}
		ranking = append(ranking, *entry)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Cashback != ranking[j].Cashback {
			return ranking[i].Cashback > ranking[j].Cashback
		}
		return ranking[i].Category < ranking[j].Category
	})

	if k >= 0 && len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking
}

// Get returns the cashback of a category in the ranking
func (r CashbackRanking) Get(category string) (float64, bool) {
	for _, c := range r {
		if strings.EqualFold(c.Category, category) {
			return c.Cashback, true
		}
	}
	return 0, false
}

func (r CashbackRanking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(c.Category)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.Cashback)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
