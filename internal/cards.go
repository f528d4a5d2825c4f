package internal

import "strings"

// cardTransferCategory is excluded from per-card cashback (but still marks the card active)
const cardTransferCategory = "переводы"

// KnownCards returns the valid card suffixes in order of first appearance
func KnownCards(txs []Transaction) []string {
	seen := make(map[string]bool)
	var cards []string
	for _, tx := range txs {
		suffix, ok := tx.CardSuffix()
		if !ok || seen[suffix] {
			continue
		}
		seen[suffix] = true
		cards = append(cards, suffix)
	}
	return cards
}

// SummarizeCards builds per-card spend and cashback for filtered, reporting
// every card known from all so that cards without activity are listed too.
// Active cards come first, each group in order of first appearance in all.
func SummarizeCards(filtered []Transaction, all []Transaction) []CardSummary {
	known := KnownCards(all)
	byCard := make(map[string]*CardSummary, len(known))
	for _, card := range known {
		byCard[card] = &CardSummary{LastDigits: card}
	}

	for _, tx := range filtered {
		suffix, ok := tx.CardSuffix()
		if !ok {
			continue
		}
		summary, ok := byCard[suffix]
		if !ok {
			continue
		}

		if tx.IsExpense() {
			summary.TotalSpent += tx.Amount
			if strings.ToLower(tx.Category) != cardTransferCategory {
				summary.Cashback += CashbackUnits(tx.Amount)
			}
		}
		// Any matching record marks the card active, transfers and income included
		summary.Active = true
	}

	var active, inactive []CardSummary
	for _, card := range known {
		s := *byCard[card]
		s.TotalSpent = round2(s.TotalSpent)
		s.Cashback = round2(s.Cashback)
		if s.Active {
			active = append(active, s)
		} else {
			inactive = append(inactive, s)
		}
	}
	return append(active, inactive...)
}
