package internal

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is the currency of the bank export
const DefaultCurrency = "RUB"

// Currency represents a currency with its formatting rules
type Currency struct {
	Code    string // "RUB", "USD", "EUR"
	unit    currency.Unit
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"RUB": "₽",
}

// defaultLocaleForCurrency provides a "home" locale for each currency
var defaultLocaleForCurrency = map[string]language.Tag{
	"RUB": language.Russian,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"CNY": language.Chinese,
	"JPY": language.Japanese,
	"CHF": language.German,
	"KZT": language.Russian,
}

// GetCurrency returns the Currency for a given code.
// Unknown codes are formatted with English rules and the code as symbol.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD // fallback unit for number formatting only
	}

	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.English
	}

	return Currency{
		Code:    code,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
}

// Symbol returns the currency symbol, using overrides where needed
func (c Currency) Symbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	if _, err := currency.ParseISO(c.Code); err != nil {
		return c.Code
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix returns true if this currency symbol should be placed before the amount.
// golang.org/x/text/currency doesn't expose symbol positioning, so the list is manual.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CNY":
		return true
	default:
		return false
	}
}

// Format formats an amount with two decimals and the currency symbol
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := c.Symbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
