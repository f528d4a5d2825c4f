package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultCurrencyBaseURL is the exchangerate-api endpoint
const DefaultCurrencyBaseURL = "https://v6.exchangerate-api.com"

// TargetCurrency is what all rates are expressed in
const TargetCurrency = "RUB"

// CurrencyClient fetches conversion rates from exchangerate-api
type CurrencyClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Log        zerolog.Logger
}

// NewCurrencyClient creates a client with the default endpoint and timeout
func NewCurrencyClient(apiKey string, log zerolog.Logger) *CurrencyClient {
	return &CurrencyClient{
		BaseURL:    DefaultCurrencyBaseURL,
		APIKey:     apiKey,
		HTTPClient: newHTTPClient(nil),
		Log:        log,
	}
}

type latestRatesResponse struct {
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Rates returns the rouble price of each currency, in input order.
// The first failure aborts and names the offending currency.
func (c *CurrencyClient) Rates(ctx context.Context, currencies []string) ([]CurrencyRate, error) {
	client := newHTTPClient(c.HTTPClient)
	rates := make([]CurrencyRate, 0, len(currencies))

	for _, code := range currencies {
		endpoint := fmt.Sprintf("%s/v6/%s/latest/%s",
			strings.TrimRight(c.BaseURL, "/"), url.PathEscape(c.APIKey), url.PathEscape(code))

		var body latestRatesResponse
		if err := getJSON(ctx, client, endpoint, &body, c.Log); err != nil {
			c.Log.Error().Err(err).Str("currency", code).Msg("fetching currency rate failed")
			return nil, fmt.Errorf("fetching rate for %s: %w", code, err)
		}

		rate := body.ConversionRates[TargetCurrency]
		if rate == 0 {
			err := &MissingDataError{Symbol: code, Reason: "no " + TargetCurrency + " rate"}
			c.Log.Error().Str("currency", code).Msg("no rate in response")
			return nil, fmt.Errorf("fetching rate for %s: %w", code, err)
		}

		c.Log.Info().Str("currency", code).Float64("rate", rate).Msg("currency rate")
		rates = append(rates, CurrencyRate{Currency: code, Rate: round2(rate)})
	}
	return rates, nil
}
