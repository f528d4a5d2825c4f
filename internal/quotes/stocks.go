package quotes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultStockBaseURL is the Polygon.io endpoint
const DefaultStockBaseURL = "https://api.polygon.io"

// StockClient fetches previous-day close prices from Polygon.io
type StockClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Log        zerolog.Logger
}

// NewStockClient creates a client with the default endpoint and timeout
func NewStockClient(apiKey string, log zerolog.Logger) *StockClient {
	return &StockClient{
		BaseURL:    DefaultStockBaseURL,
		APIKey:     apiKey,
		HTTPClient: newHTTPClient(nil),
		Log:        log,
	}
}

type prevCloseResponse struct {
	Results []struct {
		Close *float64 `json:"c"`
	} `json:"results"`
}

// Prices returns the last close of each stock, in input order.
// A transport failure aborts immediately. Every other per-stock failure is
// collected and returned together as a MultiError once all stocks were tried.
func (c *StockClient) Prices(ctx context.Context, stocks []string) ([]StockPrice, error) {
	if len(stocks) == 0 {
		c.Log.Warn().Msg("no stocks configured")
		return []StockPrice{}, nil
	}

	client := newHTTPClient(c.HTTPClient)
	prices := make([]StockPrice, 0, len(stocks))
	var errs MultiError

	for _, stock := range stocks {
		q := url.Values{}
		q.Set("adjusted", "true")
		q.Set("apiKey", c.APIKey)
		endpoint := fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?%s",
			strings.TrimRight(c.BaseURL, "/"), url.PathEscape(stock), q.Encode())

		var body prevCloseResponse
		if err := getJSON(ctx, client, endpoint, &body, c.Log); err != nil {
			if errors.Is(err, ErrTransport) {
				c.Log.Error().Err(err).Str("stock", stock).Msg("stock provider unreachable")
				return nil, fmt.Errorf("fetching price for %s: %w", stock, err)
			}
			c.Log.Error().Err(err).Str("stock", stock).Msg("fetching stock price failed")
			errs = append(errs, &MissingDataError{Symbol: stock, Reason: err.Error()})
			continue
		}

		if len(body.Results) == 0 || body.Results[0].Close == nil {
			c.Log.Error().Str("stock", stock).Msg("no price in response")
			errs = append(errs, &MissingDataError{Symbol: stock})
			continue
		}

		price := *body.Results[0].Close
		c.Log.Info().Str("stock", stock).Float64("price", price).Msg("stock price")
		prices = append(prices, StockPrice{Stock: stock, Price: round2(price)})
	}

	if len(errs) > 0 {
		c.Log.Error().Str("errors", errs.Error()).Msg("stock prices incomplete")
		return nil, errs
	}
	return prices, nil
}
