// Package quotes fetches currency conversion rates and last-close stock prices
// for the home page digest.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every provider request
const DefaultTimeout = 10 * time.Second

// CurrencyRate is the price of one unit of Currency in roubles
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is the previous close of a stock
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// MissingDataError means a provider answered but had nothing usable for Symbol
type MissingDataError struct {
	Symbol string
	Reason string
}

func (e *MissingDataError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("no data for %s", e.Symbol)
	}
	return fmt.Sprintf("no data for %s: %s", e.Symbol, e.Reason)
}

// MultiError collects several missing-data errors into one
type MultiError []error

func (m MultiError) Error() string {
	msgs := make([]string, len(m))
	for i, err := range m {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (m MultiError) Unwrap() []error {
	return m
}

// ErrTransport wraps failures to reach a provider at all
var ErrTransport = errors.New("quote provider unreachable")

func newHTTPClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// getJSON performs a GET and decodes a 200 response into out.
// Transport failures are wrapped with ErrTransport; other failures are returned as-is.
func getJSON(ctx context.Context, client *http.Client, url string, out any, log zerolog.Logger) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("host", req.URL.Host).
		Int("status", resp.StatusCode).
		Msg("provider response")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
