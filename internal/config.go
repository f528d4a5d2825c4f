package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default locations, relative to the working directory
const (
	DefaultDataFile     = "data/operations.xlsx"
	DefaultSettingsFile = "user_settings.json"
	DefaultEnvFile      = ".env"
	DefaultLogsDir      = "logs"
)

// Environment variables holding the quote provider API keys
const (
	EnvCurrencyAPIKey = "CURRENCY_API_KEY"
	EnvStockAPIKey    = "STOCK_API_KEY"
)

// Settings is the user's watch-list of currencies and stocks.
// The file may be JSON or YAML.
type Settings struct {
	Currencies []string `yaml:"user_currencies"`
	Stocks     []string `yaml:"user_stocks"`
}

// APIKeys holds credentials for the quote providers
type APIKeys struct {
	Currency string
	Stock    string
}

// LoadSettings reads the watch-list. A missing file is an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("settings file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	s.Currencies = normalizeSymbols(s.Currencies)
	s.Stocks = normalizeSymbols(s.Stocks)
	return &s, nil
}

// normalizeSymbols trims, upper-cases and drops empty entries
func normalizeSymbols(symbols []string) []string {
	var result []string
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// LoadAPIKeys loads envFile into the process environment (if it exists) and
// returns the quote provider keys. Variables already set take precedence.
func LoadAPIKeys(envFile string) (APIKeys, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return APIKeys{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return APIKeys{
		Currency: os.Getenv(EnvCurrencyAPIKey),
		Stock:    os.Getenv(EnvStockAPIKey),
	}, nil
}
