package internal

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSource is the parser used when a file argument carries no format prefix
const DefaultSource = "operations-xlsx"

// Parser parses transaction files into a list of transactions.
// Records the parser has to drop are reported to onSkip, which may be nil.
type Parser interface {
	Parse(path string, onSkip SkipFunc) ([]Transaction, error)
}

// ParserFunc is a function that implements Parser
type ParserFunc func(path string, onSkip SkipFunc) ([]Transaction, error)

func (f ParserFunc) Parse(path string, onSkip SkipFunc) ([]Transaction, error) {
	return f(path, onSkip)
}

// parsers is the registry of available parsers
var parsers = map[string]Parser{}

// RegisterParser registers a parser with the given name
func RegisterParser(name string, p Parser) {
	parsers[name] = p
}

// GetParser returns the parser for the given source type
func GetParser(source string) (Parser, error) {
	p, ok := parsers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, AvailableSources())
	}
	return p, nil
}

// AvailableSources returns the registered source types, sorted
func AvailableSources() []string {
	var sources []string
	for name := range parsers {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	return sources
}

// IsKnownParser returns true if the name is a registered parser
func IsKnownParser(name string) bool {
	_, ok := parsers[name]
	return ok
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "simple-json:data.json" → ("simple-json", "data.json")
// Example: "C:\path\file.xlsx" → ("", "C:\path\file.xlsx")
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownParser(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// LoadTransactions parses a file argument. An explicit prefix wins over source,
// and an empty source falls back to DefaultSource.
func LoadTransactions(arg, source string, onSkip SkipFunc) ([]Transaction, error) {
	format, path := ParseFileArg(arg)
	if format == "" {
		format = source
	}
	if format == "" {
		format = DefaultSource
	}

	p, err := GetParser(format)
	if err != nil {
		return nil, err
	}
	txs, err := p.Parse(path, onSkip)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as %s: %w", path, format, err)
	}
	return txs, nil
}

func init() {
	RegisterParser(DefaultSource, ParserFunc(ParseOperationsXLSX))
}
