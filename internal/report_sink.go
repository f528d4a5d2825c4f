package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultReportsDir is where category reports are written unless configured otherwise
const DefaultReportsDir = "reports/spending_by_category"

// ReportSink persists a computed report under a name and returns where it went
type ReportSink interface {
	Save(name string, report CategoryReport) (string, error)
}

// FileReportSink writes reports as indented JSON files into Dir
type FileReportSink struct {
	Dir string

	create func(path string) (io.WriteCloser, error) // os.Create when nil
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Save writes <Dir>/<name>.json, creating Dir if needed
func (s FileReportSink) Save(name string, report CategoryReport) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = DefaultReportsDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, sanitizeFileName(name)+".json")
	create := s.create
	if create == nil {
		create = createFile
	}
	f, err := create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		f.Close()
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing report %s: %w", path, err)
	}
	return path, nil
}

// SaveCategoryReport stores report under override, or under its derived name
// when override is blank.
func SaveCategoryReport(sink ReportSink, report CategoryReport, override string) (string, error) {
	name := strings.TrimSpace(override)
	if name == "" {
		name = ReportName(report)
	}
	return sink.Save(name, report)
}

func sanitizeFileName(name string) string {
	name = strings.TrimSuffix(name, ".json")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
