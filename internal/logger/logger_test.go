package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, closer, err := OpenFile(dir, "services")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	log.Info().Int("count", 3).Msg("filtered")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, "services.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"component":"services"`, `"count":3`, "filtered"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %s, got: %s", want, out)
		}
	}
}

func TestOpenFile_TruncatesPreviousRun(t *testing.T) {
	dir := t.TempDir()

	log, closer, err := OpenFile(dir, "views")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	log.Info().Msg("first run")
	closer.Close()

	log, closer, err = OpenFile(dir, "views")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	log.Info().Msg("second run")
	closer.Close()

	data, _ := os.ReadFile(filepath.Join(dir, "views.log"))
	if strings.Contains(string(data), "first run") {
		t.Errorf("expected previous run to be truncated, got: %s", data)
	}
}
