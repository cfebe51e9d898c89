package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(&buf, FormatJSON, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	writerLog := Component(log, "writer")
	writerLog.Info().Msg("hello")
	log.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug must be filtered):\n%s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "writer" || entry["message"] != "hello" || entry["level"] != "info" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}

func TestNew_VerboseConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(&buf, FormatConsole, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing from verbose output: %q", buf.String())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, "xml", false); err == nil {
		t.Error("New should reject unknown formats")
	}
}
