package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogError_WritesErrorField(t *testing.T) {
	var buf bytes.Buffer
	setOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(func() { logger = zerolog.Nop() })

	LogError(errors.New("dial tcp: connection refused"), "news feed unavailable")

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("missing error level: %s", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("missing error text: %s", out)
	}
	if !strings.Contains(out, "news feed unavailable") {
		t.Errorf("missing message: %s", out)
	}
}

func TestLog_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	setOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() { logger = zerolog.Nop() })

	Log("trace %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug message written at info level: %s", buf.String())
	}

	Info("hello %s", "world")
	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("info message missing: %s", buf.String())
	}
}

func TestInit_CreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		CloseLog()
		logger = zerolog.Nop()
	})

	Info("started")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "cli-") {
		t.Fatalf("unexpected log dir contents: %v", entries)
	}
}
