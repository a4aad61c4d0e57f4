package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	var out bytes.Buffer
	oldOutput, oldLevel := LogOutput, GlobalLogLevel
	defer func() {
		LogOutput, GlobalLogLevel = oldOutput, oldLevel
	}()
	LogOutput = &out
	GlobalLogLevel = LogLevelError | LogLevelInfo

	Logf("Dataset", "mapped %d bytes", 128)
	Debugf("Dataset", "hidden")
	Errorf("Dataset", "failed: %s", "reason")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[0], "[Dataset] INFO mapped 128 bytes") {
		t.Errorf("unexpected info line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[Dataset] ERROR failed: reason") {
		t.Errorf("unexpected error line %q", lines[1])
	}

	GlobalLogLevel |= LogLevelDebug
	if !IsLogLevelDebug() {
		t.Error("expected debug level")
	}
}
