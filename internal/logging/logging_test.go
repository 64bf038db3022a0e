package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "mathbench.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogChart("build", "accuracyByCategory", "grouped-bar", map[string]int{"datasets": 3})
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, `[BUILD] surface=accuracyByCategory shape=grouped-bar payload={"datasets":3}`) {
		t.Fatalf("expected LogChart content, got: %s", content)
	}
}

func TestBuildChartMessageDefaults(t *testing.T) {
	msg := buildChartMessage(" destroy ", " ", " ", nil)
	if !strings.Contains(msg, "[DESTROY]") {
		t.Fatalf("expected uppercased action, got: %s", msg)
	}
	if !strings.Contains(msg, "surface=unknown") {
		t.Fatalf("expected default surface, got: %s", msg)
	}
	if strings.Contains(msg, "shape=") {
		t.Fatalf("blank shape should be omitted, got: %s", msg)
	}
	if !strings.HasSuffix(msg, "payload=null") {
		t.Fatalf("expected null payload, got: %s", msg)
	}
	if got := buildChartMessage("", "s", "radar", "x"); !strings.HasPrefix(got, "[CHART]") {
		t.Fatalf("expected default action, got: %s", got)
	}
}

func TestFormatPayloadVariants(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: %s", got)
	}
	if got := formatPayload(" "); got != `""` {
		t.Fatalf("empty string payload: %s", got)
	}
	if got := formatPayload([]byte("hi")); got != "hi" {
		t.Fatalf("byte payload: %s", got)
	}
	if got := formatPayload(testStringer("ok")); got != "ok" {
		t.Fatalf("stringer payload: %s", got)
	}
}

func TestInitDiscard(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("discard")
	if buf.Len() != 0 {
		t.Fatalf("expected log output discarded, got: %s", buf.String())
	}
}
