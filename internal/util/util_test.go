// internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestWriteFileCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dist", "nested", "page.html")
	data := []byte("<html></html>")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestEnsureDirWithoutParent(t *testing.T) {
	t.Parallel()

	if err := EnsureDir("report.xlsx"); err != nil {
		t.Fatalf("expected no error for a bare file name, got %v", err)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	if got := TruncateRunes("Limits", 10); got != "Limits" {
		t.Fatalf("expected short text unchanged, got %q", got)
	}
	got := TruncateRunes("Implicit differentiation", 10)
	if utf8.RuneCountInString(got) != 10 {
		t.Fatalf("expected 10 runes, got %q", got)
	}
	if got != "Implicit …" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := TruncateRunes("ab", 1); got != "…" {
		t.Fatalf("expected ellipsis only, got %q", got)
	}
}
