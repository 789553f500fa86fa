package report

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadNoticeFallbackWhenMissing(t *testing.T) {
	got := LoadNotice(filepath.Join(t.TempDir(), "absent.md"), zap.NewNop().Sugar())
	if got != FallbackNotice {
		t.Fatalf("want fallback notice, got %q", got)
	}
}

func TestLoadNoticeFallbackWhenUnconfigured(t *testing.T) {
	if got := LoadNotice("", zap.NewNop().Sugar()); got != FallbackNotice {
		t.Fatalf("want fallback notice, got %q", got)
	}
}

func TestLoadNoticeFirstSectionOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legal_warning.md")
	content := "Scan only devices you are authorized to test.\n\n## Details\nlong text\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadNotice(path, zap.NewNop().Sugar())
	if got != "Scan only devices you are authorized to test." {
		t.Fatalf("unexpected notice %q", got)
	}
}
