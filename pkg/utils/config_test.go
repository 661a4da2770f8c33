package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `scanner:
  timeout: 5s
  max_retries: 2
  requests_per_second: 3
  skip_ssl: true
extractor:
  min_comment_token: 4
  max_harvested_urls: 50
output:
  format: markdown
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Scanner.Timeout != "5s" {
		t.Errorf("Timeout = %q, want 5s", cfg.Scanner.Timeout)
	}
	if cfg.Scanner.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2", cfg.Scanner.MaxRetries)
	}
	if !cfg.Scanner.SkipSSL {
		t.Error("SkipSSL = false, want true")
	}
	if cfg.Extractor.MinCommentToken != 4 {
		t.Errorf("MinCommentToken = %d, want 4", cfg.Extractor.MinCommentToken)
	}
	if cfg.Extractor.MaxHarvestedURLs != 50 {
		t.Errorf("MaxHarvestedURLs = %d, want 50", cfg.Extractor.MaxHarvestedURLs)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Output.Format)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	content := "https://a.example\n\n# comment\n  https://b.example  \n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines failed: %v", err)
	}

	expected := []string{"https://a.example", "https://b.example"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], expected[i])
		}
	}
}
