package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYAML = `backends:
  text:
    base_url: https://api.deepseek.com
    model: deepseek-chat
    api_key: ${TEST_TEXT_API_KEY}
  vision:
    base_url: https://api.openai.com
    endpoint: /v1/chat/completions
    model: gpt-4o-mini
    api_key: vision-key

limits:
  max_input_chars: 300

clients:
  - type: discord
    enabled: true
    config:
      token: abc
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_TEXT_API_KEY", "expanded-key")

	cfg, err := LoadConfig(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backends.Text.APIKey != "expanded-key" {
		t.Fatalf("env expansion failed: %q", cfg.Backends.Text.APIKey)
	}
	if cfg.Backends.Vision.Endpoint != "/v1/chat/completions" {
		t.Fatalf("unexpected vision endpoint: %q", cfg.Backends.Vision.Endpoint)
	}
	if cfg.Limits.MaxInputChars != 300 {
		t.Fatalf("explicit limit not honored: %d", cfg.Limits.MaxInputChars)
	}
	if cfg.Limits.MaxOutputChars != 2000 || cfg.Limits.VisionAttempts != 3 ||
		cfg.Limits.RetryPauseSeconds != 2 || cfg.Limits.RequestTimeoutSeconds != 30 {
		t.Fatalf("defaults not applied: %+v", cfg.Limits)
	}
	if err = cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must fall back to defaults: %v", err)
	}
	if len(cfg.Clients) != 1 || cfg.Clients[0].Type != "discord" {
		t.Fatalf("unexpected default clients: %+v", cfg.Clients)
	}
	if cfg.Limits.MaxInputChars != 500 {
		t.Fatalf("unexpected default limit: %d", cfg.Limits.MaxInputChars)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "backends: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, strings.Replace(testYAML, "https://api.deepseek.com", "not a url", 1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad base_url")
	}
}

func TestValidateRequiresClients(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, strings.Split(testYAML, "clients:")[0]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = cfg.Validate(); err == nil {
		t.Fatal("expected validation error when no clients are defined")
	}
}
