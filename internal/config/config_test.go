package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEWS_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"LLM_PROVIDER", "NEWS_SOURCE", "WORKERS",
		"FETCH_TIMEOUT_SEC", "LLM_TIMEOUT_SEC", "MAX_RETRIES", "RETRY_DELAY_SEC",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	assert.Equal(t, nil, err)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, SourceNewsAPI, cfg.NewsSource)
	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, 20*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
}

func TestLoadFileOverlay(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "crosscheck.yaml")
	yaml := "llm_provider: gemini\nworkers: 10\nfetch_timeout_sec: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, SourceNewsAPI, cfg.NewsSource)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKERS", "3")
	t.Setenv("NEWS_SOURCE", "googlenews")

	path := filepath.Join(t.TempDir(), "crosscheck.yaml")
	if err := os.WriteFile(path, []byte("workers: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, SourceGoogleNews, cfg.NewsSource)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "watson")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected validation error for unknown provider")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLLMAPIKey(t *testing.T) {
	cfg := Default()
	cfg.LLMProvider = ProviderAnthropic

	_, err := cfg.LLMAPIKey()
	if err == nil || err.Error() != "ANTHROPIC_API_KEY is not set" {
		t.Fatalf("expected missing-variable error, got %v", err)
	}

	cfg.AnthropicAPIKey = "sk-test"
	key, err := cfg.LLMAPIKey()
	assert.Equal(t, nil, err)
	assert.Equal(t, "sk-test", key)
}
