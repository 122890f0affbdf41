package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	SourceNewsAPI    = "newsapi"
	SourceGoogleNews = "googlenews"
)

type Config struct {
	NewsAPIKey      string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string

	LLMProvider string
	NewsSource  string

	Workers      int
	FetchTimeout time.Duration
	LLMTimeout   time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
}

// fileConfig is the YAML shape. Durations are whole seconds; credentials
// stay out of the file and come from the environment only.
type fileConfig struct {
	LLMProvider     string `yaml:"llm_provider"`
	NewsSource      string `yaml:"news_source"`
	Workers         int    `yaml:"workers"`
	FetchTimeoutSec int    `yaml:"fetch_timeout_sec"`
	LLMTimeoutSec   int    `yaml:"llm_timeout_sec"`
	MaxRetries      int    `yaml:"max_retries"`
	RetryDelaySec   int    `yaml:"retry_delay_sec"`
}

func Default() *Config {
	return &Config{
		LLMProvider:  ProviderOpenAI,
		NewsSource:   SourceNewsAPI,
		Workers:      5,
		FetchTimeout: 20 * time.Second,
		LLMTimeout:   30 * time.Second,
		MaxRetries:   5,
		RetryDelay:   2 * time.Second,
	}
}

// Load layers defaults, an optional YAML file and the environment, in that
// order. An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	return cfg, cfg.Validate()
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.LLMProvider != "" {
		c.LLMProvider = fc.LLMProvider
	}
	if fc.NewsSource != "" {
		c.NewsSource = fc.NewsSource
	}
	if fc.Workers > 0 {
		c.Workers = fc.Workers
	}
	if fc.FetchTimeoutSec > 0 {
		c.FetchTimeout = time.Duration(fc.FetchTimeoutSec) * time.Second
	}
	if fc.LLMTimeoutSec > 0 {
		c.LLMTimeout = time.Duration(fc.LLMTimeoutSec) * time.Second
	}
	if fc.MaxRetries > 0 {
		c.MaxRetries = fc.MaxRetries
	}
	if fc.RetryDelaySec > 0 {
		c.RetryDelay = time.Duration(fc.RetryDelaySec) * time.Second
	}
	return nil
}

func (c *Config) applyEnv() {
	c.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLMProvider = v
	}
	if v := os.Getenv("NEWS_SOURCE"); v != "" {
		c.NewsSource = v
	}
	if v := os.Getenv("WORKERS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.Workers = val
		}
	}
	if v := os.Getenv("FETCH_TIMEOUT_SEC"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("LLM_TIMEOUT_SEC"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.LLMTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.MaxRetries = val
		}
	}
	if v := os.Getenv("RETRY_DELAY_SEC"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.RetryDelay = time.Duration(val) * time.Second
		}
	}
}

func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of openai, anthropic, gemini (got %q)", c.LLMProvider)
	}
	switch c.NewsSource {
	case SourceNewsAPI, SourceGoogleNews:
	default:
		return fmt.Errorf("NEWS_SOURCE must be newsapi or googlenews (got %q)", c.NewsSource)
	}
	return nil
}

// LLMAPIKey returns the credential for the selected provider, naming the
// missing variable when unset.
func (c *Config) LLMAPIKey() (string, error) {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return "", fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return c.OpenAIAPIKey, nil
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return "", fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return c.AnthropicAPIKey, nil
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return "", fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return c.GeminiAPIKey, nil
	}
	return "", fmt.Errorf("unknown LLM provider %q", c.LLMProvider)
}
