package main

import (
	"context"
	"log"
	"strings"

	"crosscheck/internal/config"
	"crosscheck/internal/retry"
	"crosscheck/pkg/llm"
	"crosscheck/pkg/news"
)

func newNewsClient() news.NewsClient {
	switch cfg.NewsSource {
	case config.SourceGoogleNews:
		return news.NewGoogleNewsClient()
	default:
		if cfg.NewsAPIKey == "" {
			log.Fatalf("NEWS_API_KEY is not set")
		}
		return news.NewNewsAPIClient(cfg.NewsAPIKey)
	}
}

// newLLMClient builds the configured provider. The returned cleanup must
// run once the client is no longer needed.
func newLLMClient(ctx context.Context) (llm.LLMClient, func()) {
	key, err := cfg.LLMAPIKey()
	if err != nil {
		log.Fatalf("error resolving LLM credentials: %v", err)
	}

	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return llm.NewAnthropicClient(key), func() {}
	case config.ProviderGemini:
		client, err := llm.NewGeminiClient(ctx, key)
		if err != nil {
			log.Fatalf("error creating gemini client: %v", err)
		}
		return client, func() { _ = client.Close() }
	default:
		return llm.NewOpenAIClient(key), func() {}
	}
}

func retryPolicy() retry.Config {
	return retry.Config{MaxAttempts: cfg.MaxRetries, Delay: cfg.RetryDelay}
}

// articleText picks the richest text available for an article.
func articleText(a news.Article) string {
	for _, s := range []string{a.FullContent, a.Content, a.Description} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return a.Title
}

func titlesOf(articles []news.Article) []string {
	titles := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = a.Title
	}
	return titles
}
