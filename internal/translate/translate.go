package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crosscheck/internal/retry"
	"crosscheck/pkg/llm"
)

const defaultCallTimeout = 30 * time.Second

const translateSystemPrompt = `You translate text into %s.

Reply with only the translation. No commentary, no notes, no quotation marks around the output.`

type Translator struct {
	client      llm.LLMClient
	callTimeout time.Duration
}

func NewTranslator(client llm.LLMClient, callTimeout time.Duration) *Translator {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &Translator{client: client, callTimeout: callTimeout}
}

func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.callTimeout)
	defer cancel()

	reply, err := t.client.Complete(callCtx, llm.Request{
		System:      fmt.Sprintf(translateSystemPrompt, targetLang),
		User:        text,
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", fmt.Errorf("translation to %s failed: %w", targetLang, err)
	}
	return strings.TrimSpace(reply), nil
}

// TranslateAll translates every text in input order. Rate-limited calls
// are retried with exponential backoff; an exhausted budget fails the
// whole batch.
func (t *Translator) TranslateAll(ctx context.Context, texts []string, targetLang string, policy retry.Config) ([]string, error) {
	results := make([]string, len(texts))
	for i, text := range texts {
		var out string
		err := retry.Do(ctx, policy, llm.IsRateLimit, func() error {
			var trErr error
			out, trErr = t.Translate(ctx, text, targetLang)
			return trErr
		})
		if err != nil {
			return nil, fmt.Errorf("translation batch failed at item %d: %w", i, err)
		}
		results[i] = out
	}
	return results, nil
}
