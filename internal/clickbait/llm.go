package clickbait

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"crosscheck/pkg/llm"
)

const defaultCallTimeout = 30 * time.Second

const classifySystemPrompt = `You judge whether a news headline is clickbait. Clickbait overstates or hides the story to bait clicks.

Reply with exactly one word: Yes or No.`

// LLMDetector asks a model for the verdict. The tag is advisory, so any
// failure or reply other than Yes degrades to No.
type LLMDetector struct {
	client      llm.LLMClient
	callTimeout time.Duration
}

func NewLLMDetector(client llm.LLMClient, callTimeout time.Duration) *LLMDetector {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &LLMDetector{client: client, callTimeout: callTimeout}
}

func (d *LLMDetector) Name() string {
	return "llm"
}

func (d *LLMDetector) Classify(ctx context.Context, title string) string {
	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	reply, err := d.client.Complete(callCtx, llm.Request{
		System:      classifySystemPrompt,
		User:        title,
		Temperature: 0,
		MaxTokens:   8,
	})
	if err != nil {
		slog.Warn("clickbait classification failed, defaulting to No",
			"title", title, "error", err)
		return No
	}

	verdict := strings.Trim(strings.TrimSpace(reply), "`.\"")
	if strings.EqualFold(verdict, Yes) {
		return Yes
	}
	return No
}
