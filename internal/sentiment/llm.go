package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"crosscheck/pkg/llm"
)

const defaultCallTimeout = 30 * time.Second

const analyzeSystemPrompt = `You analyze the sentiment of a piece of text.

Respond with a JSON object containing exactly these fields:
- "score": a number between -1 (very negative) and 1 (very positive)
- "label": one of "Positive", "Negative" or "Neutral"
- "details": a one-sentence explanation

Return only the JSON object.`

// LLMAnalyzer asks a model for a strict JSON verdict. Unlike the advisory
// classifiers, a malformed or incomplete reply is a hard failure.
type LLMAnalyzer struct {
	client      llm.LLMClient
	callTimeout time.Duration
}

func NewLLMAnalyzer(client llm.LLMClient, callTimeout time.Duration) *LLMAnalyzer {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &LLMAnalyzer{client: client, callTimeout: callTimeout}
}

func (a *LLMAnalyzer) Name() string {
	return "llm"
}

// Pointer fields distinguish a missing key from a zero value.
type sentimentReply struct {
	Score   *float64 `json:"score"`
	Label   *string  `json:"label"`
	Details *string  `json:"details"`
}

func (a *LLMAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()

	reply, err := a.client.Complete(callCtx, llm.Request{
		System:      analyzeSystemPrompt,
		User:        text,
		Temperature: 0,
		MaxTokens:   256,
	})
	if err != nil {
		return Result{}, fmt.Errorf("sentiment analysis failed: %w", err)
	}

	var parsed sentimentReply
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(reply)), &parsed); err != nil {
		return Result{}, fmt.Errorf("malformed sentiment reply %q: %w", reply, err)
	}
	if parsed.Score == nil || parsed.Label == nil || parsed.Details == nil {
		return Result{}, fmt.Errorf("sentiment reply missing required fields: %q", reply)
	}

	label, err := normalizeLabel(*parsed.Label)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score:   math.Max(-1, math.Min(1, *parsed.Score)),
		Label:   label,
		Details: *parsed.Details,
	}, nil
}

func normalizeLabel(raw string) (string, error) {
	for _, label := range []string{LabelPositive, LabelNegative, LabelNeutral} {
		if strings.EqualFold(strings.TrimSpace(raw), label) {
			return label, nil
		}
	}
	return "", fmt.Errorf("unrecognized sentiment label %q", raw)
}
