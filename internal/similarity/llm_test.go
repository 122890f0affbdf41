package similarity

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"crosscheck/pkg/llm"
)

type fakeLLM struct {
	reply func(req llm.Request) (string, error)
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	return f.reply(req)
}

func (f *fakeLLM) Name() string {
	return "fake"
}

func TestLLMStrategyPopulatesSymmetricMatrix(t *testing.T) {
	client := &fakeLLM{reply: func(llm.Request) (string, error) {
		return "0.75", nil
	}}
	strat := NewLLMStrategy(client, 2, time.Second)

	docs := []Document{
		{Title: "a", Text: "first story"},
		{Title: "b", Text: "second story"},
		{Title: "c", Text: "third story"},
	}
	matrix, err := strat.Score(context.Background(), docs)

	assert.Equal(t, nil, err)
	for i := 0; i < matrix.Size(); i++ {
		if !math.IsNaN(matrix.At(i, i)) {
			t.Errorf("diagonal (%d,%d) = %f, want NaN", i, i, matrix.At(i, i))
		}
		for j := i + 1; j < matrix.Size(); j++ {
			assert.Equal(t, 0.75, matrix.At(i, j))
			assert.Equal(t, 0.75, matrix.At(j, i))
		}
	}
}

func TestLLMStrategyParsesAndClampsReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  float64
	}{
		{"plain", "0.6", 0.6},
		{"padded", "  0.6\n", 0.6},
		{"backticked", "`0.6`", 0.6},
		{"above range", "1.4", 1},
		{"below range", "-0.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeLLM{reply: func(llm.Request) (string, error) {
				return tt.reply, nil
			}}
			strat := NewLLMStrategy(client, 1, time.Second)

			score, err := strat.scorePair(context.Background(), Document{Text: "x"}, Document{Text: "y"})

			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestLLMStrategyUnparseableReplyIsMissing(t *testing.T) {
	client := &fakeLLM{reply: func(llm.Request) (string, error) {
		return "pretty similar", nil
	}}
	strat := NewLLMStrategy(client, 1, time.Second)

	matrix, err := strat.Score(context.Background(), []Document{
		{Title: "a", Text: "one"},
		{Title: "b", Text: "two"},
	})

	assert.Equal(t, nil, err)
	if !math.IsNaN(matrix.At(0, 1)) {
		t.Errorf("unparseable reply stored %f, want NaN", matrix.At(0, 1))
	}
}

func TestComputeLLMCapsBatch(t *testing.T) {
	client := &fakeLLM{reply: func(llm.Request) (string, error) {
		return "0.5", nil
	}}
	strat := NewLLMStrategy(client, 4, time.Second)

	docs := make([]Document, 30)
	for i := range docs {
		docs[i] = Document{Title: fmt.Sprintf("article %d", i), Text: "body"}
	}

	res, err := Compute(context.Background(), docs, strat)

	assert.Equal(t, nil, err)
	assert.Equal(t, MaxLLMArticles, len(res.Articles))
	assert.Equal(t, 0.5, res.Overall)
	for _, a := range res.Articles {
		assert.Equal(t, MaxLLMArticles-1, a.Comparisons)
	}
}

func TestComputeFailedPairsLeaveRowWithoutData(t *testing.T) {
	client := &fakeLLM{reply: func(req llm.Request) (string, error) {
		if strings.Contains(req.User, "UNREACHABLE") {
			return "", fmt.Errorf("boom")
		}
		return "0.9", nil
	}}
	strat := NewLLMStrategy(client, 2, time.Second)

	docs := []Document{
		{Title: "a", Text: "a story"},
		{Title: "b", Text: "UNREACHABLE"},
		{Title: "c", Text: "c story"},
	}
	res, err := Compute(context.Background(), docs, strat)

	assert.Equal(t, nil, err)

	assert.Equal(t, 0.9, res.Articles[0].Score)
	assert.Equal(t, 1, res.Articles[0].Comparisons)

	assert.Equal(t, 0.0, res.Articles[1].Score)
	assert.Equal(t, 0, res.Articles[1].Comparisons)
	assert.Equal(t, true, res.Articles[1].NoData())

	assert.Equal(t, 0.9, res.Overall)
}

func TestPairText(t *testing.T) {
	assert.Equal(t, "only title", pairText(Document{Title: "only title"}))
	assert.Equal(t, "body wins", pairText(Document{Title: "t", Text: "body wins"}))

	long := strings.Repeat("x", maxPairChars+500)
	if got := len([]rune(pairText(Document{Text: long}))); got != maxPairChars {
		t.Errorf("truncated length = %d, want %d", got, maxPairChars)
	}
}
