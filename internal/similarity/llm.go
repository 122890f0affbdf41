package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"crosscheck/pkg/llm"
)

const (
	defaultWorkers     = 5
	defaultCallTimeout = 30 * time.Second

	// maxPairChars caps each article's share of the pair prompt.
	maxPairChars = 6000
)

const pairSystemPrompt = `You compare two news articles and rate how similar their stories are.

Reply with a single number between 0 and 1, where 0 means entirely unrelated and 1 means the same story. No words, no explanation, just the number.`

// LLMStrategy scores every unordered pair with one completion call,
// dispatched across a bounded worker pool.
type LLMStrategy struct {
	client      llm.LLMClient
	workers     int
	callTimeout time.Duration
}

func NewLLMStrategy(client llm.LLMClient, workers int, callTimeout time.Duration) *LLMStrategy {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &LLMStrategy{
		client:      client,
		workers:     workers,
		callTimeout: callTimeout,
	}
}

func (s *LLMStrategy) Name() string {
	return "llm"
}

func (s *LLMStrategy) Limit() int {
	return MaxLLMArticles
}

func (s *LLMStrategy) Score(ctx context.Context, docs []Document) (*Matrix, error) {
	matrix := NewMatrix(len(docs))

	type pair struct{ i, j int }
	jobs := make(chan pair, len(docs)*(len(docs)-1)/2)
	var wg sync.WaitGroup

	// Each pair owns its two mirrored cells, so workers write without a lock.
	for w := 0; w < s.workers; w++ {
		go func() {
			for p := range jobs {
				score, err := s.scorePair(ctx, docs[p.i], docs[p.j])
				if err != nil {
					// Missing, not zero: a failed pair must not drag the aggregate down.
					slog.Warn("pair scoring failed", "i", p.i, "j", p.j, "error", err)
					matrix.SetPair(p.i, p.j, math.NaN())
				} else {
					matrix.SetPair(p.i, p.j, score)
				}
				wg.Done()
			}
		}()
	}

	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			wg.Add(1)
			jobs <- pair{i, j}
		}
	}
	close(jobs)
	wg.Wait()

	return matrix, nil
}

func (s *LLMStrategy) scorePair(ctx context.Context, a, b Document) (float64, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	reply, err := s.client.Complete(callCtx, llm.Request{
		System:      pairSystemPrompt,
		User:        fmt.Sprintf("Article 1:\n%s\n\nArticle 2:\n%s", pairText(a), pairText(b)),
		Temperature: 0,
		MaxTokens:   16,
	})
	if err != nil {
		return 0, err
	}

	raw := strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), "`"))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable similarity reply %q: %w", reply, err)
	}

	return math.Max(0, math.Min(1, value)), nil
}

func pairText(d Document) string {
	text := d.Text
	if text == "" {
		text = d.Title
	}
	runes := []rune(text)
	if len(runes) > maxPairChars {
		text = string(runes[:maxPairChars])
	}
	return text
}
