package sentiment

import (
	"context"
	"fmt"

	"crosscheck/internal/retry"
	"crosscheck/pkg/llm"
)

const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Label thresholds around zero. Anything inside the band is Neutral.
const neutralBand = 0.05

type Result struct {
	Score   float64
	Label   string
	Details string
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
	Name() string
}

func labelFor(score float64) string {
	switch {
	case score > neutralBand:
		return LabelPositive
	case score < -neutralBand:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// AnalyzeAll scores every text in input order. Rate-limited calls are
// retried with exponential backoff; exhausting the retry budget, or any
// other failure, fails the whole batch with no partial results.
func AnalyzeAll(ctx context.Context, a Analyzer, texts []string, policy retry.Config) ([]Result, error) {
	results := make([]Result, len(texts))
	for i, text := range texts {
		var res Result
		err := retry.Do(ctx, policy, llm.IsRateLimit, func() error {
			var analyzeErr error
			res, analyzeErr = a.Analyze(ctx, text)
			return analyzeErr
		})
		if err != nil {
			return nil, fmt.Errorf("sentiment batch failed at item %d: %w", i, err)
		}
		results[i] = res
	}
	return results, nil
}
