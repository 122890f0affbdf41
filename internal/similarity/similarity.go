package similarity

import (
	"context"
	"fmt"
	"log/slog"
)

// MaxLLMArticles caps a batch for pairwise model scoring; 25 articles bounds
// the pair count to 300 calls.
const MaxLLMArticles = 25

type Document struct {
	Title string
	Text  string
}

type Strategy interface {
	Name() string
	// Limit is the largest batch the strategy scores; 0 means unbounded.
	Limit() int
	Score(ctx context.Context, docs []Document) (*Matrix, error)
}

// ArticleScore is one result row. Comparisons counts the valid pairwise
// entries behind Score; zero means Score is the 0 fallback rather than a
// measured value.
type ArticleScore struct {
	Index       int
	Title       string
	Score       float64
	Comparisons int
}

func (s ArticleScore) NoData() bool {
	return s.Comparisons == 0
}

type Result struct {
	Articles []ArticleScore
	Overall  float64
	Strategy string
}

// Compute scores a document batch with the given strategy and aggregates
// per-article and overall means. Row order always matches input order;
// batches over the strategy's limit are truncated, never reordered.
func Compute(ctx context.Context, docs []Document, strat Strategy) (*Result, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("similarity: no documents to compare")
	}

	if lim := strat.Limit(); lim > 0 && len(docs) > lim {
		slog.Info("truncating batch for pairwise scoring",
			"strategy", strat.Name(), "limit", lim, "documents", len(docs))
		docs = docs[:lim]
	}

	matrix, err := strat.Score(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	articles := make([]ArticleScore, len(docs))
	for i, doc := range docs {
		mean, count := matrix.RowMean(i)
		articles[i] = ArticleScore{
			Index:       i,
			Title:       doc.Title,
			Score:       mean,
			Comparisons: count,
		}
	}

	return &Result{
		Articles: articles,
		Overall:  matrix.UpperMean(),
		Strategy: strat.Name(),
	}, nil
}
