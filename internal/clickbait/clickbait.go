package clickbait

import (
	"context"
)

const (
	Yes = "Yes"
	No  = "No"
)

// Detector labels a headline Yes or No. Implementations absorb their own
// failures; an undecidable title comes back No.
type Detector interface {
	Classify(ctx context.Context, title string) string
	Name() string
}

type Result struct {
	Title     string
	Clickbait string
}

// ClassifyAll labels every title in input order.
func ClassifyAll(ctx context.Context, det Detector, titles []string) []Result {
	results := make([]Result, len(titles))
	for i, title := range titles {
		results[i] = Result{
			Title:     title,
			Clickbait: det.Classify(ctx, title),
		}
	}
	return results
}
