package report

import (
	"fmt"
	"strings"

	"crosscheck/internal/clickbait"
	"crosscheck/internal/sentiment"
	"crosscheck/internal/similarity"
	"crosscheck/pkg/news"
)

const separator = "------------------------------------------------------------"

const maxTitleWidth = 70

// Articles renders a numbered result list with source and timestamp lines.
func Articles(articles []news.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d articles\n%s\n", len(articles), separator)
	for i, a := range articles {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, a.Title)
		source := a.Publisher
		if source == "" {
			source = a.Source
		}
		if !a.PublishedAt.IsZero() {
			fmt.Fprintf(&b, "    %s | %s\n", source, a.PublishedAt.Format("2006-01-02 15:04"))
		} else if source != "" {
			fmt.Fprintf(&b, "    %s\n", source)
		}
		if a.Description != "" {
			fmt.Fprintf(&b, "    %s\n", truncate(a.Description, 160))
		}
		if a.URL != "" {
			fmt.Fprintf(&b, "    %s\n", a.URL)
		}
	}
	return b.String()
}

// Similarity renders per-article rows in input order, the overall mean and
// a note for articles whose text could not be fetched.
func Similarity(res *similarity.Result, fetchFailures int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pairwise similarity (%s strategy)\n%s\n", res.Strategy, separator)
	for _, a := range res.Articles {
		score := "no data"
		if !a.NoData() {
			score = fmt.Sprintf("%.3f", a.Score)
		}
		fmt.Fprintf(&b, "%3d  %-7s  %s\n", a.Index+1, score, truncate(a.Title, maxTitleWidth))
	}
	fmt.Fprintf(&b, "%s\nOverall similarity: %.3f\n", separator, res.Overall)
	if fetchFailures > 0 {
		fmt.Fprintf(&b, "Note: %d article(s) could not be fetched; fallback text was compared instead.\n", fetchFailures)
	}
	return b.String()
}

// Clickbait renders one verdict per title and a flagged-count footer.
func Clickbait(results []clickbait.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clickbait check\n%s\n", separator)
	var flagged int
	for _, r := range results {
		if r.Clickbait == clickbait.Yes {
			flagged++
		}
		fmt.Fprintf(&b, "  %-3s  %s\n", r.Clickbait, truncate(r.Title, maxTitleWidth))
	}
	fmt.Fprintf(&b, "%s\n%d of %d flagged as clickbait\n", separator, flagged, len(results))
	return b.String()
}

// Sentiments renders per-item scores followed by a label distribution.
func Sentiments(items []string, results []sentiment.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sentiment analysis\n%s\n", separator)

	counts := map[string]int{}
	for i, r := range results {
		counts[r.Label]++
		item := ""
		if i < len(items) {
			item = truncate(items[i], maxTitleWidth)
		}
		fmt.Fprintf(&b, "  [%-8s %+.3f]  %s\n", r.Label, r.Score, item)
		if r.Details != "" {
			fmt.Fprintf(&b, "      %s\n", r.Details)
		}
	}

	fmt.Fprintf(&b, "%s\nLabel distribution:\n", separator)
	for _, label := range []string{sentiment.LabelPositive, sentiment.LabelNeutral, sentiment.LabelNegative} {
		fmt.Fprintf(&b, "  %-8s %s %d\n", label, strings.Repeat("#", counts[label]), counts[label])
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
