package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"crosscheck/internal/report"
	"crosscheck/internal/scrape"
	"crosscheck/internal/similarity"
	"crosscheck/pkg/news"
)

var (
	simStrategy string
	simLimit    int
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <query>",
	Short: "Score pairwise story similarity across articles matching a query",
	Long: `Searches for articles, fetches their full text and scores every pair
for similarity. The llm strategy asks a language model to rate each pair;
the vector strategy compares local term-frequency vectors and needs no API.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := newNewsClient()
		articles, err := client.Search(ctx, args[0], news.SearchOptions{PageSize: simLimit})
		if err != nil {
			log.Fatalf("error searching articles: %v", err)
		}
		if len(articles) == 0 {
			log.Fatalf("no articles found for %q", args[0])
		}

		scraper := scrape.NewScraper(cfg.FetchTimeout)
		failures := scraper.FillAll(ctx, articles)

		docs := make([]similarity.Document, len(articles))
		for i, a := range articles {
			docs[i] = similarity.Document{Title: a.Title, Text: articleText(a)}
		}

		strat, cleanup := newStrategy(ctx)
		defer cleanup()

		res, err := similarity.Compute(ctx, docs, strat)
		if err != nil {
			log.Fatalf("error computing similarity: %v", err)
		}

		fmt.Print(report.Similarity(res, failures))
	},
}

func newStrategy(ctx context.Context) (similarity.Strategy, func()) {
	switch simStrategy {
	case "llm":
		client, cleanup := newLLMClient(ctx)
		return similarity.NewLLMStrategy(client, cfg.Workers, cfg.LLMTimeout), cleanup
	case "vector":
		return similarity.VectorStrategy{}, func() {}
	default:
		log.Fatalf("unknown similarity strategy %q (use llm or vector)", simStrategy)
		return nil, nil
	}
}

func init() {
	similarityCmd.Flags().StringVar(&simStrategy, "strategy", "vector", "scoring strategy: llm or vector")
	similarityCmd.Flags().IntVar(&simLimit, "limit", 10, "maximum number of articles to compare")
	rootCmd.AddCommand(similarityCmd)
}
