package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"crosscheck/internal/clickbait"
	"crosscheck/internal/report"
	"crosscheck/pkg/news"
)

var (
	clickbaitStrategy string
	clickbaitLimit    int
)

var clickbaitCmd = &cobra.Command{
	Use:   "clickbait <query>",
	Short: "Label headlines matching a query as clickbait or not",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := newNewsClient()
		articles, err := client.Search(ctx, args[0], news.SearchOptions{PageSize: clickbaitLimit})
		if err != nil {
			log.Fatalf("error searching articles: %v", err)
		}
		if len(articles) == 0 {
			log.Fatalf("no articles found for %q", args[0])
		}

		var det clickbait.Detector
		switch clickbaitStrategy {
		case "llm":
			llmClient, cleanup := newLLMClient(ctx)
			defer cleanup()
			det = clickbait.NewLLMDetector(llmClient, cfg.LLMTimeout)
		case "keyword":
			det = clickbait.KeywordDetector{}
		default:
			log.Fatalf("unknown clickbait strategy %q (use keyword or llm)", clickbaitStrategy)
		}

		results := clickbait.ClassifyAll(ctx, det, titlesOf(articles))
		fmt.Print(report.Clickbait(results))
	},
}

func init() {
	clickbaitCmd.Flags().StringVar(&clickbaitStrategy, "strategy", "keyword", "detection strategy: keyword or llm")
	clickbaitCmd.Flags().IntVar(&clickbaitLimit, "limit", 20, "maximum number of headlines")
	rootCmd.AddCommand(clickbaitCmd)
}
