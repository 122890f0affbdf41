package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"crosscheck/internal/report"
	"crosscheck/internal/sentiment"
	"crosscheck/pkg/news"
)

var (
	sentimentStrategy string
	sentimentLimit    int
	sentimentText     string
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [query]",
	Short: "Score sentiment of matching headlines, or of --text directly",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		var items []string
		switch {
		case sentimentText != "":
			items = []string{sentimentText}
		case len(args) == 1:
			client := newNewsClient()
			articles, err := client.Search(ctx, args[0], news.SearchOptions{PageSize: sentimentLimit})
			if err != nil {
				log.Fatalf("error searching articles: %v", err)
			}
			if len(articles) == 0 {
				log.Fatalf("no articles found for %q", args[0])
			}
			items = titlesOf(articles)
		default:
			log.Fatalf("provide a search query or --text")
		}

		var analyzer sentiment.Analyzer
		switch sentimentStrategy {
		case "llm":
			llmClient, cleanup := newLLMClient(ctx)
			defer cleanup()
			analyzer = sentiment.NewLLMAnalyzer(llmClient, cfg.LLMTimeout)
		case "lexicon":
			analyzer = sentiment.LexiconAnalyzer{}
		default:
			log.Fatalf("unknown sentiment strategy %q (use lexicon or llm)", sentimentStrategy)
		}

		results, err := sentiment.AnalyzeAll(ctx, analyzer, items, retryPolicy())
		if err != nil {
			log.Fatalf("error analyzing sentiment: %v", err)
		}

		fmt.Print(report.Sentiments(items, results))
	},
}

func init() {
	sentimentCmd.Flags().StringVar(&sentimentStrategy, "strategy", "lexicon", "analysis strategy: lexicon or llm")
	sentimentCmd.Flags().IntVar(&sentimentLimit, "limit", 20, "maximum number of headlines")
	sentimentCmd.Flags().StringVar(&sentimentText, "text", "", "analyze this text instead of search results")
	rootCmd.AddCommand(sentimentCmd)
}
