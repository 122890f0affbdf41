package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"crosscheck/internal/translate"
	"crosscheck/pkg/news"
)

var (
	translateTo    string
	translateLimit int
	translateText  string
)

var translateCmd = &cobra.Command{
	Use:   "translate [query]",
	Short: "Translate matching headlines, or --text directly",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if translateTo == "" {
			log.Fatalf("--to is required")
		}

		var items []string
		switch {
		case translateText != "":
			items = []string{translateText}
		case len(args) == 1:
			client := newNewsClient()
			articles, err := client.Search(ctx, args[0], news.SearchOptions{PageSize: translateLimit})
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

		llmClient, cleanup := newLLMClient(ctx)
		defer cleanup()
		translator := translate.NewTranslator(llmClient, cfg.LLMTimeout)

		translated, err := translator.TranslateAll(ctx, items, translateTo, retryPolicy())
		if err != nil {
			log.Fatalf("error translating: %v", err)
		}

		for i, original := range items {
			fmt.Printf("%s\n  -> %s\n", original, translated[i])
		}
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateTo, "to", "", "target language, e.g. Spanish")
	translateCmd.Flags().IntVar(&translateLimit, "limit", 10, "maximum number of headlines")
	translateCmd.Flags().StringVar(&translateText, "text", "", "translate this text instead of search results")
	rootCmd.AddCommand(translateCmd)
}
