package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"crosscheck/internal/report"
	"crosscheck/pkg/news"
)

var (
	searchFrom     string
	searchTo       string
	searchSortBy   string
	searchLanguage string
	searchLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search news articles by keyword",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newNewsClient()

		opts := news.SearchOptions{
			From:     parseDateFlag("from", searchFrom),
			To:       parseDateFlag("to", searchTo),
			SortBy:   searchSortBy,
			Language: searchLanguage,
			PageSize: searchLimit,
		}

		articles, err := client.Search(cmd.Context(), args[0], opts)
		if err != nil {
			log.Fatalf("error searching articles: %v", err)
		}

		fmt.Print(report.Articles(articles))
	},
}

func parseDateFlag(name, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("error parsing --%s: %v", name, err)
	}
	return t
}

func init() {
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "earliest publish date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "latest publish date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchSortBy, "sort", "", "sort order (relevancy, popularity, publishedAt)")
	searchCmd.Flags().StringVar(&searchLanguage, "language", "en", "two-letter article language")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
