package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"crosscheck/internal/report"
)

var headlinesLimit int

var headlinesCmd = &cobra.Command{
	Use:   "headlines [category]",
	Short: "Show top headlines, optionally for one category",
	Long: `Shows current top headlines. Category is one of world, nation,
business, technology, entertainment, sports, science, health.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newNewsClient()

		category := ""
		if len(args) > 0 {
			category = args[0]
		}

		articles, err := client.TopHeadlines(cmd.Context(), category, headlinesLimit)
		if err != nil {
			log.Fatalf("error fetching headlines: %v", err)
		}

		fmt.Print(report.Articles(articles))
	},
}

func init() {
	headlinesCmd.Flags().IntVar(&headlinesLimit, "limit", 20, "maximum number of results")
	rootCmd.AddCommand(headlinesCmd)
}
