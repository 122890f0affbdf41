package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"crosscheck/internal/config"
)

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Search news and cross-check it for similarity, clickbait and sentiment",
	Long: `crosscheck queries news APIs and runs the results through a set of
analysis pipelines: pairwise story similarity, clickbait detection,
sentiment scoring and translation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		godotenv.Load()

		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("error loading configuration: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
