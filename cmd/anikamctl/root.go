package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamdevo/AniKam/internal/browse"
	"github.com/kamdevo/AniKam/internal/jikan"
)

var (
	flagBaseURL string
	flagSpacing time.Duration
	flagLimit   int
	flagPage    int
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "anikamctl",
	Short: "Browse the AniKam anime and manga catalog",
	Long: `anikamctl talks to the Jikan/MyAnimeList API with request pacing,
retries and a response cache, and prints results as tables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		configureColors()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", jikan.DefaultBaseURL, "Jikan API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagSpacing, "spacing", jikan.DefaultMinSpacing, "minimum gap between upstream requests")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 15, "results per page")
	rootCmd.PersistentFlags().IntVar(&flagPage, "page", 1, "result page")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(searchCmd, topCmd, seasonCmd, infoCmd, randomCmd)
}

// newService builds a browse service over a fresh client. CLI runs are
// one-shot, so logging is off and the connectivity monitor is idle.
func newService() *browse.Service {
	client := jikan.New(jikan.Options{
		BaseURL:    flagBaseURL,
		MinSpacing: flagSpacing,
		Logger:     zap.NewNop(),
	})
	return browse.New(client, zap.NewNop(), nil)
}
