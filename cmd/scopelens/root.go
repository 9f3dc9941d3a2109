package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scopelens/scopelens/internal/common"
	"github.com/scopelens/scopelens/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "scopelens",
	Short: "Extract milestone breakdowns from project scope documents",
	Long: `scopelens turns loosely structured scope documents (Excel, PDF, plain text)
into a normalized milestone breakdown with effort and cost estimates.

Uploads are processed locally by a heuristic extraction engine; a remote
extractor is used instead when GEMINI_API_KEY is set.`,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info logging")
	cobra.OnInitialize(func() {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})
}

// openStore opens the history database from the environment configuration.
func openStore() (*history.Store, error) {
	cfg := common.LoadConfig()
	return history.Open(cfg.History.Path, cfg.History.Cap, slog.Default())
}
