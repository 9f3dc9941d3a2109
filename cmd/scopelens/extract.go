package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scopelens/scopelens/internal/common"
	"github.com/scopelens/scopelens/internal/llm"
	"github.com/scopelens/scopelens/internal/llm/gemini"
	"github.com/scopelens/scopelens/internal/pipeline"
)

var extractSave bool

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a milestone breakdown from a scope document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		cfg := common.LoadConfig()
		var remote llm.ProjectExtractor
		if cfg.LLM.APIKey != "" {
			remote = gemini.NewClient(gemini.Config{
				APIKey:  cfg.LLM.APIKey,
				BaseURL: cfg.LLM.BaseURL,
				Model:   cfg.LLM.Model,
				Timeout: cfg.LLM.Timeout,
			}, slog.Default())
		}
		processor := pipeline.NewProcessor(slog.Default(), remote)

		fileName := filepath.Base(path)
		mimeType := mime.TypeByExtension(filepath.Ext(path))
		project, err := processor.Extract(cmd.Context(), fileName, mimeType, data)
		if err != nil {
			return err
		}

		if extractSave {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()
			entry, err := store.Save(cmd.Context(), project)
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		}
		return printJSON(cmd, project)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "save the result to project history")
	rootCmd.AddCommand(extractCmd)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
