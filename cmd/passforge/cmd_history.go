package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs and analyses",
		Long: `List past wordlist generation runs, or past password analyses with
--analyses. Analyses store only a SHA-256 digest, never the password.

Examples:
  passforge history
  passforge history --limit 5
  passforge history --analyses --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			showAnalyses, _ := cmd.Flags().GetBool("analyses")
			limit, _ := cmd.Flags().GetInt("limit")
			jsonOut, _ := cmd.Flags().GetBool("json")

			path, err := historyPath(cfg)
			if err != nil {
				return fmt.Errorf("failed to resolve history path: %w", err)
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if jsonOut {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
						"runs": []any{}, "analyses": []any{}, "count": 0,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
				return nil
			}

			store, err := history.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			if showAnalyses {
				return listAnalyses(cmd, store, limit, jsonOut)
			}
			return listRuns(cmd, store, limit, jsonOut)
		},
	}

	cmd.Flags().Bool("analyses", false, "List analyses instead of generation runs")
	cmd.Flags().Int("limit", 20, "Maximum entries to show, 0 for all")

	return cmd
}

func listRuns(cmd *cobra.Command, store *history.Store, limit int, jsonOut bool) error {
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"runs":  runs,
			"count": len(runs),
		})
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No generation runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		truncated := ""
		if run.Truncated {
			truncated = " (truncated)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s  inputs=%s  words=%d%s\n",
			run.ID,
			run.CreatedAt.Local().Format(time.DateTime),
			strings.Join(run.Inputs, ","),
			run.WordCount,
			truncated,
		)
	}
	return nil
}

func listAnalyses(cmd *cobra.Command, store *history.Store, limit int, jsonOut bool) error {
	analyses, err := store.ListAnalyses(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"analyses": analyses,
			"count":    len(analyses),
		})
	}

	if len(analyses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No analyses recorded yet.")
		return nil
	}

	for _, a := range analyses {
		fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s  sha256=%s...  score=%d/4\n",
			a.ID,
			a.CreatedAt.Local().Format(time.DateTime),
			a.PasswordSHA256[:12],
			a.Score,
		)
	}
	return nil
}
