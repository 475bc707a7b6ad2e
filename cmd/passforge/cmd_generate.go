package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/history"
	"github.com/passforge/passforge/internal/logging"
	"github.com/passforge/passforge/internal/output"
	"github.com/passforge/passforge/internal/wordlist"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a targeted password wordlist",
		Long: `Generate candidate passwords from seed tokens: names, birth years,
pet names, and other personal context.

Tokens are expanded with case variants and leet-speak substitutions,
combined with separators, and suffixed with years and common endings.
Output is sorted shortest-first and deduplicated.

Examples:
  passforge generate --inputs Max,1999
  passforge generate --inputs alice,bob --years 2023,2024 --leet --case
  passforge generate --inputs Max --suffixes --max-words 1000 --out words.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			inputs, _ := cmd.Flags().GetStringSlice("inputs")
			if len(inputs) == 0 {
				return fmt.Errorf("at least one input token is required (--inputs)")
			}

			years, _ := cmd.Flags().GetStringSlice("years")
			outPath, _ := cmd.Flags().GetString("out")
			noRecord, _ := cmd.Flags().GetBool("no-record")
			jsonOut, _ := cmd.Flags().GetBool("json")

			// Config supplies the defaults; only flags the user actually set
			// override them.
			opts := wordlist.Options{
				Inputs:      inputs,
				Years:       years,
				Leet:        cfg.Generate.Leet,
				Case:        cfg.Generate.Case,
				Suffixes:    cfg.Generate.Suffixes,
				Separators:  cfg.Generate.Separators,
				MaxPerCombo: cfg.Generate.MaxPerCombo,
				MaxWords:    cfg.Generate.MaxWords,
			}
			if cmd.Flags().Changed("leet") {
				opts.Leet, _ = cmd.Flags().GetBool("leet")
			}
			if cmd.Flags().Changed("case") {
				opts.Case, _ = cmd.Flags().GetBool("case")
			}
			if cmd.Flags().Changed("suffixes") {
				opts.Suffixes, _ = cmd.Flags().GetBool("suffixes")
			}
			if cmd.Flags().Changed("seps") {
				opts.Separators, _ = cmd.Flags().GetStringSlice("seps")
			}
			if cmd.Flags().Changed("max-combo") {
				opts.MaxPerCombo, _ = cmd.Flags().GetInt("max-combo")
			}
			if cmd.Flags().Changed("max-words") {
				opts.MaxWords, _ = cmd.Flags().GetInt("max-words")
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			var trace *logging.RunLogger
			if dir, dirErr := config.Dir(); dirErr == nil {
				trace = logging.NewRunLogger(dir, cfg.Logging.Level)
			}
			defer trace.Close()

			res := wordlist.Run(opts)

			logger.Debug("wordlist generated",
				"base", res.Base,
				"expanded", res.Expanded,
				"combined", res.Combined,
				"total", res.Total,
				"truncated", res.Truncated,
			)
			trace.Log(map[string]any{
				"stage":     "pipeline",
				"base":      res.Base,
				"expanded":  res.Expanded,
				"combined":  res.Combined,
				"total":     res.Total,
				"truncated": res.Truncated,
			})

			if cfg.History.Enabled && !noRecord {
				recordGenerateRun(cmd, cfg, logger, opts, res, outPath)
			}

			if outPath != "" {
				if err := output.WriteFile(outPath, res.Words); err != nil {
					return fmt.Errorf("failed to write wordlist: %w", err)
				}
				if jsonOut {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
						"path":      outPath,
						"count":     len(res.Words),
						"total":     res.Total,
						"truncated": res.Truncated,
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", len(res.Words), outPath)
				return nil
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"words":     res.Words,
					"count":     len(res.Words),
					"total":     res.Total,
					"truncated": res.Truncated,
				})
			}

			return output.WriteLines(cmd.OutOrStdout(), res.Words)
		},
	}

	cmd.Flags().StringSlice("inputs", nil, "Seed tokens (comma-separated)")
	cmd.Flags().StringSlice("years", nil, "Years to append to every combination")
	cmd.Flags().Bool("leet", false, "Enable leet-speak substitutions (a->@, e->3, ...)")
	cmd.Flags().Bool("case", false, "Enable case variants (lower, UPPER, Capitalize)")
	cmd.Flags().Bool("suffixes", false, "Append common suffixes (!, 123, 2024, ...)")
	cmd.Flags().StringSlice("seps", nil, "Separators used when joining tokens")
	cmd.Flags().Int("max-combo", 0, "Maximum tokens per combination (minimum 1)")
	cmd.Flags().Int("max-words", 0, "Maximum words in the output, 0 for unlimited")
	cmd.Flags().String("out", "", "Write the wordlist to a file instead of stdout")
	cmd.Flags().Bool("no-record", false, "Skip recording this run in the history store")

	return cmd
}

// recordGenerateRun stores the run in the history database. Recording is
// best-effort; failures are logged and never fail the generation.
func recordGenerateRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, opts wordlist.Options, res wordlist.Result, outPath string) {
	path, err := historyPath(cfg)
	if err != nil {
		logger.Warn("failed to resolve history path", "error", err)
		return
	}

	store, err := history.Open(path)
	if err != nil {
		logger.Warn("failed to open history store", "error", err)
		return
	}
	defer store.Close()

	run := history.Run{
		Inputs:      opts.Inputs,
		Years:       opts.Years,
		Separators:  opts.Separators,
		Leet:        opts.Leet,
		Case:        opts.Case,
		Suffixes:    opts.Suffixes,
		MaxPerCombo: opts.MaxPerCombo,
		MaxWords:    opts.MaxWords,
		WordCount:   len(res.Words),
		Truncated:   res.Truncated,
		OutputPath:  outPath,
	}
	if _, err := store.RecordRun(cmd.Context(), run); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
