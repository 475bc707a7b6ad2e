package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/analysis"
	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/history"
	"github.com/passforge/passforge/internal/logging"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze password strength",
		Long: `Analyze one or more passwords and report a 0-4 strength score,
an entropy estimate, crack time estimates across attack scenarios,
and suggestions for improvement.

Examples:
  passforge analyze --password hunter2
  passforge analyze --password hunter2 --user-inputs max,1999
  passforge analyze --batch passwords.txt --json
  passforge analyze --password hunter2 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			password, _ := cmd.Flags().GetString("password")
			batchPath, _ := cmd.Flags().GetString("batch")
			userInputs, _ := cmd.Flags().GetStringSlice("user-inputs")
			save, _ := cmd.Flags().GetBool("save")
			jsonOut, _ := cmd.Flags().GetBool("json")

			if password == "" && batchPath == "" {
				return fmt.Errorf("either --password or --batch is required")
			}
			if password != "" && batchPath != "" {
				return fmt.Errorf("cannot specify both --password and --batch")
			}

			passwords := []string{password}
			if batchPath != "" {
				passwords, err = readBatchFile(batchPath)
				if err != nil {
					return err
				}
				if len(passwords) == 0 {
					return fmt.Errorf("batch file %s contains no passwords", batchPath)
				}
			}

			analyzer := analysis.NewAnalyzer()
			reports := make([]*analysis.Report, 0, len(passwords))
			for _, p := range passwords {
				report, err := analyzer.Analyze(p, userInputs)
				if err != nil {
					return fmt.Errorf("failed to analyze password: %w", err)
				}
				reports = append(reports, report)
			}

			if save && cfg.History.Enabled {
				logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
				saveAnalyses(cmd, cfg, logger, reports)
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				if batchPath != "" {
					return enc.Encode(reports)
				}
				return enc.Encode(reports[0])
			}

			for i, report := range reports {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), analysis.FormatReport(report))
			}
			return nil
		},
	}

	cmd.Flags().String("password", "", "Password to analyze")
	cmd.Flags().String("batch", "", "File of passwords to analyze, one per line")
	cmd.Flags().StringSlice("user-inputs", nil, "Personal context strings that weaken the password")
	cmd.Flags().Bool("save", false, "Record the analysis (SHA-256 digest only) in the history store")

	return cmd
}

// readBatchFile reads passwords one per line, skipping blank lines.
// Leading and trailing whitespace on a line is preserved; only fully blank
// lines are dropped.
func readBatchFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return passwords, nil
}

// saveAnalyses records password digests and scores. Recording is
// best-effort; failures are logged and never fail the analysis.
func saveAnalyses(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, reports []*analysis.Report) {
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

	for _, report := range reports {
		a := history.Analysis{
			PasswordSHA256: history.HashPassword(report.Password),
			Score:          report.Score,
			EntropyBits:    report.EntropyBits,
			Warning:        report.Warning,
		}
		if _, err := store.RecordAnalysis(cmd.Context(), a); err != nil {
			logger.Warn("failed to record analysis", "error", err)
		}
	}
}
