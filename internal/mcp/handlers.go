package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/passforge/passforge/internal/history"
	"github.com/passforge/passforge/internal/wordlist"
)

// registerTools registers all passforge tools with the MCP server.
func (s *Server) registerTools() error {
	// Register generate_wordlist tool
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "generate_wordlist",
		Description: "Generate a targeted password wordlist from seed tokens (names, dates, pet names)",
	}, s.handleGenerateWordlist)

	// Register analyze_password tool
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "analyze_password",
		Description: "Analyze password strength and estimate crack times across attack scenarios",
	}, s.handleAnalyzePassword)

	return nil
}

// handleGenerateWordlist implements the generate_wordlist tool.
func (s *Server) handleGenerateWordlist(ctx context.Context, req *sdk.CallToolRequest, args GenerateWordlistInput) (*sdk.CallToolResult, GenerateWordlistOutput, error) {
	if len(args.Inputs) == 0 {
		return nil, GenerateWordlistOutput{}, fmt.Errorf("at least one input token is required")
	}

	// Config supplies the defaults; explicit arguments override them.
	opts := wordlist.Options{
		Inputs:      args.Inputs,
		Years:       args.Years,
		Leet:        args.Leet,
		Case:        args.Case,
		Suffixes:    args.Suffixes,
		Separators:  s.cfg.Generate.Separators,
		MaxPerCombo: s.cfg.Generate.MaxPerCombo,
		MaxWords:    s.cfg.Generate.MaxWords,
	}
	if len(args.Separators) > 0 {
		opts.Separators = args.Separators
	}
	if args.MaxPerCombo != 0 {
		opts.MaxPerCombo = args.MaxPerCombo
	}
	if args.MaxWords != 0 {
		opts.MaxWords = args.MaxWords
	}

	res := wordlist.Run(opts)

	if s.history != nil {
		run := history.Run{
			Inputs:      args.Inputs,
			Years:       args.Years,
			Separators:  opts.Separators,
			Leet:        opts.Leet,
			Case:        opts.Case,
			Suffixes:    opts.Suffixes,
			MaxPerCombo: opts.MaxPerCombo,
			MaxWords:    opts.MaxWords,
			WordCount:   len(res.Words),
			Truncated:   res.Truncated,
		}
		// Recording is best-effort; a history failure must not fail the
		// tool call.
		_, _ = s.history.RecordRun(ctx, run)
	}

	return nil, GenerateWordlistOutput{
		Words:     res.Words,
		Count:     len(res.Words),
		Total:     res.Total,
		Truncated: res.Truncated,
	}, nil
}

// handleAnalyzePassword implements the analyze_password tool.
func (s *Server) handleAnalyzePassword(ctx context.Context, req *sdk.CallToolRequest, args AnalyzePasswordInput) (*sdk.CallToolResult, AnalyzePasswordOutput, error) {
	if args.Password == "" {
		return nil, AnalyzePasswordOutput{}, fmt.Errorf("password is required")
	}

	report, err := s.analyzer.Analyze(args.Password, args.UserInputs)
	if err != nil {
		return nil, AnalyzePasswordOutput{}, fmt.Errorf("failed to analyze password: %w", err)
	}

	if args.Save && s.history != nil {
		a := history.Analysis{
			PasswordSHA256: history.HashPassword(args.Password),
			Score:          report.Score,
			EntropyBits:    report.EntropyBits,
			Warning:        report.Warning,
		}
		_, _ = s.history.RecordAnalysis(ctx, a)
	}

	crackTimes := make([]CrackTimeItem, 0, len(report.CrackTimes))
	for _, ct := range report.CrackTimes {
		crackTimes = append(crackTimes, CrackTimeItem{Scenario: ct.Scenario, Display: ct.Display})
	}

	return nil, AnalyzePasswordOutput{
		Score:       report.Score,
		EntropyBits: report.EntropyBits,
		CrackTimes:  crackTimes,
		Warning:     report.Warning,
		Suggestions: report.Suggestions,
	}, nil
}
