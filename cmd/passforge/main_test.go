package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/config"
)

// newTestRootCmd creates a root command with persistent flags for testing
// subcommands.
func newTestRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "passforge",
	}
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file path")
	rootCmd.PersistentFlags().String("log-level", "", "Log level")
	return rootCmd
}

// isolateHome sets HOME to a temp directory to avoid touching the real
// ~/.passforge/. MUST be called for any test that loads config or records
// history.
func isolateHome(t *testing.T) string {
	t.Helper()
	tmpHome := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpHome)
	t.Cleanup(func() {
		os.Setenv("HOME", oldHome)
	})
	return tmpHome
}

func TestNewVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newVersionCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version", "--json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var out map[string]string
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if out["version"] != version {
		t.Errorf("version = %q, want %q", out["version"], version)
	}
}

func TestVersionCmd_Text(t *testing.T) {
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newVersionCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(buf.String(), version) {
		t.Errorf("expected version string in output, got %q", buf.String())
	}
}

func TestHistoryPath(t *testing.T) {
	home := isolateHome(t)

	cfg := config.Default()
	path, err := historyPath(cfg)
	if err != nil {
		t.Fatalf("historyPath failed: %v", err)
	}
	want := filepath.Join(home, ".passforge", "history.db")
	if path != want {
		t.Errorf("historyPath = %q, want %q", path, want)
	}

	cfg.History.Path = "/custom/history.db"
	path, err = historyPath(cfg)
	if err != nil {
		t.Fatalf("historyPath failed: %v", err)
	}
	if path != "/custom/history.db" {
		t.Errorf("historyPath = %q, want configured path", path)
	}
}

func TestLoadConfig_LogLevelFlagOverrides(t *testing.T) {
	isolateHome(t)

	rootCmd := newTestRootCmd()
	var got string
	rootCmd.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			got = cfg.Logging.Level
			return nil
		},
	})

	rootCmd.SetArgs([]string{"probe", "--log-level", "debug"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != "debug" {
		t.Errorf("log level = %q, want %q", got, "debug")
	}
}

func TestLoadConfig_InvalidLevelRejected(t *testing.T) {
	isolateHome(t)

	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadConfig(cmd)
			return err
		},
	})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetOut(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"probe", "--log-level", "loud"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
