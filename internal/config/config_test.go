package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	if !reflect.DeepEqual(config.Generate.Separators, []string{"", ".", "-", "_"}) {
		t.Errorf("unexpected default separators: %v", config.Generate.Separators)
	}
	if config.Generate.MaxPerCombo != 3 {
		t.Errorf("expected MaxPerCombo 3, got %d", config.Generate.MaxPerCombo)
	}
	if config.Generate.MaxWords != 50000 {
		t.Errorf("expected MaxWords 50000, got %d", config.Generate.MaxWords)
	}
	if config.Generate.Leet || config.Generate.Case || config.Generate.Suffixes {
		t.Error("expected expansion toggles to default off")
	}
	if !config.History.Enabled {
		t.Error("expected History.Enabled to be true by default")
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
generate:
  separators: ["", "-"]
  max_per_combo: 2
  max_words: 100
  leet: true
  case: true
  suffixes: true

history:
  enabled: false
  path: /tmp/custom.db
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if !reflect.DeepEqual(config.Generate.Separators, []string{"", "-"}) {
		t.Errorf("unexpected separators: %v", config.Generate.Separators)
	}
	if config.Generate.MaxPerCombo != 2 {
		t.Errorf("expected MaxPerCombo 2, got %d", config.Generate.MaxPerCombo)
	}
	if config.Generate.MaxWords != 100 {
		t.Errorf("expected MaxWords 100, got %d", config.Generate.MaxWords)
	}
	if !config.Generate.Leet || !config.Generate.Case || !config.Generate.Suffixes {
		t.Error("expected expansion toggles on")
	}
	if config.History.Enabled {
		t.Error("expected History.Enabled to be false")
	}
	if config.History.Path != "/tmp/custom.db" {
		t.Errorf("expected custom history path, got '%s'", config.History.Path)
	}
}

func TestLoadFromFile_EnvExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
history:
  path: ${TEST_HISTORY_DIR}/history.db
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	os.Setenv("TEST_HISTORY_DIR", "/data/pf")
	defer os.Unsetenv("TEST_HISTORY_DIR")

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.History.Path != "/data/pf/history.db" {
		t.Errorf("expected expanded path, got '%s'", config.History.Path)
	}
}

func TestEnvOverrides(t *testing.T) {
	vars := []string{
		"PASSFORGE_MAX_WORDS",
		"PASSFORGE_MAX_PER_COMBO",
		"PASSFORGE_HISTORY_ENABLED",
		"PASSFORGE_LOG_LEVEL",
	}
	orig := make(map[string]string, len(vars))
	for _, v := range vars {
		orig[v] = os.Getenv(v)
	}
	defer func() {
		for _, v := range vars {
			os.Setenv(v, orig[v])
		}
	}()

	os.Setenv("PASSFORGE_MAX_WORDS", "250")
	os.Setenv("PASSFORGE_MAX_PER_COMBO", "4")
	os.Setenv("PASSFORGE_HISTORY_ENABLED", "false")
	os.Setenv("PASSFORGE_LOG_LEVEL", "debug")

	config := Default()
	applyEnvOverrides(config)

	if config.Generate.MaxWords != 250 {
		t.Errorf("expected MaxWords 250, got %d", config.Generate.MaxWords)
	}
	if config.Generate.MaxPerCombo != 4 {
		t.Errorf("expected MaxPerCombo 4, got %d", config.Generate.MaxPerCombo)
	}
	if config.History.Enabled {
		t.Error("expected History.Enabled to be false")
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestValidate_Valid(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	config := Default()
	config.Logging.Level = "verbose"
	if err := config.Validate(); err == nil {
		t.Error("expected validation error for invalid log level")
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"", "info", "debug", "trace"} {
		t.Run(level, func(t *testing.T) {
			config := Default()
			config.Logging.Level = level
			if err := config.Validate(); err != nil {
				t.Errorf("expected log level '%s' to be valid, got error: %v", level, err)
			}
		})
	}
}

func TestValidate_SeparatorWithLineBreak(t *testing.T) {
	config := Default()
	config.Generate.Separators = append(config.Generate.Separators, "\n")
	if err := config.Validate(); err == nil {
		t.Error("expected validation error for separator containing a line break")
	}
}

func TestValidate_OutOfRangeBoundsAreNotErrors(t *testing.T) {
	// Bound clamping is the pipeline's job; config validation stays quiet.
	config := Default()
	config.Generate.MaxPerCombo = -5
	config.Generate.MaxWords = -1
	if err := config.Validate(); err != nil {
		t.Errorf("expected out-of-range bounds to pass validation, got: %v", err)
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidYAML := `
generate:
  separators: [invalid yaml
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFromFile(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}
