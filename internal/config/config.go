package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds quizgift's file locations.
type Config struct {
	// BankPath is the question bank opened by the editor and read by export
	// when no path is given.
	BankPath string

	// ExportPath is where GIFT output is written. "-" means stdout.
	ExportPath string
}

// DefaultExportFile is the export name the form editor always used.
const DefaultExportFile = "export.gift"

// DefaultConfig returns a Config with sensible defaults. BankPath is left
// empty; callers resolve it with DefaultBankPath when they need a file.
func DefaultConfig() Config {
	return Config{
		ExportPath: DefaultExportFile,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("QUIZGIFT_BANK"); p != "" {
		cfg.BankPath = p
	}
	if p := os.Getenv("QUIZGIFT_EXPORT"); p != "" {
		cfg.ExportPath = p
	}

	return cfg
}

// Validate checks that the paths are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ExportPath) == "" {
		return fmt.Errorf("export path is empty")
	}
	if c.ExportPath != "-" && strings.HasSuffix(c.ExportPath, string(filepath.Separator)) {
		return fmt.Errorf("export path %q is a directory", c.ExportPath)
	}
	if c.BankPath != "" && filepath.Ext(c.BankPath) != ".json" {
		return fmt.Errorf("question bank %q must be a .json file", c.BankPath)
	}
	return nil
}

// DefaultBankPath resolves the question bank location in priority order:
// 1. QUIZGIFT_BANK environment variable
// 2. $XDG_DATA_HOME/quizgift/bank.json
// 3. ~/.local/share/quizgift/bank.json
func DefaultBankPath() (string, error) {
	if p := os.Getenv("QUIZGIFT_BANK"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "quizgift", "bank.json"), nil
}
