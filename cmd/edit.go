package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/abhisek/quizgift/internal/app"
	"github.com/abhisek/quizgift/internal/config"
	"github.com/abhisek/quizgift/internal/question"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [bank.json]",
	Short: "Open the question bank in the terminal editor",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringP("output", "o", "", "Export file used by the editor (overrides QUIZGIFT_EXPORT)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg := config.ConfigFromEnv()
	if f := cmd.Flags().Lookup("output"); f != nil && f.Value.String() != "" {
		cfg.ExportPath = f.Value.String()
	}

	bankPath, err := resolveBankPath(cmd, args)
	if err != nil {
		return fmt.Errorf("resolve bank path: %w", err)
	}
	cfg.BankPath = bankPath
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.ExportPath == "-" {
		return fmt.Errorf("the editor cannot export to stdout; pass a file with --output")
	}

	bank, err := openBank(bankPath)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Bank:       bank,
		BankPath:   cfg.BankPath,
		ExportPath: cfg.ExportPath,
	})
}

// openBank loads the bank at path, or starts an empty one if the file does
// not exist yet. It is created on the first save.
func openBank(path string) (*question.Bank, error) {
	bank, err := question.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return question.NewBank(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return bank, nil
}
