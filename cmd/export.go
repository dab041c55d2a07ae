package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/quizgift/internal/config"
	"github.com/abhisek/quizgift/internal/gift"
	"github.com/abhisek/quizgift/internal/question"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [bank.json]",
	Short: "Render a question bank as a GIFT file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.ConfigFromEnv()
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			cfg.ExportPath = out
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		bankPath, err := resolveBankPath(cmd, args)
		if err != nil {
			return fmt.Errorf("resolve bank path: %w", err)
		}

		bank, err := loadAndCheck(cmd.ErrOrStderr(), bankPath)
		if err != nil {
			return err
		}

		if cfg.ExportPath == "-" {
			rendered, err := gift.RenderBank(bank)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		}

		if err := gift.Export(cfg.ExportPath, bank); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d questions to %s\n", len(bank.Questions), cfg.ExportPath)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [bank.json]",
	Short: "Check a question bank without exporting it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bankPath, err := resolveBankPath(cmd, args)
		if err != nil {
			return fmt.Errorf("resolve bank path: %w", err)
		}

		bank, err := loadAndCheck(cmd.ErrOrStderr(), bankPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions OK\n", bankPath, len(bank.Questions))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (overrides QUIZGIFT_EXPORT; \"-\" for stdout)")
}

// loadAndCheck loads a bank and runs the default validators. Warnings are
// printed to w; any hard error fails the load.
func loadAndCheck(w io.Writer, path string) (*question.Bank, error) {
	bank, err := question.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}

	problems := question.ValidateBank(bank, question.DefaultValidators())
	for _, p := range problems {
		if p.Warning {
			fmt.Fprintf(w, "warning: %v\n", p)
		} else {
			fmt.Fprintf(w, "error: %v\n", p)
		}
	}
	if question.HasErrors(problems) {
		return nil, fmt.Errorf("%s: question bank has errors", path)
	}
	if len(bank.Questions) == 0 {
		fmt.Fprintf(w, "warning: %s has no questions\n", path)
	}
	return bank, nil
}
