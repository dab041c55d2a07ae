package cmd

import (
	"github.com/abhisek/quizgift/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizgift",
	Short: "Build quiz question banks and export them as GIFT",
	Long: `quizgift: edit quiz questions and export them in the GIFT format.

Dehnadi test questions are written as a short program of declarations and
assignments; their answer options are generated from every combination of
assignment and composition rules.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank (overrides QUIZGIFT_BANK env var)")

	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankPath returns the bank path using a positional argument first,
// then the --bank flag, then QUIZGIFT_BANK, then the default XDG path.
func resolveBankPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p, nil
	}
	return config.DefaultBankPath()
}
