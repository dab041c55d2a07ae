package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizgift/internal/dehnadi"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [code...]",
	Short: "List the assignment and composition rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			for _, code := range args {
				code = strings.ToUpper(code)
				if r, ok := dehnadi.LookupAssignmentRule(code); ok {
					fmt.Fprintf(out, "%-4s  assignment   %s\n", r.Code(), describeAssignment(r))
					continue
				}
				if r, ok := dehnadi.LookupCompositionRule(code); ok {
					fmt.Fprintf(out, "%-4s  composition  %s\n", r.Code(), r.Description())
					continue
				}
				return fmt.Errorf("unknown rule %q", code)
			}
			return nil
		}

		// Assignment rules.
		fmt.Fprintln(out, "Assignment Rules")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, r := range dehnadi.AssignmentRules() {
			fmt.Fprintf(out, "%-4s  %s\n", r.Code(), describeAssignment(r))
		}

		// Composition rules.
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Composition Rules")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, r := range dehnadi.CompositionRules() {
			fmt.Fprintf(out, "%-4s  %s\n", r.Code(), r.Description())
		}
		return nil
	},
}

func describeAssignment(r dehnadi.AssignmentRule) string {
	if r.IsMove() {
		return fmt.Sprintf("%s (copy form under S3: %s)", r.Description(), r.CopyEquivalent().Code())
	}
	return r.Description()
}
