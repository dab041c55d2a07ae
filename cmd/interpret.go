package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/quizgift/internal/dehnadi"
	"github.com/abhisek/quizgift/internal/gift"
	"github.com/spf13/cobra"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [instruction...]",
	Short: "List the interpretations of a Dehnadi program",
	Long: `Run the assignment-semantics interpreter over a short program and print
one line per distinct final state with the rule codes that produce it.

Each argument is one instruction line, e.g.

  quizgift interpret "int a = 1;" "int b = 2;" "a = b;"

Use --file to read instructions from a file, one per line ("-" for stdin).
No question bank is read or written.`,
	RunE: runInterpret,
}

func init() {
	interpretCmd.Flags().StringP("file", "f", "", "Read instructions from a file (\"-\" for stdin)")
	interpretCmd.Flags().Bool("gift", false, "Print the GIFT answer block instead of a table")
	interpretCmd.Flags().Bool("trace", false, "Print every rule combination before duplicates are merged")
}

func runInterpret(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	asGIFT, _ := cmd.Flags().GetBool("gift")
	withTrace, _ := cmd.Flags().GetBool("trace")

	lines, err := readInstructions(cmd.InOrStdin(), file, args)
	if err != nil {
		return err
	}

	it := &dehnadi.Interpreter{}
	if withTrace {
		it.Trace = &dehnadi.Trace{}
	}

	options, err := it.Interpret(lines)
	if err != nil {
		return fmt.Errorf("interpret: %w", err)
	}

	out := cmd.OutOrStdout()
	if withTrace {
		fmt.Fprintln(out, "Candidates")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		fmt.Fprint(out, it.Trace.String())
		fmt.Fprintln(out)
	}

	if asGIFT {
		fmt.Fprintln(out, gift.OptionBlock(options))
		return nil
	}

	printOptions(out, options)
	return nil
}

// readInstructions takes lines from --file when set, otherwise from args.
func readInstructions(stdin io.Reader, file string, args []string) ([]string, error) {
	if file == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("no instructions given: pass them as arguments or use --file")
		}
		return args, nil
	}

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read instructions: %w", err)
	}

	lines := dehnadi.SplitLines(string(data))
	if len(lines) == 0 {
		return nil, fmt.Errorf("no instructions in %s", file)
	}
	return lines, nil
}

func printOptions(w io.Writer, options []dehnadi.Option) {
	fmt.Fprintf(w, "%-3s  %-7s  %-28s  %s\n", "#", "Answer", "Final state", "Rules")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for i, opt := range options {
		mark := ""
		if gift.IsCorrect(opt) {
			mark = "✓"
		}
		fmt.Fprintf(w, "%-3d  %-7s  %-28s  %s\n", i+1, mark, plainState(opt), opt.Comment)
	}
}

// plainState renders an option for the terminal, without HTML entities.
func plainState(opt dehnadi.Option) string {
	parts := make([]string, len(opt.Values))
	for i, b := range opt.Values {
		parts[i] = fmt.Sprintf("%s=%d", b.Name, b.Value)
	}
	return strings.Join(parts, "  ")
}
