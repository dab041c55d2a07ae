package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/quizgift/internal/question"
)

// run executes the root command with args and returns stdout and stderr.
// Flags on the package-level commands are reset first.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{interpretCmd, exportCmd, validateCmd, editCmd} {
		c.Flags().VisitAll(reset)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeBank(t *testing.T, qs ...question.Question) string {
	t.Helper()
	b := question.NewBank()
	for _, q := range qs {
		b.Add(q)
	}
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := question.Save(path, b); err != nil {
		t.Fatalf("save bank: %v", err)
	}
	return path
}

func TestInterpretTable(t *testing.T) {
	out, _, err := run(t, "", "interpret", "int a = 1;", "int b = 2;", "a = b;")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !strings.Contains(out, "a=2  b=2") || !strings.Contains(out, "✓") {
		t.Errorf("expected the correct answer to be marked, got:\n%s", out)
	}
	if !strings.Contains(out, "M9 / M10") {
		t.Errorf("expected merged codes, got:\n%s", out)
	}
}

func TestInterpretGIFTFromStdin(t *testing.T) {
	out, _, err := run(t, "int a = 1;\nint b = 2;\n\na = b;\n", "interpret", "--gift", "-f", "-")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !strings.HasPrefix(out, "{\n\t// M1\n\t~a\\=2") {
		t.Errorf("unexpected GIFT block:\n%s", out)
	}
	if !strings.Contains(out, "// M2\n\t=a\\=2") {
		t.Errorf("expected M2 marked correct:\n%s", out)
	}
}

func TestInterpretTrace(t *testing.T) {
	out, _, err := run(t, "", "interpret", "--trace", "int a = 1;", "int b = 2;", "a = b;")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !strings.Contains(out, "Candidates") || !strings.Contains(out, "dup") {
		t.Errorf("expected trace output, got:\n%s", out)
	}
}

func TestInterpretErrors(t *testing.T) {
	if _, _, err := run(t, "", "interpret"); err == nil {
		t.Error("expected error without instructions")
	}
	if _, _, err := run(t, "", "interpret", "int a = 1;"); err == nil || !strings.Contains(err.Error(), "no assignments") {
		t.Errorf("err = %v, want no assignments", err)
	}
}

func TestRules(t *testing.T) {
	out, _, err := run(t, "", "rules")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	for _, code := range []string{"M1 ", "M11", "S1 ", "S3 "} {
		if !strings.Contains(out, code) {
			t.Errorf("rules output missing %q", code)
		}
	}

	out, _, err = run(t, "", "rules", "m1", "s3")
	if err != nil {
		t.Fatalf("rules m1 s3: %v", err)
	}
	if !strings.Contains(out, "copy form under S3: M2") {
		t.Errorf("expected copy equivalent for M1, got:\n%s", out)
	}

	if _, _, err := run(t, "", "rules", "M12"); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestExport(t *testing.T) {
	bank := writeBank(t, question.Question{Type: question.TypeShort, Title: "Name"})
	dest := filepath.Join(t.TempDir(), "quiz.gift")

	out, _, err := run(t, "", "export", bank, "-o", dest)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 1 questions") {
		t.Errorf("unexpected output: %q", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "::Name::\n{}\n" {
		t.Errorf("export = %q", data)
	}
}

func TestExportStdout(t *testing.T) {
	bank := writeBank(t, question.Question{Type: question.TypeLong, Title: "Essay"})

	out, _, err := run(t, "", "--bank", bank, "export", "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out != "::Essay::\n{}\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestValidate(t *testing.T) {
	good := writeBank(t, question.Question{
		Type:    question.TypeSingle,
		Options: []question.Option{{Value: 1, Text: "yes"}, {Text: ""}},
	})
	out, errOut, err := run(t, "", "validate", good)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "1 questions OK") {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "warning:") {
		t.Errorf("expected empty-text warning, stderr = %q", errOut)
	}

	bad := writeBank(t, question.Question{Type: question.TypeDehnadi, Options: []question.Option{{Text: "int a = 1;"}}})
	_, errOut, err = run(t, "", "validate", bad)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(errOut, "error:") {
		t.Errorf("expected error line, stderr = %q", errOut)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "quizgift ") {
		t.Errorf("version output = %q", out)
	}
}
