package gift

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/quizgift/internal/dehnadi"
	"github.com/abhisek/quizgift/internal/question"
)

// ErrNoOptions is returned for choice questions without any option.
var ErrNoOptions = errors.New("question has no options")

// correctCandidate picks the Dehnadi option that models the conventional
// reading of assignment: right-to-left copy, run sequentially.
var correctCandidate = regexp.MustCompile(`M2(\+S1)?(\s|$)`)

// RenderError wraps a failure to render one question of a bank.
type RenderError struct {
	Index int    // Zero-based position in the bank
	Title string // Question title, may be empty
	Err   error
}

func (e *RenderError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("question %d (%s): %v", e.Index+1, e.Title, e.Err)
	}
	return fmt.Sprintf("question %d: %v", e.Index+1, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Render produces the GIFT block for one question.
func Render(q *question.Question) (string, error) {
	var b strings.Builder
	if q.Title != "" {
		b.WriteString("::" + q.Title + "::\n")
	}
	if q.Text != "" {
		b.WriteString("[html]" + EscapeHTML(q.Text, true) + "\n")
	}

	var body string
	var err error
	switch q.Type {
	case question.TypeShort, question.TypeLong:
		body = "{}"
	case question.TypeMulti:
		body, err = multiOptions(q.Options)
	case question.TypeSingle:
		body, err = singleOptions(q.Options)
	case question.TypeDehnadi:
		body, err = dehnadiBlock(q.Instructions())
	default:
		err = fmt.Errorf("unknown question type %q", q.Type)
	}
	if err != nil {
		return "", err
	}

	b.WriteString(body)
	return b.String(), nil
}

// RenderBank renders every question, separated by a blank line. The first
// failing question aborts the export.
func RenderBank(bank *question.Bank) (string, error) {
	blocks := make([]string, 0, len(bank.Questions))
	for i := range bank.Questions {
		q := &bank.Questions[i]
		block, err := Render(q)
		if err != nil {
			return "", &RenderError{Index: i, Title: q.Title, Err: err}
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}

func optionText(o question.Option) string {
	return EscapeHTML(EscapeGIFT(o.Text), true)
}

// multiOptions weights each positive option by its share of the total.
// Options with no value share a -100% penalty.
func multiOptions(options []question.Option) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	var total float64
	empty := 0
	for _, o := range options {
		total += o.Value
		if o.Value == 0 {
			empty++
		}
	}

	var penalty float64
	if empty > 0 {
		penalty = -100 / float64(empty)
	}

	lines := make([]string, len(options))
	for i, o := range options {
		weight := penalty
		if o.Value != 0 {
			weight = o.Value / total * 100
		}
		lines[i] = fmt.Sprintf("\t~%%%s%%%s", formatWeight(weight), optionText(o))
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}", nil
}

// singleOptions marks the highest-valued options correct and gives other
// positive options partial credit relative to it.
func singleOptions(options []question.Option) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	max := options[0].Value
	for _, o := range options[1:] {
		if o.Value > max {
			max = o.Value
		}
	}

	lines := make([]string, len(options))
	for i, o := range options {
		text := optionText(o)
		switch {
		case o.Value == max:
			lines[i] = "\t=" + text
		case o.Value != 0:
			lines[i] = fmt.Sprintf("\t~%%%s%%%s", formatWeight(o.Value/max*100), text)
		default:
			lines[i] = "\t~" + text
		}
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}", nil
}

// dehnadiBlock shows the program in a <pre> block followed by one answer per
// distinct interpretation, each preceded by the rule codes that produce it.
func dehnadiBlock(instructions []string) (string, error) {
	options, err := dehnadi.Interpret(instructions)
	if err != nil {
		return "", fmt.Errorf("interpret instructions: %w", err)
	}

	var b strings.Builder
	b.WriteString("<pre>\n\t" + strings.Join(instructions, "\n\t") + "\n</pre>")
	b.WriteString(OptionBlock(options))
	return b.String(), nil
}

// OptionBlock renders interpreter options as a GIFT answer block.
func OptionBlock(options []dehnadi.Option) string {
	entries := make([]string, len(options))
	for i, opt := range options {
		marker := "~"
		if IsCorrect(opt) {
			marker = "="
		}
		entries[i] = "// " + opt.Comment + "\n\t" + marker + EscapeGIFT(opt.Text)
	}
	return "{\n\t" + strings.Join(entries, "\n\t") + "\n}"
}

// IsCorrect reports whether opt is the canonical answer of a Dehnadi question.
func IsCorrect(opt dehnadi.Option) bool {
	return correctCandidate.MatchString(opt.Comment)
}

func formatWeight(w float64) string {
	return fmt.Sprintf("%.5f", w)
}
