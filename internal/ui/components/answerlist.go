package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgift/internal/ui/theme"
)

// Answer is one row of an AnswerList.
type Answer struct {
	Text    string
	Note    string
	Correct bool
}

// AnswerList shows a lettered list of answers with the correct ones
// highlighted. It can scroll when it has more rows than fit.
type AnswerList struct {
	Heading string
	Answers []Answer
	Offset  int
}

// NewAnswerList creates a new answer list.
func NewAnswerList(heading string, answers []Answer) AnswerList {
	return AnswerList{
		Heading: heading,
		Answers: answers,
	}
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update scrolls the list.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "pgup":
		if a.Offset > 0 {
			a.Offset--
		}
	case "pgdown":
		if a.Offset < len(a.Answers)-1 {
			a.Offset++
		}
	}
	return a, nil
}

// View renders at most maxRows answers starting at Offset. A maxRows of
// zero or less renders everything.
func (a AnswerList) View(maxRows int) string {
	var b strings.Builder
	if a.Heading != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Heading))
		b.WriteString("\n\n")
	}

	if len(a.Answers) == 0 {
		b.WriteString(theme.Hint.Render("  no answers"))
		return b.String()
	}

	end := len(a.Answers)
	if maxRows > 0 && a.Offset+maxRows < end {
		end = a.Offset + maxRows
	}

	for i := a.Offset; i < end; i++ {
		ans := a.Answers[i]
		prefix := "  "
		if ans.Correct {
			prefix = "✓ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, answerLabel(i), ans.Text)

		if ans.Correct {
			b.WriteString(theme.Correct.Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		if ans.Note != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(ans.Note))
		}
		b.WriteString("\n")
	}

	if end < len(a.Answers) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  … %d more", len(a.Answers)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// answerLabel returns A..Z, then AA, AB, and so on.
func answerLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}
