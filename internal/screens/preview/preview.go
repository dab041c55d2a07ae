package preview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgift/internal/gift"
	"github.com/abhisek/quizgift/internal/question"
	"github.com/abhisek/quizgift/internal/screen"
	"github.com/abhisek/quizgift/internal/ui/layout"
	"github.com/abhisek/quizgift/internal/ui/theme"
)

// PreviewScreen shows the GIFT text the bank exports to.
type PreviewScreen struct {
	bank       *question.Bank
	exportPath string
	lines      []string
	err        error
	offset     int
	status     string
	statusErr  bool
}

var _ screen.Screen = (*PreviewScreen)(nil)
var _ screen.KeyHintProvider = (*PreviewScreen)(nil)

// New renders bank and creates a PreviewScreen for it.
func New(bank *question.Bank, exportPath string) *PreviewScreen {
	s := &PreviewScreen{bank: bank, exportPath: exportPath}
	s.render()
	return s
}

func (s *PreviewScreen) render() {
	out, err := gift.RenderBank(s.bank)
	s.err = err
	s.lines = nil
	if err == nil {
		s.lines = strings.Split(out, "\n")
	}
	if s.offset >= len(s.lines) {
		s.offset = 0
	}
}

func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (s *PreviewScreen) Title() string {
	return "GIFT Preview"
}

func (s *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "w", Description: "Write " + s.exportPath},
	}
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.lines)-1 {
			s.offset++
		}
	case "pgup":
		s.offset = max(s.offset-10, 0)
	case "pgdown":
		s.offset = max(min(s.offset+10, len(s.lines)-1), 0)
	case "home", "g":
		s.offset = 0
	case "w":
		s.write()
	}
	return s, nil
}

func (s *PreviewScreen) write() {
	if err := gift.Export(s.exportPath, s.bank); err != nil {
		s.status = err.Error()
		s.statusErr = true
		return
	}
	s.status = fmt.Sprintf("Exported %d questions to %s", len(s.bank.Questions), s.exportPath)
	s.statusErr = false
}

func (s *PreviewScreen) View(width, height int) string {
	var b strings.Builder

	if s.err != nil {
		b.WriteString(theme.Incorrect.Render("Cannot export: " + s.err.Error()))
		b.WriteString("\n")
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	// Leave room for the status line and padding.
	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	end := min(s.offset+rows, len(s.lines))
	for _, line := range s.lines[s.offset:end] {
		b.WriteString(theme.Code.Render(strings.ReplaceAll(line, "\t", "    ")))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		if s.statusErr {
			b.WriteString(theme.StatusError.Render(s.status))
		} else {
			b.WriteString(theme.Status.Render(s.status))
		}
	} else if end < len(s.lines) {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("lines %d-%d of %d", s.offset+1, end, len(s.lines))))
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(b.String())
}
