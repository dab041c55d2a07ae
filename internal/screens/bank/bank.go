package bank

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgift/internal/gift"
	"github.com/abhisek/quizgift/internal/question"
	"github.com/abhisek/quizgift/internal/router"
	"github.com/abhisek/quizgift/internal/screen"
	"github.com/abhisek/quizgift/internal/screens/editor"
	"github.com/abhisek/quizgift/internal/screens/preview"
	"github.com/abhisek/quizgift/internal/ui/components"
	"github.com/abhisek/quizgift/internal/ui/layout"
	"github.com/abhisek/quizgift/internal/ui/theme"
)

// BankScreen lists the questions of a bank and is the editor's home.
type BankScreen struct {
	bank       *question.Bank
	bankPath   string
	exportPath string
	menu       components.Menu
	problems   map[string][]*question.ValidationError
	dirty      bool
	status     string
	statusErr  bool
}

var _ screen.Screen = (*BankScreen)(nil)
var _ screen.KeyHintProvider = (*BankScreen)(nil)

// New creates a BankScreen for bank. Saves go to bankPath and exports to
// exportPath.
func New(bank *question.Bank, bankPath, exportPath string) *BankScreen {
	s := &BankScreen{
		bank:       bank,
		bankPath:   bankPath,
		exportPath: exportPath,
	}
	s.refresh()
	return s
}

// refresh rebuilds the menu and re-runs the validators.
func (s *BankScreen) refresh() {
	s.problems = make(map[string][]*question.ValidationError)
	for _, p := range question.ValidateBank(s.bank, question.DefaultValidators()) {
		s.problems[p.QuestionID] = append(s.problems[p.QuestionID], p)
	}

	items := make([]components.MenuItem, len(s.bank.Questions))
	for i := range s.bank.Questions {
		q := s.bank.Questions[i]
		items[i] = components.MenuItem{
			Label: s.itemLabel(i, &q),
			Action: func() tea.Cmd {
				return s.openEditor(q, func(edited question.Question) {
					s.bank.Replace(edited)
					s.markDirty()
				})
			},
		}
	}
	s.menu.SetItems(items)
}

func (s *BankScreen) itemLabel(i int, q *question.Question) string {
	mark := " "
	if probs := s.problems[q.ID]; len(probs) > 0 {
		mark = "!"
		if question.HasErrors(probs) {
			mark = "✗"
		}
	}
	return fmt.Sprintf("%s %2d. %-8s %s", mark, i+1, q.Type, q.DisplayTitle())
}

func (s *BankScreen) openEditor(q question.Question, save editor.SaveFunc) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: editor.New(q, save)}
	}
}

func (s *BankScreen) markDirty() {
	s.dirty = true
	s.status = ""
}

func (s *BankScreen) selected() *question.Question {
	if len(s.bank.Questions) == 0 {
		return nil
	}
	return &s.bank.Questions[s.menu.Selected]
}

func (s *BankScreen) Init() tea.Cmd {
	return nil
}

func (s *BankScreen) Title() string {
	if s.dirty {
		return "Question Bank (modified)"
	}
	return "Question Bank"
}

func (s *BankScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Edit"},
		{Key: "a", Description: "Add"},
		{Key: "d", Description: "Delete"},
		{Key: "p", Description: "Preview"},
		{Key: "s", Description: "Save"},
		{Key: "e", Description: "Export"},
	}
}

func (s *BankScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.ResumeMsg); ok {
		s.refresh()
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "a", "n":
		return s, s.openEditor(question.New(question.TypeShort), func(q question.Question) {
			s.bank.Add(q)
			s.menu.Selected = len(s.bank.Questions) - 1
			s.markDirty()
		})
	case "d", "delete":
		if q := s.selected(); q != nil {
			s.bank.Remove(q.ID)
			s.markDirty()
			s.refresh()
		}
		return s, nil
	case "p":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: preview.New(s.bank, s.exportPath)}
		}
	case "s":
		s.save()
		return s, nil
	case "e":
		s.export()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *BankScreen) save() {
	if err := question.Save(s.bankPath, s.bank); err != nil {
		s.setStatus(err.Error(), true)
		return
	}
	s.dirty = false
	s.setStatus("Saved to "+s.bankPath, false)
}

func (s *BankScreen) export() {
	if err := gift.Export(s.exportPath, s.bank); err != nil {
		s.setStatus(err.Error(), true)
		return
	}
	s.setStatus(fmt.Sprintf("Exported %d questions to %s", len(s.bank.Questions), s.exportPath), false)
}

func (s *BankScreen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

func (s *BankScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Hint.Render(s.bankPath))
	b.WriteString("\n\n")

	if len(s.bank.Questions) == 0 {
		b.WriteString(theme.Hint.Render("No questions yet. Press a to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(s.menu.View())
	}

	if q := s.selected(); q != nil {
		for _, p := range s.problems[q.ID] {
			b.WriteString("\n")
			if p.Warning {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("warning: " + p.Message))
			} else {
				b.WriteString(theme.StatusError.Render("error: " + p.Message))
			}
		}
	}

	if s.status != "" {
		b.WriteString("\n\n")
		if s.statusErr {
			b.WriteString(theme.StatusError.Render(s.status))
		} else {
			b.WriteString(theme.Status.Render(s.status))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).MaxHeight(height).Render(b.String())
}
