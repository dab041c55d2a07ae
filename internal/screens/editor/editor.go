package editor

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgift/internal/dehnadi"
	"github.com/abhisek/quizgift/internal/gift"
	"github.com/abhisek/quizgift/internal/question"
	"github.com/abhisek/quizgift/internal/router"
	"github.com/abhisek/quizgift/internal/screen"
	"github.com/abhisek/quizgift/internal/ui/components"
	"github.com/abhisek/quizgift/internal/ui/layout"
	"github.com/abhisek/quizgift/internal/ui/theme"
)

type slotKind int

const (
	slotType slotKind = iota
	slotTitle
	slotText
	slotValue
	slotOption
)

// slot is one focusable field of the form.
type slot struct {
	kind  slotKind
	index int
}

// SaveFunc receives the edited question when the user saves.
type SaveFunc func(q question.Question)

// EditorScreen is the form for one question, with a live preview of what
// it exports to.
type EditorScreen struct {
	id      string
	typeIdx int
	title   components.TextInput
	text    components.TextInput
	values  []components.TextInput
	texts   []components.TextInput
	focus   int
	save    SaveFunc
	err     string

	answers    components.AnswerList
	previewErr error
	giftText   string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an editor for q. save is called with the result on ctrl+s.
func New(q question.Question, save SaveFunc) *EditorScreen {
	s := &EditorScreen{
		id:    q.ID,
		title: components.NewTextInput("Question title", false, 0),
		text:  components.NewTextInput("Question text (HTML allowed)", false, 0),
		save:  save,
	}
	for i, ti := range question.Types {
		if ti.Type == q.Type {
			s.typeIdx = i
		}
	}
	s.title.SetValue(q.Title)
	s.text.SetValue(q.Text)
	for _, o := range q.Options {
		s.appendOption(o)
	}

	s.focus = 1
	s.title.Focus()
	s.refresh()
	return s
}

func (s *EditorScreen) Init() tea.Cmd {
	return nil
}

func (s *EditorScreen) Title() string {
	if s.title.Value() == "" {
		return "Edit Question"
	}
	return "Edit: " + s.title.Value()
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Save"},
	}
	if s.questionType().ShowOptions() || s.questionType().ShowInstructions() {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+N", Description: "Add line"},
			layout.KeyHint{Key: "Ctrl+D", Description: "Remove line"},
		)
	}
	return hints
}

func (s *EditorScreen) questionType() question.Type {
	return question.Types[s.typeIdx].Type
}

func (s *EditorScreen) appendOption(o question.Option) {
	value := components.NewTextInput("0", true, 12)
	if o.Value != 0 {
		value.SetValue(strconv.FormatFloat(o.Value, 'f', -1, 64))
	}
	placeholder := "Answer text"
	if s.questionType().ShowInstructions() {
		placeholder = "int a = 1;"
	}
	text := components.NewTextInput(placeholder, false, 0)
	text.SetValue(o.Text)

	s.values = append(s.values, value)
	s.texts = append(s.texts, text)
}

// slots lists the focusable fields for the current type.
func (s *EditorScreen) slots() []slot {
	out := []slot{{kind: slotType}, {kind: slotTitle}, {kind: slotText}}
	t := s.questionType()
	for i := range s.texts {
		switch {
		case t.ShowOptions():
			out = append(out, slot{slotValue, i}, slot{slotOption, i})
		case t.ShowInstructions():
			out = append(out, slot{slotOption, i})
		}
	}
	return out
}

func (s *EditorScreen) current() slot {
	slots := s.slots()
	if s.focus >= len(slots) {
		s.focus = len(slots) - 1
	}
	return slots[s.focus]
}

// input returns the text input behind sl, or nil for the type selector.
func (s *EditorScreen) input(sl slot) *components.TextInput {
	switch sl.kind {
	case slotTitle:
		return &s.title
	case slotText:
		return &s.text
	case slotValue:
		return &s.values[sl.index]
	case slotOption:
		return &s.texts[sl.index]
	}
	return nil
}

func (s *EditorScreen) setFocus(i int) tea.Cmd {
	if in := s.input(s.current()); in != nil {
		in.Blur()
	}
	n := len(s.slots())
	s.focus = (i%n + n) % n
	if in := s.input(s.current()); in != nil {
		return in.Focus()
	}
	return nil
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if in := s.input(s.current()); in != nil {
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "ctrl+s":
		return s, s.commit()
	case "ctrl+n":
		return s, s.addLine()
	case "ctrl+d":
		return s, s.removeLine()
	case "pgup", "pgdown":
		s.answers, _ = s.answers.Update(msg)
		return s, nil
	}

	if s.current().kind == slotType {
		switch kmsg.String() {
		case "left", "h":
			s.cycleType(-1)
		case "right", "l", "space", " ", "enter":
			s.cycleType(1)
		}
		return s, nil
	}

	in := s.input(s.current())
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	s.refresh()
	return s, cmd
}

func (s *EditorScreen) cycleType(delta int) {
	n := len(question.Types)
	s.typeIdx = ((s.typeIdx+delta)%n + n) % n
	if (s.questionType().ShowOptions() || s.questionType().ShowInstructions()) && len(s.texts) == 0 {
		s.appendOption(question.Option{})
	}
	s.refresh()
}

func (s *EditorScreen) addLine() tea.Cmd {
	t := s.questionType()
	if !t.ShowOptions() && !t.ShowInstructions() {
		return nil
	}
	s.appendOption(question.Option{})
	s.refresh()

	// Focus the first field of the new line.
	slots := s.slots()
	for i, sl := range slots {
		if sl.index == len(s.texts)-1 && (sl.kind == slotValue || sl.kind == slotOption) {
			return s.setFocus(i)
		}
	}
	return nil
}

func (s *EditorScreen) removeLine() tea.Cmd {
	sl := s.current()
	if sl.kind != slotValue && sl.kind != slotOption {
		return nil
	}
	s.values = append(s.values[:sl.index], s.values[sl.index+1:]...)
	s.texts = append(s.texts[:sl.index], s.texts[sl.index+1:]...)
	s.refresh()
	return s.setFocus(min(s.focus, len(s.slots())-1))
}

// build assembles the question from the form. Option values that do not
// parse as numbers are reported.
func (s *EditorScreen) build() (question.Question, error) {
	q := question.Question{
		ID:    s.id,
		Type:  s.questionType(),
		Title: strings.TrimSpace(s.title.Value()),
		Text:  s.text.Value(),
	}

	switch {
	case q.Type.ShowOptions():
		for i := range s.texts {
			v, err := s.values[i].NumericValue()
			if err != nil {
				return q, fmt.Errorf("option %d: invalid value %q", i+1, s.values[i].Value())
			}
			q.Options = append(q.Options, question.Option{Value: v, Text: s.texts[i].Value()})
		}
	case q.Type.ShowInstructions():
		for i := range s.texts {
			q.Options = append(q.Options, question.Option{Text: s.texts[i].Value()})
		}
	}
	return q, nil
}

// refresh recomputes the preview and the per-line instruction markers.
func (s *EditorScreen) refresh() {
	s.previewErr = nil
	s.giftText = ""
	s.answers = components.AnswerList{}

	q, err := s.build()
	if err != nil {
		s.previewErr = err
		return
	}

	if q.Type.ShowInstructions() {
		for i := range s.texts {
			line := s.texts[i].Value()
			if strings.TrimSpace(line) == "" {
				s.texts[i].Unmark()
				continue
			}
			_, perr := dehnadi.ParseInstruction(line)
			s.texts[i].Mark(perr == nil)
		}

		options, err := dehnadi.Interpret(q.Instructions())
		if err != nil {
			s.previewErr = err
			return
		}
		answers := make([]components.Answer, len(options))
		for i, opt := range options {
			answers[i] = components.Answer{
				Text:    plainState(opt),
				Note:    opt.Comment,
				Correct: gift.IsCorrect(opt),
			}
		}
		s.answers = components.NewAnswerList(fmt.Sprintf("%d answer options", len(options)), answers)
		return
	}

	for i := range s.texts {
		s.texts[i].Unmark()
	}
	s.giftText, s.previewErr = gift.Render(&q)
}

func plainState(opt dehnadi.Option) string {
	parts := make([]string, len(opt.Values))
	for i, b := range opt.Values {
		parts[i] = fmt.Sprintf("%s=%d", b.Name, b.Value)
	}
	return strings.Join(parts, "  ")
}

// commit validates the form and hands the question to save. Warnings do
// not block saving.
func (s *EditorScreen) commit() tea.Cmd {
	q, err := s.build()
	if err != nil {
		s.err = err.Error()
		return nil
	}
	for _, p := range question.ValidateQuestion(&q, question.DefaultValidators()) {
		if !p.Warning {
			s.err = p.Message
			return nil
		}
	}

	s.err = ""
	if s.save != nil {
		s.save(q)
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *EditorScreen) View(width, height int) string {
	form := s.viewForm()
	preview := s.viewPreview(height)

	if layout.IsCompactWidth(width) {
		return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(form + "\n" + preview)
	}

	half := width/2 - 2
	left := lipgloss.NewStyle().Width(half).Padding(1, 2).Render(form)
	right := lipgloss.NewStyle().Width(half).Padding(1, 2).Render(preview)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (s *EditorScreen) label(sl slot, text string) string {
	if s.current() == sl {
		return theme.FocusedLabel.Render("▸ " + text)
	}
	return theme.Label.Render("  " + text)
}

func (s *EditorScreen) viewForm() string {
	var b strings.Builder

	typeLabel := question.Types[s.typeIdx].Label
	if s.current().kind == slotType {
		typeLabel = theme.Selected.Render("◂ " + typeLabel + " ▸")
	} else {
		typeLabel = theme.Body.Render(typeLabel)
	}
	b.WriteString(s.label(slot{kind: slotType}, "Type   ") + " " + typeLabel + "\n")
	b.WriteString(s.label(slot{kind: slotTitle}, "Title  ") + " " + s.title.View() + "\n")
	b.WriteString(s.label(slot{kind: slotText}, "Text   ") + " " + s.text.View() + "\n")

	t := s.questionType()
	switch {
	case t.ShowOptions():
		b.WriteString("\n" + theme.Subtitle.Render("Options (value, text)") + "\n")
		for i := range s.texts {
			b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
				s.label(slot{slotValue, i}, fmt.Sprintf("%2d.", i+1)),
				s.values[i].View(),
				s.label(slot{slotOption, i}, ""),
				s.texts[i].View()))
		}
	case t.ShowInstructions():
		b.WriteString("\n" + theme.Subtitle.Render("Instructions") + "\n")
		for i := range s.texts {
			b.WriteString(fmt.Sprintf("%s %s\n",
				s.label(slot{slotOption, i}, fmt.Sprintf("%2d.", i+1)),
				s.texts[i].View()))
		}
	}

	if s.err != "" {
		b.WriteString("\n" + theme.StatusError.Render(s.err) + "\n")
	}
	return b.String()
}

func (s *EditorScreen) viewPreview(height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Preview") + "\n\n")

	if s.previewErr != nil {
		b.WriteString(theme.Incorrect.Render(s.previewErr.Error()))
		return b.String()
	}

	if s.questionType().ShowInstructions() {
		b.WriteString(s.answers.View(max(height-8, 3)))
		return b.String()
	}

	b.WriteString(theme.Code.Render(strings.ReplaceAll(s.giftText, "\t", "    ")))
	return b.String()
}
