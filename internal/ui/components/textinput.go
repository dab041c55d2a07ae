package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgift/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with quizgift styling.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	marked      bool
	valid       bool
}

// NewTextInput creates a new styled text input. The input starts blurred;
// call Focus to start editing.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return nil
}

// Update handles messages. Numeric inputs accept digits, a decimal point
// and a sign so option weights like -0.5 can be typed.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !strings.ContainsRune("0123456789.-", rune(key[0])) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input contents.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Focus starts editing.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur stops editing.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// NumericValue returns the input value as a float. An empty input is 0.
func (t TextInput) NumericValue() (float64, error) {
	v := strings.TrimSpace(t.Model.Value())
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

// Mark shows a validity marker after the input.
func (t *TextInput) Mark(valid bool) {
	t.marked = true
	t.valid = valid
}

// Unmark hides the validity marker.
func (t *TextInput) Unmark() {
	t.marked = false
}
