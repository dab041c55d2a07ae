package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestAnswerLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA"}
	for i, want := range tests {
		if got := answerLabel(i); got != want {
			t.Errorf("answerLabel(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestAnswerListViewTruncates(t *testing.T) {
	a := NewAnswerList("", []Answer{{Text: "one"}, {Text: "two", Correct: true}, {Text: "three"}})

	out := a.View(2)
	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("expected first two answers, got %q", out)
	}
	if strings.Contains(out, "three") {
		t.Errorf("third answer should be cut, got %q", out)
	}
	if !strings.Contains(out, "1 more") {
		t.Errorf("expected overflow hint, got %q", out)
	}
}

func TestAnswerListScroll(t *testing.T) {
	a := NewAnswerList("", []Answer{{Text: "one"}, {Text: "two"}})
	a, _ = a.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if a.Offset != 1 {
		t.Fatalf("Offset = %d, want 1", a.Offset)
	}
	a, _ = a.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if a.Offset != 1 {
		t.Errorf("Offset should stop at last row, got %d", a.Offset)
	}
	a, _ = a.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	if a.Offset != 0 {
		t.Errorf("Offset = %d, want 0", a.Offset)
	}
}

func TestNumericInputFiltersLetters(t *testing.T) {
	ti := NewTextInput("0", true, 10)
	ti.Focus()

	for _, r := range "-1.5x" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if ti.Value() != "-1.5" {
		t.Fatalf("Value() = %q, want -1.5", ti.Value())
	}
	v, err := ti.NumericValue()
	if err != nil || v != -1.5 {
		t.Errorf("NumericValue() = %v, %v", v, err)
	}
}

func TestNumericValueEmptyIsZero(t *testing.T) {
	ti := NewTextInput("", true, 0)
	v, err := ti.NumericValue()
	if err != nil || v != 0 {
		t.Errorf("NumericValue() = %v, %v; want 0, nil", v, err)
	}
}

func TestMenuSetItemsClampsSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}})
	m.Selected = 2
	m.SetItems([]MenuItem{{Label: "a"}})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
	m.SetItems(nil)
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0 for empty menu", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on enter")
	}
}
