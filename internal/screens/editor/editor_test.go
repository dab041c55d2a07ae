package editor

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgift/internal/question"
	"github.com/abhisek/quizgift/internal/router"
)

var (
	ctrlS    = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	ctrlN    = tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	ctrlD    = tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	tab      = tea.KeyPressMsg{Code: tea.KeyTab}
	shiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	right    = tea.KeyPressMsg{Code: tea.KeyRight}
)

func typeText(s *EditorScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func dehnadiQuestion() question.Question {
	q := question.New(question.TypeDehnadi)
	q.Title = "Swap"
	q.SetInstructions([]string{"int a = 1;", "int b = 2;", "a = b;"})
	return q
}

func TestEditorScreen_Title(t *testing.T) {
	s := New(question.New(question.TypeShort), nil)
	if s.Title() != "Edit Question" {
		t.Errorf("Title = %q", s.Title())
	}
	s = New(dehnadiQuestion(), nil)
	if s.Title() != "Edit: Swap" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestEditorScreen_DehnadiPreview(t *testing.T) {
	s := New(dehnadiQuestion(), nil)

	if s.previewErr != nil {
		t.Fatalf("unexpected preview error: %v", s.previewErr)
	}
	if len(s.answers.Answers) != 10 {
		t.Fatalf("got %d answers, want 10", len(s.answers.Answers))
	}
	correct := 0
	for _, a := range s.answers.Answers {
		if a.Correct {
			correct++
			if a.Text != "a=2  b=2" {
				t.Errorf("correct answer = %q, want a=2  b=2", a.Text)
			}
		}
	}
	if correct != 1 {
		t.Errorf("got %d correct answers, want 1", correct)
	}
	if !strings.Contains(s.View(120, 40), "10 answer options") {
		t.Error("expected answer count in view")
	}
}

func TestEditorScreen_SaveReturnsQuestion(t *testing.T) {
	var saved *question.Question
	q := question.New(question.TypeShort)
	s := New(q, func(q question.Question) { saved = &q })

	typeText(s, "Name")
	_, cmd := s.Update(ctrlS)

	if saved == nil {
		t.Fatal("save was not called")
	}
	if saved.ID != q.ID || saved.Title != "Name" || saved.Type != question.TypeShort {
		t.Errorf("saved = %+v", saved)
	}
	if cmd == nil {
		t.Fatal("expected pop command after save")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEditorScreen_InvalidValueBlocksSave(t *testing.T) {
	called := false
	q := question.New(question.TypeSingle)
	q.Options = []question.Option{{Value: 1, Text: "yes"}}
	s := New(q, func(question.Question) { called = true })

	s.values[0].SetValue("1.2.3")
	_, cmd := s.Update(ctrlS)

	if called || cmd != nil {
		t.Error("save should be blocked by an invalid value")
	}
	if !strings.Contains(s.err, "invalid value") {
		t.Errorf("err = %q", s.err)
	}
}

func TestEditorScreen_ValidatorBlocksSave(t *testing.T) {
	called := false
	q := question.New(question.TypeDehnadi)
	q.SetInstructions([]string{"int a = 1;"})
	s := New(q, func(question.Question) { called = true })

	s.Update(ctrlS)
	if called {
		t.Error("save should be blocked without assignments")
	}
	if !strings.Contains(s.err, "no assignments") {
		t.Errorf("err = %q", s.err)
	}
}

func TestEditorScreen_CycleType(t *testing.T) {
	s := New(question.New(question.TypeShort), nil)

	s.Update(shiftTab)
	if s.current().kind != slotType {
		t.Fatalf("focus on %v, want type selector", s.current().kind)
	}

	s.Update(right)
	if s.questionType() != question.TypeLong {
		t.Fatalf("type = %s, want long", s.questionType())
	}
	s.Update(right)
	if s.questionType() != question.TypeMulti {
		t.Fatalf("type = %s, want multi", s.questionType())
	}
	if len(s.texts) != 1 {
		t.Errorf("expected an empty option line for a choice type, got %d", len(s.texts))
	}
}

func TestEditorScreen_AddAndRemoveLines(t *testing.T) {
	s := New(dehnadiQuestion(), nil)

	s.Update(ctrlN)
	if len(s.texts) != 4 {
		t.Fatalf("got %d lines, want 4", len(s.texts))
	}
	cur := s.current()
	if cur.kind != slotOption || cur.index != 3 {
		t.Fatalf("focus = %+v, want new line", cur)
	}

	typeText(s, "b = a;")
	if s.texts[3].Value() != "b = a;" {
		t.Fatalf("line 4 = %q", s.texts[3].Value())
	}
	if len(s.answers.Answers) == 10 {
		t.Error("preview should change after adding an assignment")
	}

	s.Update(ctrlD)
	if len(s.texts) != 3 {
		t.Errorf("got %d lines after remove, want 3", len(s.texts))
	}
	if len(s.answers.Answers) != 10 {
		t.Errorf("got %d answers after remove, want 10", len(s.answers.Answers))
	}
}

func TestEditorScreen_RemoveIgnoredOutsideLines(t *testing.T) {
	s := New(dehnadiQuestion(), nil)
	s.Update(ctrlD)
	if len(s.texts) != 3 {
		t.Errorf("ctrl+d on the title should not remove lines, got %d", len(s.texts))
	}
}

func TestEditorScreen_TabWraps(t *testing.T) {
	s := New(question.New(question.TypeShort), nil)
	s.Update(tab) // text
	s.Update(tab) // wraps to type
	if s.current().kind != slotType {
		t.Errorf("focus = %v, want type selector", s.current().kind)
	}
}

func TestEditorScreen_GIFTPreview(t *testing.T) {
	q := question.New(question.TypeSingle)
	q.Title = "Pick"
	q.Options = []question.Option{{Value: 1, Text: "yes"}, {Text: "no"}}
	s := New(q, nil)

	if !strings.Contains(s.giftText, "=yes") {
		t.Errorf("giftText = %q", s.giftText)
	}
}

func TestEditorScreen_KeyHints(t *testing.T) {
	if n := len(New(question.New(question.TypeShort), nil).KeyHints()); n != 2 {
		t.Errorf("short question hints = %d, want 2", n)
	}
	if n := len(New(dehnadiQuestion(), nil).KeyHints()); n != 4 {
		t.Errorf("dehnadi question hints = %d, want 4", n)
	}
}
