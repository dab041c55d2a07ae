package bank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgift/internal/question"
	"github.com/abhisek/quizgift/internal/router"
	"github.com/abhisek/quizgift/internal/screen"
	"github.com/abhisek/quizgift/internal/screens/editor"
	"github.com/abhisek/quizgift/internal/screens/preview"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen(t *testing.T) (*BankScreen, string) {
	t.Helper()
	dir := t.TempDir()
	b := question.NewBank()
	b.Add(question.Question{Type: question.TypeShort, Title: "Name"})
	b.Add(question.Question{Type: question.TypeLong, Title: "Essay"})
	return New(b, filepath.Join(dir, "bank.json"), filepath.Join(dir, "export.gift")), dir
}

func TestBankScreen_ListsQuestions(t *testing.T) {
	s, _ := testScreen(t)
	if len(s.menu.Items) != 2 {
		t.Fatalf("menu has %d items, want 2", len(s.menu.Items))
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Name") || !strings.Contains(view, "Essay") {
		t.Errorf("expected question titles in view, got %q", view)
	}
}

func TestBankScreen_EmptyBank(t *testing.T) {
	s := New(question.NewBank(), "bank.json", "export.gift")
	if !strings.Contains(s.View(100, 30), "No questions yet") {
		t.Error("expected empty-bank hint")
	}
	// Delete on an empty bank is a no-op.
	s.Update(key('d'))
	if s.dirty {
		t.Error("deleting from an empty bank should not modify it")
	}
}

func TestBankScreen_AddQuestion(t *testing.T) {
	s, _ := testScreen(t)

	_, cmd := s.Update(key('a'))
	if cmd == nil {
		t.Fatal("expected a command to open the editor")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	ed, ok := push.Screen.(*editor.EditorScreen)
	if !ok {
		t.Fatalf("pushed %T, want editor", push.Screen)
	}

	for _, r := range "New one" {
		ed.Update(key(r))
	}
	ed.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	s.Update(screen.ResumeMsg{})

	if len(s.bank.Questions) != 3 {
		t.Fatalf("bank has %d questions, want 3", len(s.bank.Questions))
	}
	if s.bank.Questions[2].Title != "New one" {
		t.Errorf("added title = %q", s.bank.Questions[2].Title)
	}
	if len(s.menu.Items) != 3 || s.menu.Selected != 2 {
		t.Errorf("menu items = %d selected = %d", len(s.menu.Items), s.menu.Selected)
	}
	if !s.dirty || s.Title() != "Question Bank (modified)" {
		t.Errorf("expected modified bank, title %q", s.Title())
	}
}

func TestBankScreen_EditQuestion(t *testing.T) {
	s, _ := testScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command to open the editor")
	}
	ed := cmd().(router.PushScreenMsg).Screen.(*editor.EditorScreen)
	for _, r := range "!" {
		ed.Update(key(r))
	}
	ed.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	s.Update(screen.ResumeMsg{})

	if len(s.bank.Questions) != 2 {
		t.Fatalf("bank has %d questions, want 2", len(s.bank.Questions))
	}
	if s.bank.Questions[0].Title != "Name!" {
		t.Errorf("edited title = %q", s.bank.Questions[0].Title)
	}
}

func TestBankScreen_DeleteQuestion(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(key('d'))

	if len(s.bank.Questions) != 1 || s.bank.Questions[0].Title != "Name" {
		t.Fatalf("unexpected bank after delete: %+v", s.bank.Questions)
	}
	if s.menu.Selected != 0 {
		t.Errorf("Selected = %d, want 0", s.menu.Selected)
	}
}

func TestBankScreen_Save(t *testing.T) {
	s, _ := testScreen(t)
	s.dirty = true

	s.Update(key('s'))
	if s.statusErr {
		t.Fatalf("save failed: %s", s.status)
	}
	if s.dirty {
		t.Error("expected clean bank after save")
	}

	loaded, err := question.Load(s.bankPath)
	if err != nil {
		t.Fatalf("load saved bank: %v", err)
	}
	if len(loaded.Questions) != 2 {
		t.Errorf("saved %d questions, want 2", len(loaded.Questions))
	}
}

func TestBankScreen_Export(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(key('e'))
	if s.statusErr {
		t.Fatalf("export failed: %s", s.status)
	}
	data, err := os.ReadFile(s.exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "::Essay::") {
		t.Errorf("unexpected export: %q", data)
	}
}

func TestBankScreen_ExportErrorShown(t *testing.T) {
	s, _ := testScreen(t)
	s.bank.Add(question.Question{Type: question.TypeMulti, Title: "Broken"})
	s.refresh()

	if !strings.HasPrefix(s.menu.Items[2].Label, "✗") {
		t.Errorf("expected error mark on broken question, got %q", s.menu.Items[2].Label)
	}

	s.Update(key('e'))
	if !s.statusErr {
		t.Error("expected export error status")
	}
}

func TestBankScreen_Preview(t *testing.T) {
	s, _ := testScreen(t)
	_, cmd := s.Update(key('p'))
	if cmd == nil {
		t.Fatal("expected a command to open the preview")
	}
	push := cmd().(router.PushScreenMsg)
	if _, ok := push.Screen.(*preview.PreviewScreen); !ok {
		t.Errorf("pushed %T, want preview", push.Screen)
	}
}
