package question

import (
	"strings"

	"github.com/google/uuid"
)

// Type selects how a question is answered and exported.
type Type string

const (
	TypeShort   Type = "short"   // Free short text
	TypeLong    Type = "long"    // Free long text (essay)
	TypeMulti   Type = "multi"   // Multiple choice, multiple response
	TypeSingle  Type = "single"  // Multiple choice, single response
	TypeDehnadi Type = "dehnadi" // Assignment-semantics test, options generated
)

// TypeInfo pairs a Type with the label shown in the editor.
type TypeInfo struct {
	Type  Type
	Label string
}

// Types lists every question type in menu order.
var Types = []TypeInfo{
	{TypeShort, "Short text"},
	{TypeLong, "Long text"},
	{TypeMulti, "Multiple choice, multiple response"},
	{TypeSingle, "Multiple choice, single response"},
	{TypeDehnadi, "Dehnadi test"},
}

// Label returns the editor label, or the raw type for unknown values.
func (t Type) Label() string {
	for _, ti := range Types {
		if ti.Type == t {
			return ti.Label
		}
	}
	return string(t)
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	for _, ti := range Types {
		if ti.Type == t {
			return true
		}
	}
	return false
}

// ShowOptions reports whether the type takes weighted answer options.
func (t Type) ShowOptions() bool {
	return t == TypeMulti || t == TypeSingle
}

// ShowInstructions reports whether the type takes instruction lines.
func (t Type) ShowInstructions() bool {
	return t == TypeDehnadi
}

// Option is one answer choice. For Dehnadi questions the Text holds an
// instruction line and Value is unused.
type Option struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Question is one entry of a bank.
type Question struct {
	ID      string   `json:"id,omitempty"`
	Type    Type     `json:"type"`
	Title   string   `json:"title,omitempty"`
	Text    string   `json:"text,omitempty"`
	Options []Option `json:"options,omitempty"`
}

// New returns an empty question of type t with a fresh ID.
func New(t Type) Question {
	if t == "" {
		t = TypeShort
	}
	return Question{ID: uuid.NewString(), Type: t}
}

// AddOption appends an empty option.
func (q *Question) AddOption() {
	q.Options = append(q.Options, Option{})
}

// RemoveOption deletes the option at i. Out-of-range indexes are ignored.
func (q *Question) RemoveOption(i int) {
	if i < 0 || i >= len(q.Options) {
		return
	}
	q.Options = append(q.Options[:i], q.Options[i+1:]...)
}

// Instructions returns the non-blank option texts, which a Dehnadi question
// uses as its program.
func (q *Question) Instructions() []string {
	var lines []string
	for _, o := range q.Options {
		if strings.TrimSpace(o.Text) == "" {
			continue
		}
		lines = append(lines, o.Text)
	}
	return lines
}

// SetInstructions replaces the options with one per line.
func (q *Question) SetInstructions(lines []string) {
	q.Options = q.Options[:0]
	for _, l := range lines {
		q.Options = append(q.Options, Option{Text: l})
	}
}

// DisplayTitle returns the title, or a placeholder for untitled questions.
func (q *Question) DisplayTitle() string {
	if q.Title != "" {
		return q.Title
	}
	return "(untitled)"
}
