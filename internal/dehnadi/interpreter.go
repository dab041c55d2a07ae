package dehnadi

import (
	"fmt"
	"strings"
)

// Separator joins the "name=value" pairs of an option. It is a fixed-width
// gap of non-breaking spaces, written as HTML entities.
var Separator = strings.Repeat("&nbsp;", 8)

// CodeSeparator joins the rule codes of merged candidates.
const CodeSeparator = " / "

// Binding is the value of one declared variable in a final state.
type Binding struct {
	Name  string
	Value int
}

// Option is one distinct visible final state and the rule combinations that
// produce it.
type Option struct {
	// Text renders the state, e.g. "a=2&nbsp;...b=2".
	Text string

	// Comment lists the contributing codes joined by CodeSeparator.
	Comment string

	// Codes are the contributing codes in evaluation order, e.g. ["M2", "M5"]
	// or ["M1+S1", "M1+S2"].
	Codes []string

	// Values is the visible final state in declaration order.
	Values []Binding
}

// Program is a validated instruction list split at the first assignment.
type Program struct {
	Declarations []Instruction
	Assignments  []Instruction
}

// Variables returns the distinct declared names in first-appearance order.
func (p *Program) Variables() []string {
	seen := make(map[string]bool, len(p.Declarations))
	var names []string
	for _, d := range p.Declarations {
		if seen[d.Left] {
			continue
		}
		seen[d.Left] = true
		names = append(names, d.Left)
	}
	return names
}

// Initial folds the declarations into the starting context. A later
// declaration of the same name overrides an earlier one.
func (p *Program) Initial() *Context {
	vals := make(map[string]int, len(p.Declarations))
	for _, d := range p.Declarations {
		vals[d.Left] = d.Value
	}
	return NewContext(vals)
}

// Compile parses lines and checks the declarations-then-assignments layout.
func Compile(lines []string) (*Program, error) {
	instrs, err := ParseInstructions(lines)
	if err != nil {
		return nil, err
	}

	first := -1
	for i, in := range instrs {
		if in.Kind == KindAssign {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, ErrNoAssignments
	}

	p := &Program{
		Declarations: instrs[:first],
		Assignments:  instrs[first:],
	}
	for _, in := range p.Assignments {
		if in.Kind == KindDeclare {
			return nil, fmt.Errorf("%w: %q follows the first assignment", ErrMisplacedDeclaration, in.Line)
		}
	}
	return p, nil
}

// Interpreter enumerates the outcomes of every assignment rule and
// composition rule combination.
type Interpreter struct {
	// Trace, when non-nil, records every candidate before duplicates are merged.
	Trace *Trace
}

// Interpret runs a zero-value Interpreter over lines.
func Interpret(lines []string) ([]Option, error) {
	return (&Interpreter{}).Interpret(lines)
}

type candidate struct {
	code string
	ctx  *Context
}

// Interpret parses lines and returns one Option per distinct visible final
// state, in first-seen order. Any error aborts the whole run.
func (it *Interpreter) Interpret(lines []string) ([]Option, error) {
	p, err := Compile(lines)
	if err != nil {
		return nil, err
	}
	return it.Run(p), nil
}

// Run evaluates a compiled program.
func (it *Interpreter) Run(p *Program) []Option {
	vars := p.Variables()
	var options []Option

	for _, c := range candidates(p) {
		state := make([]Binding, len(vars))
		for i, name := range vars {
			state[i] = Binding{Name: name, Value: c.ctx.Get(name)}
		}

		merged := -1
		for i := range options {
			if sameState(options[i].Values, state) {
				merged = i
				break
			}
		}

		if merged >= 0 {
			options[merged].Codes = append(options[merged].Codes, c.code)
		} else {
			options = append(options, Option{Codes: []string{c.code}, Values: state})
			merged = len(options) - 1
		}
		it.Trace.record(c.code, state, merged)
	}

	for i := range options {
		options[i].Text = renderState(options[i].Values)
		options[i].Comment = strings.Join(options[i].Codes, CodeSeparator)
	}
	return options
}

// candidates evaluates every rule combination in a fixed order. A single
// assignment has no composition to choose, so it is tagged with the
// assignment code alone.
func candidates(p *Program) []candidate {
	initial := p.Initial()
	var out []candidate

	for _, rule := range assignmentRules {
		if len(p.Assignments) == 1 {
			a := p.Assignments[0]
			overrides := make(map[string]int, 2)
			rule.Apply(initial, overrides, a.Left, a.Right)
			out = append(out, candidate{code: rule.Code(), ctx: initial.Extend(overrides)})
			continue
		}

		for _, comp := range compositionRules {
			out = append(out, candidate{
				code: rule.Code() + "+" + comp.Code(),
				ctx:  comp.Compose(initial, rule, p.Assignments),
			})
		}
	}
	return out
}

func sameState(a, b []Binding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			return false
		}
	}
	return true
}

func renderState(state []Binding) string {
	parts := make([]string, len(state))
	for i, b := range state {
		parts[i] = fmt.Sprintf("%s=%d", b.Name, b.Value)
	}
	return strings.Join(parts, Separator)
}
