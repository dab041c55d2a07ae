package question

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/quizgift/internal/dehnadi"
)

// Validator checks a single question before export.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if q passes, otherwise the first problem found.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed a check.
type ValidationError struct {
	Validator  string // Name of the validator that failed
	QuestionID string
	Message    string // Human-readable description of the failure
	Warning    bool   // Export can proceed; the output may not be what the author meant
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: question %s: %s", e.Validator, e.QuestionID, e.Message)
}

// DefaultValidators returns the standard validator chain in run order.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&OptionValueValidator{},
		&InstructionValidator{},
	}
}

// ValidateBank runs validators over every question.
func ValidateBank(b *Bank, validators []Validator) []*ValidationError {
	var problems []*ValidationError
	for i := range b.Questions {
		problems = append(problems, ValidateQuestion(&b.Questions[i], validators)...)
	}
	return problems
}

// ValidateQuestion runs the validator chain over q. The chain stops at the
// first hard error; warnings do not stop it.
func ValidateQuestion(q *Question, validators []Validator) []*ValidationError {
	var problems []*ValidationError
	for _, v := range validators {
		verr := v.Validate(q)
		if verr == nil {
			continue
		}
		if verr.QuestionID == "" {
			verr.QuestionID = q.ID
		}
		problems = append(problems, verr)
		if !verr.Warning {
			break
		}
	}
	return problems
}

// HasErrors reports whether any problem is not a warning.
func HasErrors(problems []*ValidationError) bool {
	for _, p := range problems {
		if !p.Warning {
			return true
		}
	}
	return false
}

// StructuralValidator checks the type and that the question carries the
// options its type needs.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if !q.Type.Valid() {
		return &ValidationError{
			Validator:  v.Name(),
			QuestionID: q.ID,
			Message:    fmt.Sprintf("unknown question type %q", q.Type),
		}
	}
	if q.Type.ShowOptions() && len(q.Options) == 0 {
		return &ValidationError{
			Validator:  v.Name(),
			QuestionID: q.ID,
			Message:    fmt.Sprintf("%s question has no options", q.Type),
		}
	}
	if q.Type.ShowInstructions() && len(q.Instructions()) == 0 {
		return &ValidationError{
			Validator:  v.Name(),
			QuestionID: q.ID,
			Message:    "dehnadi question has no instructions",
		}
	}
	if !q.Type.ShowOptions() && !q.Type.ShowInstructions() && len(q.Options) > 0 {
		return &ValidationError{
			Validator:  v.Name(),
			QuestionID: q.ID,
			Message:    fmt.Sprintf("%s question ignores its %d options", q.Type, len(q.Options)),
			Warning:    true,
		}
	}
	return nil
}

// OptionValueValidator checks that option weights can be turned into GIFT
// percentages.
type OptionValueValidator struct{}

func (v *OptionValueValidator) Name() string { return "option-value" }

func (v *OptionValueValidator) Validate(q *Question) *ValidationError {
	if !q.Type.ShowOptions() {
		return nil
	}

	var total, max float64
	max = math.Inf(-1)
	for i, o := range q.Options {
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			return &ValidationError{
				Validator:  v.Name(),
				QuestionID: q.ID,
				Message:    fmt.Sprintf("option %d has a non-finite value", i+1),
			}
		}
		total += o.Value
		if o.Value > max {
			max = o.Value
		}
	}

	switch q.Type {
	case TypeMulti:
		if total == 0 && max != 0 {
			return &ValidationError{
				Validator:  v.Name(),
				QuestionID: q.ID,
				Message:    "option values sum to zero, so no option can be weighted",
			}
		}
	case TypeSingle:
		if max <= 0 {
			return &ValidationError{
				Validator:  v.Name(),
				QuestionID: q.ID,
				Message:    "no option has a positive value; every top-valued option is marked correct",
				Warning:    true,
			}
		}
	}

	for i, o := range q.Options {
		if strings.TrimSpace(o.Text) == "" {
			return &ValidationError{
				Validator:  v.Name(),
				QuestionID: q.ID,
				Message:    fmt.Sprintf("option %d has empty text", i+1),
				Warning:    true,
			}
		}
	}
	return nil
}

// InstructionValidator runs the interpreter over a Dehnadi question's
// instructions.
type InstructionValidator struct{}

func (v *InstructionValidator) Name() string { return "instructions" }

func (v *InstructionValidator) Validate(q *Question) *ValidationError {
	if !q.Type.ShowInstructions() {
		return nil
	}
	if _, err := dehnadi.Interpret(q.Instructions()); err != nil {
		return &ValidationError{
			Validator:  v.Name(),
			QuestionID: q.ID,
			Message:    err.Error(),
		}
	}
	return nil
}
