package dehnadi

import "fmt"

// AssignmentRule is one hypothesis about what a single "a = b" statement does.
type AssignmentRule int

const (
	M1 AssignmentRule = iota + 1
	M2
	M3
	M4
	M5
	M6
	M7
	M8
	M9
	M10
	M11
)

// applyFunc reads from in and writes the variables it changes into out.
type applyFunc func(in *Context, out map[string]int, a, b string)

type assignmentInfo struct {
	code        string
	description string
	apply       applyFunc
}

// assignmentTable is indexed by rule. M10 ("equality") has no agreed effect on
// the variables and behaves like M9.
var assignmentTable = [...]assignmentInfo{
	M1: {"M1", "right-to-left move", func(in *Context, out map[string]int, a, b string) {
		out[a] = in.Get(b)
		out[b] = 0
	}},
	M2: {"M2", "right-to-left copy", func(in *Context, out map[string]int, a, b string) {
		out[a] = in.Get(b)
	}},
	M3: {"M3", "left-to-right move", func(in *Context, out map[string]int, a, b string) {
		out[b] = in.Get(a)
		out[a] = 0
	}},
	M4: {"M4", "left-to-right copy", func(in *Context, out map[string]int, a, b string) {
		out[b] = in.Get(a)
	}},
	M5: {"M5", "right-to-left copy-and-add", func(in *Context, out map[string]int, a, b string) {
		out[a] = in.Get(a) + in.Get(b)
	}},
	M6: {"M6", "right-to-left move-and-add", func(in *Context, out map[string]int, a, b string) {
		out[a] = in.Get(a) + in.Get(b)
		out[b] = 0
	}},
	M7: {"M7", "left-to-right copy-and-add", func(in *Context, out map[string]int, a, b string) {
		out[b] = in.Get(b) + in.Get(a)
	}},
	M8: {"M8", "left-to-right move-and-add", func(in *Context, out map[string]int, a, b string) {
		out[b] = in.Get(b) + in.Get(a)
		out[a] = 0
	}},
	M9:  {"M9", "no change", func(*Context, map[string]int, string, string) {}},
	M10: {"M10", "equality", func(*Context, map[string]int, string, string) {}},
	M11: {"M11", "swap", func(in *Context, out map[string]int, a, b string) {
		out[a] = in.Get(b)
		out[b] = in.Get(a)
	}},
}

// moveToCopy maps each move rule to the copy rule with the same destination.
var moveToCopy = map[AssignmentRule]AssignmentRule{
	M1: M2,
	M3: M4,
	M6: M5,
	M8: M7,
}

// Code returns the short identifier, e.g. "M1".
func (r AssignmentRule) Code() string {
	if !r.valid() {
		return fmt.Sprintf("M?(%d)", int(r))
	}
	return assignmentTable[r].code
}

// Description returns a human-readable name for the rule.
func (r AssignmentRule) Description() string {
	if !r.valid() {
		return ""
	}
	return assignmentTable[r].description
}

func (r AssignmentRule) String() string { return r.Code() }

// IsMove reports whether the rule zeroes its source variable.
func (r AssignmentRule) IsMove() bool {
	_, ok := moveToCopy[r]
	return ok
}

// CopyEquivalent returns the copy rule for a move rule, or r itself.
func (r AssignmentRule) CopyEquivalent() AssignmentRule {
	if c, ok := moveToCopy[r]; ok {
		return c
	}
	return r
}

// Apply evaluates the rule for "a = b" against in, writing into out.
func (r AssignmentRule) Apply(in *Context, out map[string]int, a, b string) {
	if !r.valid() {
		return
	}
	assignmentTable[r].apply(in, out, a, b)
}

func (r AssignmentRule) valid() bool {
	return r >= M1 && r <= M11
}

// CompositionRule is one hypothesis about how several assignments in a row
// interact.
type CompositionRule int

const (
	S1 CompositionRule = iota + 1
	S2
	S3
)

type composeFunc func(ctx *Context, rule AssignmentRule, assigns []Instruction) *Context

type compositionInfo struct {
	code        string
	description string
	compose     composeFunc
}

var compositionTable = [...]compositionInfo{
	S1: {"S1", "sequential", composeSequential},
	S2: {"S2", "parallel", composeParallel},
	S3: {"S3", "parallel destination-only", func(ctx *Context, rule AssignmentRule, assigns []Instruction) *Context {
		return composeParallel(ctx, rule.CopyEquivalent(), assigns)
	}},
}

// composeSequential threads each assignment's output into the next one.
func composeSequential(ctx *Context, rule AssignmentRule, assigns []Instruction) *Context {
	for _, in := range assigns {
		out := make(map[string]int, 2)
		rule.Apply(ctx, out, in.Left, in.Right)
		ctx = ctx.Extend(out)
	}
	return ctx
}

// composeParallel evaluates every assignment against ctx. Writes to the same
// variable resolve in list order, the last one winning.
func composeParallel(ctx *Context, rule AssignmentRule, assigns []Instruction) *Context {
	out := make(map[string]int, 2*len(assigns))
	for _, in := range assigns {
		rule.Apply(ctx, out, in.Left, in.Right)
	}
	return ctx.Extend(out)
}

// Code returns the short identifier, e.g. "S1".
func (r CompositionRule) Code() string {
	if !r.valid() {
		return fmt.Sprintf("S?(%d)", int(r))
	}
	return compositionTable[r].code
}

// Description returns a human-readable name for the rule.
func (r CompositionRule) Description() string {
	if !r.valid() {
		return ""
	}
	return compositionTable[r].description
}

func (r CompositionRule) String() string { return r.Code() }

// Compose applies rule across assigns starting from ctx.
func (r CompositionRule) Compose(ctx *Context, rule AssignmentRule, assigns []Instruction) *Context {
	if !r.valid() {
		return ctx
	}
	return compositionTable[r].compose(ctx, rule, assigns)
}

func (r CompositionRule) valid() bool {
	return r >= S1 && r <= S3
}

// registries, filled once in init and read-only afterwards.
var (
	assignmentRules   []AssignmentRule
	compositionRules  []CompositionRule
	assignmentByCode  map[string]AssignmentRule
	compositionByCode map[string]CompositionRule
)

func init() {
	assignmentByCode = make(map[string]AssignmentRule, len(assignmentTable))
	for r := M1; r <= M11; r++ {
		assignmentRules = append(assignmentRules, r)
		assignmentByCode[r.Code()] = r
	}

	compositionByCode = make(map[string]CompositionRule, len(compositionTable))
	for r := S1; r <= S3; r++ {
		compositionRules = append(compositionRules, r)
		compositionByCode[r.Code()] = r
	}
}

// AssignmentRules returns every assignment rule in evaluation order.
func AssignmentRules() []AssignmentRule {
	return append([]AssignmentRule(nil), assignmentRules...)
}

// CompositionRules returns every composition rule in evaluation order.
func CompositionRules() []CompositionRule {
	return append([]CompositionRule(nil), compositionRules...)
}

// LookupAssignmentRule finds an assignment rule by code, e.g. "M11".
func LookupAssignmentRule(code string) (AssignmentRule, bool) {
	r, ok := assignmentByCode[code]
	return r, ok
}

// LookupCompositionRule finds a composition rule by code, e.g. "S2".
func LookupCompositionRule(code string) (CompositionRule, bool) {
	r, ok := compositionByCode[code]
	return r, ok
}
