package dehnadi

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind distinguishes the two statement shapes the interpreter understands.
type Kind int

const (
	// KindDeclare sets a variable to an integer literal, e.g. "int a = 1;" or "a = 1;".
	KindDeclare Kind = iota

	// KindAssign copies one variable into another, e.g. "a = b;".
	KindAssign
)

func (k Kind) String() string {
	switch k {
	case KindDeclare:
		return "declare"
	case KindAssign:
		return "assign"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Instruction is one parsed line of pseudo-code.
type Instruction struct {
	Kind Kind

	// Left is the destination variable for both kinds.
	Left string

	// Right is the source variable. Only set for KindAssign.
	Right string

	// Value is the integer literal. Only set for KindDeclare.
	Value int

	// Line is the raw text the instruction was parsed from.
	Line string
}

func (in Instruction) String() string {
	if in.Kind == KindAssign {
		return fmt.Sprintf("%s = %s", in.Left, in.Right)
	}
	return fmt.Sprintf("%s = %d", in.Left, in.Value)
}

var (
	declarePattern = regexp.MustCompile(`^\s*int\s+([_a-zA-Z]\w*)\s*=\s*(\d+)\s*;?\s*$`)
	assignPattern  = regexp.MustCompile(`^\s*([_a-zA-Z]\w*)\s*=\s*([_a-zA-Z]\w*|\d+)\s*;?\s*$`)
)

// ParseInstruction parses a single line. Returns a *ParseError when the line
// matches neither statement shape.
func ParseInstruction(line string) (Instruction, error) {
	if m := declarePattern.FindStringSubmatch(line); m != nil {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			return Instruction{}, &ParseError{Line: line, Err: err}
		}
		return Instruction{Kind: KindDeclare, Left: m[1], Value: v, Line: line}, nil
	}

	if m := assignPattern.FindStringSubmatch(line); m != nil {
		if isDigits(m[2]) {
			v, err := strconv.Atoi(m[2])
			if err != nil {
				return Instruction{}, &ParseError{Line: line, Err: err}
			}
			return Instruction{Kind: KindDeclare, Left: m[1], Value: v, Line: line}, nil
		}
		return Instruction{Kind: KindAssign, Left: m[1], Right: m[2], Line: line}, nil
	}

	return Instruction{}, &ParseError{Line: line}
}

// ParseInstructions parses every line, stopping at the first failure.
// The returned *ParseError carries the zero-based index of the bad line.
func ParseInstructions(lines []string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		in, err := ParseInstruction(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Index = i
			}
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// SplitLines splits free text into instruction lines, dropping blank lines.
func SplitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
