package dehnadi

import (
	"fmt"
	"strings"
)

// TraceEvent records one evaluated rule combination.
type TraceEvent struct {
	Code   string
	State  []Binding
	Option int // Index of the option the candidate ended up in
	Merged bool
}

// Trace collects evaluation events in the order candidates were produced.
type Trace struct {
	events []TraceEvent
}

func (t *Trace) record(code string, state []Binding, option int) {
	if t == nil {
		return
	}
	merged := false
	for _, e := range t.events {
		if e.Option == option {
			merged = true
			break
		}
	}
	t.events = append(t.events, TraceEvent{
		Code:   code,
		State:  append([]Binding(nil), state...),
		Option: option,
		Merged: merged,
	})
}

// Events returns a copy of the recorded events.
func (t *Trace) Events() []TraceEvent {
	if t == nil {
		return nil
	}
	return append([]TraceEvent(nil), t.events...)
}

// Reset drops all recorded events.
func (t *Trace) Reset() {
	t.events = t.events[:0]
}

func (t *Trace) String() string {
	var b strings.Builder
	for _, e := range t.Events() {
		pairs := make([]string, len(e.State))
		for i, s := range e.State {
			pairs[i] = fmt.Sprintf("%s=%d", s.Name, s.Value)
		}
		mark := "new"
		if e.Merged {
			mark = "dup"
		}
		fmt.Fprintf(&b, "%-8s #%-2d %s  %s\n", e.Code, e.Option+1, mark, strings.Join(pairs, " "))
	}
	return b.String()
}
