package dehnadi

import (
	"reflect"
	"testing"
)

func TestContext_ExtendFallsBackToParent(t *testing.T) {
	root := NewContext(map[string]int{"a": 1, "b": 2})
	child := root.Extend(map[string]int{"a": 10})

	if got := child.Get("a"); got != 10 {
		t.Errorf("child a = %d, want 10", got)
	}
	if got := child.Get("b"); got != 2 {
		t.Errorf("child b = %d, want 2 (inherited)", got)
	}
	if got := root.Get("a"); got != 1 {
		t.Errorf("root a = %d, want 1 (unchanged)", got)
	}
	if child.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", child.Depth())
	}
}

func TestContext_OverridesAreCopied(t *testing.T) {
	vals := map[string]int{"a": 1}
	ctx := NewContext(vals)
	vals["a"] = 99

	if got := ctx.Get("a"); got != 1 {
		t.Errorf("a = %d, want 1; context must not alias its input", got)
	}
}

func TestContext_Unbound(t *testing.T) {
	ctx := NewContext(nil)
	if v, ok := ctx.Lookup("missing"); ok || v != 0 {
		t.Errorf("Lookup(missing) = (%d, %v), want (0, false)", v, ok)
	}

	var nilCtx *Context
	if got := nilCtx.Get("x"); got != 0 {
		t.Errorf("nil context Get = %d, want 0", got)
	}
}

func TestContext_Flatten(t *testing.T) {
	ctx := NewContext(map[string]int{"a": 1, "b": 2}).
		Extend(map[string]int{"b": 3}).
		Extend(map[string]int{"c": 4})

	want := map[string]int{"a": 1, "b": 3, "c": 4}
	if got := ctx.Flatten(); !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %v, want %v", got, want)
	}
}
