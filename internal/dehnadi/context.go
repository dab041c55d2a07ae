package dehnadi

// Context is an immutable snapshot of variable values. A context derived with
// Extend shares its parent and only stores the keys it overrides.
type Context struct {
	parent *Context
	values map[string]int
}

// NewContext returns a root context holding a copy of values.
func NewContext(values map[string]int) *Context {
	return (*Context)(nil).Extend(values)
}

// Extend returns a child context whose lookups fall back to c for keys not
// present in overrides. The receiver may be nil.
func (c *Context) Extend(overrides map[string]int) *Context {
	vals := make(map[string]int, len(overrides))
	for k, v := range overrides {
		vals[k] = v
	}
	return &Context{parent: c, values: vals}
}

// Lookup returns the value bound to name and whether it is bound anywhere
// along the chain.
func (c *Context) Lookup(name string) (int, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if v, ok := ctx.values[name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Get returns the value bound to name, or 0 when it is unbound.
func (c *Context) Get(name string) int {
	v, _ := c.Lookup(name)
	return v
}

// Depth is the number of links in the chain, the root counting as one.
func (c *Context) Depth() int {
	n := 0
	for ctx := c; ctx != nil; ctx = ctx.parent {
		n++
	}
	return n
}

// Flatten collapses the chain into a plain map.
func (c *Context) Flatten() map[string]int {
	out := make(map[string]int)
	var walk func(*Context)
	walk = func(ctx *Context) {
		if ctx == nil {
			return
		}
		walk(ctx.parent)
		for k, v := range ctx.values {
			out[k] = v
		}
	}
	walk(c)
	return out
}
