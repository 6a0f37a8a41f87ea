package graphic

import "fmt"

var _ Graphic = (*Compound)(nil)

// Compound groups an ordered list of graphics,
// which may be leaves or other compounds, and forwards
// every operation to them.
// The same graphic may be added several times, and nothing
// prevents a compound from (indirectly) containing itself:
// drawing or moving such a cycle never returns.
// The zero value is an empty compound, ready to use.
type Compound struct {
	children []Graphic
}

// NewCompound returns a compound containing `children`, in order.
func NewCompound(children ...Graphic) *Compound {
	c := new(Compound)
	for _, child := range children {
		c.Add(child)
	}
	return c
}

// Add appends `child`, without checking for duplicates.
func (c *Compound) Add(child Graphic) {
	c.children = append(c.children, child)
}

// Remove unlinks every occurrence of `child` (compared by identity)
// and returns how many were removed.
// Removing a graphic which is not a child is a no-op.
func (c *Compound) Remove(child Graphic) int {
	kept := c.children[:0]
	for _, g := range c.children {
		if g != child {
			kept = append(kept, g)
		}
	}
	removed := len(c.children) - len(kept)
	for i := len(kept); i < len(c.children); i++ {
		c.children[i] = nil // release references
	}
	c.children = kept
	return removed
}

// Len returns the number of direct children.
func (c *Compound) Len() int { return len(c.children) }

// Children returns a copy of the direct children, in insertion order.
func (c *Compound) Children() []Graphic {
	return append([]Graphic(nil), c.children...)
}

// Contains returns true if `g` is a direct child.
func (c *Compound) Contains(g Graphic) bool {
	for _, child := range c.children {
		if child == g {
			return true
		}
	}
	return false
}

// Move translates every child.
func (c *Compound) Move(dx, dy float64) {
	for _, child := range c.children {
		child.Move(dx, dy)
	}
}

// Draw draws every child in insertion order,
// calling `d.Trace` before each one.
func (c *Compound) Draw(d Driver) {
	gd, isGroup := d.(GroupDriver)
	if isGroup {
		gd.BeginGroup(c)
	}
	for _, child := range c.children {
		d.Trace(child)
		child.Draw(d)
	}
	if isGroup {
		gd.EndGroup(c)
	}
}

// Walk visits the tree rooted at `c` in depth first pre-order,
// `c` excepted. Descendants of a compound are skipped if `fn` returns false
// for it.
func (c *Compound) Walk(fn func(g Graphic, depth int) bool) {
	c.walk(fn, 0)
}

func (c *Compound) walk(fn func(g Graphic, depth int) bool, depth int) {
	for _, child := range c.children {
		if !fn(child, depth) {
			continue
		}
		if sub, ok := child.(*Compound); ok {
			sub.walk(fn, depth+1)
		}
	}
}

func (c *Compound) String() string {
	return fmt.Sprintf("Compound[%d]", len(c.children))
}
