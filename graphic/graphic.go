// Provides the building blocks of a drawing:
// leaf shapes (Dot, Circle) and Compound graphics grouping
// them, all manipulated through the same Graphic interface.
// Graphics don't know how they are painted: drawing is delegated
// to a Driver. See for example okshapes/trace, okshapes/raster,
// okshapes/pdf or okshapes/svgdraw .
package graphic

// Graphic is implemented by every element of a drawing,
// leaves and compounds alike.
// Implementations are expected to be pointers, so that
// two Graphic values are equal only for the same instance.
type Graphic interface {
	// Move translates the graphic by (dx, dy).
	Move(dx, dy float64)

	// Draw sends the graphic to the driver `d`.
	Draw(d Driver)
}

// Driver knows how to do the actual draw operations
// but doesn't need any knowledge of the graphic tree.
type Driver interface {
	// Trace is called by a Compound right before drawing `child`
	Trace(child Graphic)

	// Dot draws a dot at `p`
	Dot(p Position)

	// Circle draws a circle of the given radius,
	// which is not guaranteed to be positive.
	Circle(center Position, radius float64)
}

// GroupDriver is implemented by drivers which
// keep the structure of the tree.
// A Compound brackets its children with BeginGroup and EndGroup
// when its driver implements it.
type GroupDriver interface {
	Driver

	BeginGroup(c *Compound)
	EndGroup(c *Compound)
}
