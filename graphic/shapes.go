package graphic

import (
	"fmt"
	"strconv"
)

var (
	_ Graphic = (*Dot)(nil)
	_ Graphic = (*Circle)(nil)
)

// Position is the location of a leaf,
// and implements the translation shared by all leaves.
type Position struct {
	X, Y float64
}

// Move adds the offsets to the position.
func (p *Position) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

func (p Position) String() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Dot is the simplest graphic: a single point.
type Dot struct {
	Position
}

// NewDot returns a dot located at (x, y).
func NewDot(x, y float64) *Dot {
	return &Dot{Position: Position{X: x, Y: y}}
}

func (d *Dot) Draw(dr Driver) {
	dr.Dot(d.Position)
}

func (d *Dot) String() string {
	return fmt.Sprintf("Dot(%s)", d.Position)
}

// Circle is a dot with a radius.
// Negative radius are not rejected.
type Circle struct {
	Position
	Radius float64
}

// NewCircle returns a circle centered on (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{Position: Position{X: x, Y: y}, Radius: radius}
}

func (c *Circle) Draw(dr Driver) {
	dr.Circle(c.Position, c.Radius)
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%s,r=%s)", c.Position, formatFloat(c.Radius))
}
