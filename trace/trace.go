// Implements a textual backend, which describes
// each draw operation on its own line.
package trace

import (
	"fmt"
	"io"

	"github.com/benoitkugler/okshapes/graphic"
)

var _ graphic.Driver = (*Renderer)(nil) // assert interface conformance

const (
	dotLine     = "Dot drawing"
	circleLine  = "Circle drawing"
	tracePrefix = "DRAW - "
)

// Renderer writes trace lines to an io.Writer.
// Write errors are sticky: after the first one, nothing
// more is written and Err returns it.
type Renderer struct {
	w   io.Writer
	err error
}

// NewRenderer returns a renderer writing to `w`.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (rd *Renderer) println(line string) {
	if rd.err != nil {
		return
	}
	_, rd.err = fmt.Fprintln(rd.w, line)
}

// Trace writes which child is about to be drawn.
func (rd *Renderer) Trace(child graphic.Graphic) {
	rd.println(tracePrefix + describe(child))
}

func (rd *Renderer) Dot(graphic.Position) { rd.println(dotLine) }

func (rd *Renderer) Circle(graphic.Position, float64) { rd.println(circleLine) }

// Err returns the first write error encountered, if any.
func (rd *Renderer) Err() error { return rd.err }

func describe(g graphic.Graphic) string {
	if s, ok := g.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", g)
}
