// Given a graphic tree, implements how to draw it
// as an SVG document, by wrapping github.com/ajstarks/svgo.
// Compounds are kept as nested <g> elements.
// Coordinates are rounded to integer user units.
package svgdraw

import (
	"fmt"
	"io"
	"math"

	"github.com/ajstarks/svgo"
	"github.com/benoitkugler/okshapes/config"
	"github.com/benoitkugler/okshapes/graphic"
	"github.com/pkg/errors"
)

var _ graphic.GroupDriver = (*Renderer)(nil) // assert interface conformance

// errWriter remembers the first write error,
// since svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

type Renderer struct {
	out    *errWriter
	canvas *svg.SVG
	cfg    config.Config
	groups int // number of <g> started, used for ids
}

// NewRenderer starts an SVG document of the size of the canvas.
// Close must be called to terminate it.
func NewRenderer(w io.Writer, cfg config.Config) *Renderer {
	out := &errWriter{w: w}
	rd := &Renderer{out: out, canvas: svg.New(out), cfg: cfg}
	rd.canvas.Start(cfg.Canvas.Width, cfg.Canvas.Height)
	if bg, ok := cfg.Style.BackgroundColor(); ok {
		rd.canvas.Rect(0, 0, cfg.Canvas.Width, cfg.Canvas.Height, "fill:"+hex(bg.R, bg.G, bg.B))
	}
	return rd
}

func hex(r, g, b uint8) string { return fmt.Sprintf("#%02x%02x%02x", r, g, b) }

func round(f float64) int { return int(math.Round(f)) }

// Trace is a no-op: the structure is already
// visible through the groups.
func (rd *Renderer) Trace(graphic.Graphic) {}

func (rd *Renderer) BeginGroup(*graphic.Compound) {
	rd.groups++
	rd.canvas.Gid(fmt.Sprintf("compound%d", rd.groups))
}

func (rd *Renderer) EndGroup(*graphic.Compound) { rd.canvas.Gend() }

func (rd *Renderer) Dot(p graphic.Position) {
	x, y := rd.cfg.Canvas.ToCanvas(p.X, p.Y)
	c := rd.cfg.Style.FillColor()
	rd.canvas.Circle(round(x), round(y), round(rd.cfg.Style.DotRadius), "fill:"+hex(c.R, c.G, c.B))
}

func (rd *Renderer) Circle(center graphic.Position, radius float64) {
	x, y := rd.cfg.Canvas.ToCanvas(center.X, center.Y)
	r := round(math.Abs(radius * rd.cfg.Canvas.Scale))
	c := rd.cfg.Style.StrokeColor()
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", hex(c.R, c.G, c.B), rd.cfg.Style.LineWidth)
	rd.canvas.Circle(round(x), round(y), r, style)
}

// Close terminates the document and returns
// the first write error, if any.
func (rd *Renderer) Close() error {
	rd.canvas.End()
	return errors.Wrap(rd.out.err, "writing svg")
}

// RenderToSVG draws `g` as a complete SVG document.
func RenderToSVG(g graphic.Graphic, cfg config.Config, w io.Writer) error {
	rd := NewRenderer(w, cfg)
	g.Draw(rd)
	return rd.Close()
}
