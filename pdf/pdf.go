// Implements a PDF backend to render graphics,
// by wrapping github.com/jung-kurt/gofpdf.
package pdf

import (
	"io"
	"math"

	"github.com/benoitkugler/okshapes/config"
	"github.com/benoitkugler/okshapes/graphic"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

var _ graphic.Driver = Renderer{} // assert interface conformance

// Renderer draws on the current page of a PDF document.
type Renderer struct {
	pdf    *gofpdf.Fpdf
	style  config.Style
	canvas config.Canvas
}

// NewDocument returns a one page document, in points,
// whose page has the size of the canvas.
func NewDocument(cfg config.Config) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(cfg.Canvas.Width), Ht: float64(cfg.Canvas.Height)},
	})
	pdf.SetCompression(false)
	pdf.AddPage()
	if bg, ok := cfg.Style.BackgroundColor(); ok {
		pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		pdf.Rect(0, 0, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), "F")
	}
	return pdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf, cfg config.Config) Renderer {
	return Renderer{pdf: pdf, style: cfg.Style, canvas: cfg.Canvas}
}

// Trace is a no-op.
func (rd Renderer) Trace(graphic.Graphic) {}

func (rd Renderer) Dot(p graphic.Position) {
	x, y := rd.canvas.ToCanvas(p.X, p.Y)
	c := rd.style.FillColor()
	rd.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	rd.pdf.Circle(x, y, rd.style.DotRadius, "F")
}

func (rd Renderer) Circle(center graphic.Position, radius float64) {
	r := math.Abs(radius * rd.canvas.Scale)
	if r == 0 {
		return
	}
	x, y := rd.canvas.ToCanvas(center.X, center.Y)
	c := rd.style.StrokeColor()
	rd.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	rd.pdf.SetLineWidth(rd.style.LineWidth)
	rd.pdf.Circle(x, y, r, "D")
}

// RenderToPDF draws `g` on a new document and
// writes it to `w`.
func RenderToPDF(g graphic.Graphic, cfg config.Config, w io.Writer) error {
	pdf := NewDocument(cfg)
	g.Draw(NewRenderer(pdf, cfg))
	return errors.Wrap(pdf.Output(w), "writing pdf")
}
