// Implements a raster backend to render graphics,
// by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/okshapes/config"
	"github.com/benoitkugler/okshapes/graphic"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ graphic.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // strokes circles
	filler *rasterx.Filler // fills dots

	transform rasterx.Matrix2D // scene to pixels
	scale     float64

	strokeColor, fillColor color.Color
	lineWidth, dotRadius   float64
}

// NewRenderer returns a renderer painting on a new image, whose
// size, mapping and colors are taken from `cfg`.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
func NewRenderer(cfg config.Config, scanner rasterx.Scanner) *Renderer {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg, ok := cfg.Style.BackgroundColor(); ok {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, img.Bounds())
	}
	return &Renderer{
		img:         img,
		dasher:      rasterx.NewDasher(w, h, scanner),
		filler:      rasterx.NewFiller(w, h, scanner),
		transform:   rasterx.Identity.Translate(cfg.Canvas.OriginX, cfg.Canvas.OriginY).Scale(cfg.Canvas.Scale, cfg.Canvas.Scale),
		scale:       cfg.Canvas.Scale,
		strokeColor: cfg.Style.StrokeColor(),
		fillColor:   cfg.Style.FillColor(),
		lineWidth:   cfg.Style.LineWidth,
		dotRadius:   cfg.Style.DotRadius,
	}
}

// Image returns the image painted so far.
// It is only valid when the renderer was built with the default scanner.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// Trace is a no-op: the raster has no use of the tree structure.
func (rd *Renderer) Trace(graphic.Graphic) {}

// Dot fills a disk of constant size, whatever the scale.
func (rd *Renderer) Dot(p graphic.Position) {
	x, y := rd.transform.Transform(p.X, p.Y)
	rd.filler.Clear()
	rasterx.AddCircle(x, y, rd.dotRadius, rd.filler)
	rd.filler.SetColor(rd.fillColor)
	rd.filler.Draw()
}

// Circle strokes the outline of the circle, using
// the absolute value of the radius.
func (rd *Renderer) Circle(center graphic.Position, radius float64) {
	r := math.Abs(radius * rd.scale)
	if r == 0 {
		return // not drawn, but not an error
	}
	x, y := rd.transform.Transform(center.X, center.Y)
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(rd.lineWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	rasterx.AddCircle(x, y, r, rd.dasher)
	rd.dasher.SetColor(rd.strokeColor)
	rd.dasher.Draw()
}

// EncodePNG writes the image painted so far to `w`.
func (rd *Renderer) EncodePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, rd.img), "encoding png")
}

// RasterToImage draws `g` on a new image configured by `cfg`.
func RasterToImage(g graphic.Graphic, cfg config.Config) *image.RGBA {
	rd := NewRenderer(cfg, nil)
	g.Draw(rd)
	return rd.Image()
}
