package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/okshapes/graphic"
	"github.com/stretchr/testify/assert"
)

func lines(b *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func TestTraceCompound(t *testing.T) {
	var buf bytes.Buffer
	rd := NewRenderer(&buf)
	scene := graphic.NewCompound(
		graphic.NewCircle(5, 3, 10),
		graphic.NewCompound(graphic.NewDot(1, 2)),
	)
	scene.Draw(rd)

	assert.NoError(t, rd.Err())
	assert.Equal(t, []string{
		"DRAW - Circle(5,3,r=10)",
		"Circle drawing",
		"DRAW - Compound[1]",
		"DRAW - Dot(1,2)",
		"Dot drawing",
	}, lines(&buf))
}

type unnamed struct{}

func (*unnamed) Move(float64, float64) {}
func (*unnamed) Draw(graphic.Driver) {}

func TestDescribeFallback(t *testing.T) {
	assert.Equal(t, "*trace.unnamed", describe(&unnamed{}))
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestStickyError(t *testing.T) {
	w := new(failingWriter)
	rd := NewRenderer(w)
	graphic.NewCompound(graphic.NewDot(0, 0), graphic.NewDot(1, 1)).Draw(rd)
	assert.EqualError(t, rd.Err(), "disk full")
	assert.Equal(t, 1, w.n)
}
