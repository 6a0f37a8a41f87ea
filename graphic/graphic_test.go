package graphic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder stores every call as a string
type recorder struct {
	calls []string
}

func (r *recorder) Trace(child Graphic) { r.calls = append(r.calls, "trace "+fmt.Sprint(child)) }

func (r *recorder) Dot(p Position) { r.calls = append(r.calls, "dot "+p.String()) }

func (r *recorder) Circle(center Position, radius float64) {
	r.calls = append(r.calls, fmt.Sprintf("circle %s %g", center, radius))
}

type groupRecorder struct {
	recorder
}

func (r *groupRecorder) BeginGroup(c *Compound) { r.calls = append(r.calls, "begin "+c.String()) }
func (r *groupRecorder) EndGroup(c *Compound) { r.calls = append(r.calls, "end "+c.String()) }

// leaves returns the positions of every leaf in the tree
func leaves(c *Compound) []Position {
	var out []Position
	c.Walk(func(g Graphic, _ int) bool {
		switch g := g.(type) {
		case *Dot:
			out = append(out, g.Position)
		case *Circle:
			out = append(out, g.Position)
		}
		return true
	})
	return out
}

func TestLeafMove(t *testing.T) {
	for _, tc := range []struct {
		g      Graphic
		dx, dy float64
		want   Position
	}{
		{NewDot(1, 2), 3, 4, Position{4, 6}},
		{NewDot(1, 2), -1, -2, Position{0, 0}},
		{NewDot(1, 2), 0, 0, Position{1, 2}},
		{NewCircle(5, 3, 10), 0.5, -3, Position{5.5, 0}},
	} {
		tc.g.Move(tc.dx, tc.dy)
		switch g := tc.g.(type) {
		case *Dot:
			assert.Equal(t, tc.want, g.Position)
		case *Circle:
			assert.Equal(t, tc.want, g.Position)
			assert.Equal(t, 10., g.Radius, "radius is not affected by a move")
		}
	}
}

func TestLeafDraw(t *testing.T) {
	var r recorder
	NewDot(1, 2).Draw(&r)
	NewCircle(5, 3, -10).Draw(&r)
	assert.Equal(t, []string{"dot 1,2", "circle 5,3 -10"}, r.calls)
}

func TestCompoundMoveNested(t *testing.T) {
	inner := NewCompound(NewDot(1, 1), NewCompound(NewCircle(2, 2, 1)))
	root := NewCompound(NewDot(0, 0), inner, NewCompound())
	before := leaves(root)
	require.Len(t, before, 3)

	root.Move(0, 0)
	assert.Equal(t, before, leaves(root))

	root.Move(-2.5, 7)
	after := leaves(root)
	for i := range before {
		assert.Equal(t, before[i].X-2.5, after[i].X)
		assert.Equal(t, before[i].Y+7, after[i].Y)
	}
}

func TestCompoundDrawOrder(t *testing.T) {
	a, b, c := NewDot(1, 0), NewCircle(2, 0, 1), NewDot(3, 0)
	var r recorder
	NewCompound(a, b, c).Draw(&r)
	assert.Equal(t, []string{
		"trace Dot(1,0)", "dot 1,0",
		"trace Circle(2,0,r=1)", "circle 2,0 1",
		"trace Dot(3,0)", "dot 3,0",
	}, r.calls)

	r.calls = nil
	new(Compound).Draw(&r)
	assert.Empty(t, r.calls)
}

func TestCompoundDrawGroups(t *testing.T) {
	var r groupRecorder
	NewCompound(NewCompound(NewDot(1, 2))).Draw(&r)
	assert.Equal(t, []string{
		"begin Compound[1]",
		"trace Compound[1]",
		"begin Compound[1]",
		"trace Dot(1,2)", "dot 1,2",
		"end Compound[1]",
		"end Compound[1]",
	}, r.calls)
}

func TestAddRemove(t *testing.T) {
	x, y := NewDot(0, 0), NewDot(0, 0)
	c := NewCompound(y)

	c.Add(x)
	assert.Equal(t, 1, c.Remove(x))
	assert.Equal(t, []Graphic{y}, c.Children())

	c.Add(x)
	c.Add(x)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.Remove(x))
	assert.False(t, c.Contains(x))
	assert.True(t, c.Contains(y), "structurally equal graphics are distinct")

	assert.Equal(t, 0, c.Remove(NewCircle(1, 1, 1)))
	assert.Equal(t, 1, c.Len())
}

func TestChildrenIsACopy(t *testing.T) {
	c := NewCompound(NewDot(0, 0))
	children := c.Children()
	children[0] = nil
	assert.NotNil(t, c.Children()[0])
}

func TestWalkSkip(t *testing.T) {
	inner := NewCompound(NewDot(1, 1))
	root := NewCompound(inner, NewDot(2, 2))
	var visited []string
	root.Walk(func(g Graphic, depth int) bool {
		visited = append(visited, fmt.Sprintf("%d:%s", depth, g))
		return g != inner
	})
	assert.Equal(t, []string{"0:Compound[1]", "0:Dot(2,2)"}, visited)
}

func TestMultiDriver(t *testing.T) {
	var plain recorder
	var grouped groupRecorder
	d := MultiDriver(&plain, MultiDriver(&grouped))
	NewCompound(NewDot(1, 2)).Draw(d)

	assert.Equal(t, []string{"trace Dot(1,2)", "dot 1,2"}, plain.calls)
	assert.Equal(t, []string{"begin Compound[1]", "trace Dot(1,2)", "dot 1,2", "end Compound[1]"}, grouped.calls)
}
