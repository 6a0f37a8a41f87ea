// Package editor drives a scene: it loads an initial
// drawing and groups some of its graphics into compounds.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/benoitkugler/okshapes/graphic"
	"github.com/pkg/errors"
)

// ErrNotInScene is returned in StrictErrorMode when
// a graphic to group is not a direct child of the root scene.
var ErrNotInScene = errors.New("graphic is not in the scene")

// ErrorMode determines how GroupSelected handles graphics
// which are not direct children of the root scene.
// In every mode but StrictErrorMode, such a graphic is still added
// to the new group.
type ErrorMode uint8

const (
	WarnErrorMode   ErrorMode = iota // log a warning, then group anyway
	IgnoreErrorMode                  // group silently
	StrictErrorMode                  // reject the whole call
)

func (m ErrorMode) String() string {
	switch m {
	case WarnErrorMode:
		return "warn"
	case IgnoreErrorMode:
		return "ignore"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<unknown ErrorMode %d>", uint8(m))
	}
}

// ParseErrorMode is the inverse of ErrorMode.String
func ParseErrorMode(s string) (ErrorMode, error) {
	for _, m := range [...]ErrorMode{WarnErrorMode, IgnoreErrorMode, StrictErrorMode} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, errors.Errorf("invalid error mode %q (expected warn, ignore or strict)", s)
}

// DefaultScene returns the graphics added by Load
// when no scene is configured.
func DefaultScene() []graphic.Graphic {
	return []graphic.Graphic{
		graphic.NewDot(1, 2),
		graphic.NewCircle(5, 3, 10),
	}
}

type Option func(*Editor)

// WithLogger sets the logger, which defaults to slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// WithMode sets the ErrorMode, which defaults to WarnErrorMode.
func WithMode(mode ErrorMode) Option {
	return func(e *Editor) { e.mode = mode }
}

// WithScene replaces DefaultScene. `scene` is called on each Load
// and must return fresh graphics.
func WithScene(scene func() []graphic.Graphic) Option {
	return func(e *Editor) { e.scene = scene }
}

// Editor owns the root scene.
// It is not safe for concurrent use.
type Editor struct {
	all    *graphic.Compound
	driver graphic.Driver
	mode   ErrorMode
	logger *slog.Logger
	scene  func() []graphic.Graphic
}

// New returns an editor drawing to `d`, with an empty root scene.
func New(d graphic.Driver, opts ...Option) *Editor {
	e := &Editor{
		all:    new(graphic.Compound),
		driver: d,
		logger: slog.Default(),
		scene:  DefaultScene,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Root returns the root scene.
func (e *Editor) Root() *graphic.Compound { return e.all }

// Load discards the current scene, and replaces it
// by a new one, populated with the initial graphics.
func (e *Editor) Load() {
	e.all = new(graphic.Compound)
	for _, g := range e.scene() {
		e.all.Add(g)
	}
	e.logger.Debug("scene loaded", "children", e.all.Len())
}

// GroupSelected moves `components` from the root scene
// into a new compound, appends it to the root scene
// and redraws everything.
// A component which is not in the root scene ends up in the group
// anyway, unless the editor is in StrictErrorMode, in which case
// nothing is modified and an error wrapping ErrNotInScene is returned.
func (e *Editor) GroupSelected(components ...graphic.Graphic) (*graphic.Compound, error) {
	for _, c := range components {
		if e.all.Contains(c) {
			continue
		}
		switch e.mode {
		case StrictErrorMode:
			return nil, errors.Wrapf(ErrNotInScene, "grouping %v", c)
		case WarnErrorMode:
			e.logger.Warn("grouping a graphic which is not in the scene", "graphic", fmt.Sprint(c))
		}
	}

	group := new(graphic.Compound)
	for _, c := range components {
		group.Add(c)
		e.all.Remove(c)
	}
	e.all.Add(group)
	e.logger.Debug("graphics grouped", "grouped", group.Len(), "children", e.all.Len())

	e.Draw()
	return group, nil
}

// Draw draws the whole scene.
func (e *Editor) Draw() {
	e.all.Draw(e.driver)
}

// Move translates the whole scene.
func (e *Editor) Move(dx, dy float64) {
	e.all.Move(dx, dy)
}
