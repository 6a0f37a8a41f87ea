// Package config holds the settings used to render a scene,
// read from a TOML file on top of the defaults.
package config

import (
	"bytes"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Canvas describes the output surface.
// Scene coordinates are mapped to the canvas by
// (Origin + Scale * p).
type Canvas struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Scale   float64 `toml:"scale"`
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`
}

// Style controls how shapes are painted.
type Style struct {
	Background string  `toml:"background"` // hex color, empty for transparent
	Stroke     string  `toml:"stroke"`     // hex color used for circles
	Fill       string  `toml:"fill"`       // hex color used for dots
	LineWidth  float64 `toml:"line_width"` // in canvas units
	DotRadius  float64 `toml:"dot_radius"` // in canvas units, not scaled
}

// Editor configures the grouping behavior.
type Editor struct {
	Mode string `toml:"mode"` // one of ignore, warn, strict
}

type Config struct {
	Canvas Canvas `toml:"canvas"`
	Style  Style  `toml:"style"`
	Editor Editor `toml:"editor"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 200, Height: 200, Scale: 10, OriginX: 20, OriginY: 20},
		Style: Style{
			Background: "#ffffff",
			Stroke:     "#000000",
			Fill:       "#1f77b4",
			LineWidth:  2,
			DotRadius:  3,
		},
		Editor: Editor{Mode: "warn"},
	}
}

// Parse decodes `data` over the defaults.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config")
	}
	return cfg, cfg.Validate()
}

// Load reads and parses the TOML file at `path`.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(data)
	return cfg, errors.Wrapf(err, "config %s", path)
}

// Validate checks the values which would make rendering impossible.
func (cfg Config) Validate() error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Scale == 0 {
		return errors.New("canvas scale must not be zero")
	}
	for _, c := range [...]string{cfg.Style.Stroke, cfg.Style.Fill} {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	if cfg.Style.Background != "" {
		if _, err := ParseColor(cfg.Style.Background); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses a hex color such as "#1f77b4" or "#fff".
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// StrokeColor returns the parsed stroke color; the config is assumed valid.
func (s Style) StrokeColor() color.RGBA {
	c, _ := ParseColor(s.Stroke)
	return c
}

// FillColor returns the parsed fill color; the config is assumed valid.
func (s Style) FillColor() color.RGBA {
	c, _ := ParseColor(s.Fill)
	return c
}

// BackgroundColor returns the background, or false if transparent.
func (s Style) BackgroundColor() (color.RGBA, bool) {
	if s.Background == "" {
		return color.RGBA{}, false
	}
	c, _ := ParseColor(s.Background)
	return c, true
}

// ToCanvas maps a scene point to canvas coordinates.
func (c Canvas) ToCanvas(x, y float64) (float64, float64) {
	return c.OriginX + c.Scale*x, c.OriginY + c.Scale*y
}
