// Package scene loads grid scenes from YAML: a viewport, a grid container,
// responsive rules and a photo collection. The CLI and the demo use scenes
// to drive the grid without a live host.
package scene

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/gridlist"
	"github.com/go-theft-auto/gridlist/breakpoints"
)

// Photo is an image-like item. Its rendered height keeps the aspect ratio
// at the current column width.
type Photo struct {
	Key    string `yaml:"key"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color,omitempty"` // #rrggbb
}

// Viewport describes the scroller.
type Viewport struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	ScrollY float64 `yaml:"scroll-y"`
}

// Container describes the grid container inside the scroller's content.
type Container struct {
	Top   float64 `yaml:"top"`
	Left  float64 `yaml:"left"`
	Width float64 `yaml:"width"` // Defaults to the viewport width minus Left
}

// Generate appends synthetic photos after the listed ones.
type Generate struct {
	Count     int     `yaml:"count"`
	Seed      uint64  `yaml:"seed"`
	MinAspect float64 `yaml:"min-aspect"` // height / width
	MaxAspect float64 `yaml:"max-aspect"`
}

// Scene is a decoded scene file.
type Scene struct {
	Name      string    `yaml:"name"`
	Viewport  Viewport  `yaml:"viewport"`
	Container Container `yaml:"container"`
	Columns   string    `yaml:"columns"`          // breakpoints rules on container width
	Gap       string    `yaml:"gap,omitempty"`    // breakpoints rules on container width
	Margin    *float64  `yaml:"margin,omitempty"` // Defaults to one viewport height
	Photos    []Photo   `yaml:"photos"`
	Generate  *Generate `yaml:"generate,omitempty"`
}

// Load reads and decodes a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene and fills defaults.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Container.Width == 0 {
		s.Container.Width = s.Viewport.Width - s.Container.Left
	}
	return &s, nil
}

func (s *Scene) validate() error {
	var errs []error
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		errs = append(errs, errors.New("viewport width and height must be positive"))
	}
	if s.Columns == "" {
		errs = append(errs, errors.New("columns rules are required"))
	}
	for i, p := range s.Photos {
		if p.Key == "" {
			errs = append(errs, fmt.Errorf("photo %d: key is required", i))
		}
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("photo %d (%s): width and height must be positive", i, p.Key))
		}
	}
	if g := s.Generate; g != nil {
		if g.Count < 0 {
			errs = append(errs, errors.New("generate: count must not be negative"))
		}
		if g.MinAspect < 0 || g.MaxAspect < g.MinAspect {
			errs = append(errs, errors.New("generate: need 0 <= min-aspect <= max-aspect"))
		}
	}
	return errors.Join(errs...)
}

// Policy compiles the scene's rules into a grid policy for photos.
func (s *Scene) Policy() (gridlist.PolicyFuncs[Photo], error) {
	columns, err := breakpoints.Parse(s.Columns)
	if err != nil {
		return gridlist.PolicyFuncs[Photo]{}, fmt.Errorf("columns: %w", err)
	}

	policy := gridlist.PolicyFuncs[Photo]{
		Columns:  columns.Int,
		ItemSize: PhotoSize,
	}
	if s.Gap != "" {
		gap, err := breakpoints.Parse(s.Gap)
		if err != nil {
			return gridlist.PolicyFuncs[Photo]{}, fmt.Errorf("gap: %w", err)
		}
		policy.GridGap = func(elementWidth, _ float64) float64 { return gap.Float(elementWidth) }
	}
	if s.Margin != nil {
		margin := *s.Margin
		policy.WindowMargin = func(float64) float64 { return margin }
	}
	return policy, nil
}

// PhotoSize keys a photo by Key and scales its height to columnWidth.
func PhotoSize(p Photo, columnWidth float64) gridlist.ItemSize {
	h := 0.0
	if p.Width > 0 {
		h = columnWidth * float64(p.Height) / float64(p.Width)
	}
	return gridlist.ItemSize{Key: p.Key, Height: h}
}

// Items returns the listed photos followed by the generated ones.
// Generation is deterministic for a given seed.
func (s *Scene) Items() []Photo {
	items := append([]Photo(nil), s.Photos...)
	g := s.Generate
	if g == nil || g.Count == 0 {
		return items
	}

	minA, maxA := g.MinAspect, g.MaxAspect
	if maxA == 0 {
		minA, maxA = 0.5, 1.5
	}
	rng := rand.New(rand.NewPCG(g.Seed, g.Seed^0x9e3779b97f4a7c15))
	for i := range g.Count {
		aspect := minA + rng.Float64()*(maxA-minA)
		items = append(items, Photo{
			Key:    fmt.Sprintf("gen-%d", i),
			Width:  1000,
			Height: max(1, int(1000*aspect)),
			Color:  fmt.Sprintf("#%06x", rng.Uint32()&0xffffff),
		})
	}
	return items
}

// Targets builds measurable targets for the scene: the viewport as a
// window-like scroller and the grid container as an element.
func (s *Scene) Targets() (*gridlist.WindowTarget, *gridlist.ElementTarget) {
	scroller := &gridlist.WindowTarget{
		InnerWidth:  s.Viewport.Width,
		InnerHeight: s.Viewport.Height,
		ScrollY:     s.Viewport.ScrollY,
	}
	element := &gridlist.ElementTarget{
		Box: gridlist.Rect{
			X: s.Container.Left,
			Y: s.Container.Top - s.Viewport.ScrollY,
			W: s.Container.Width,
		},
	}
	return scroller, element
}

// Scroll moves the scene's viewport and keeps the element box in step.
func Scroll(scroller *gridlist.WindowTarget, element *gridlist.ElementTarget, scrollY float64) {
	delta := scrollY - scroller.ScrollY
	scroller.ScrollY = scrollY
	element.Box.Y -= delta
}

// ParseColor decodes "#rrggbb" into a packed draw list colour. Malformed
// input yields fallback.
func ParseColor(s string, fallback uint32) uint32 {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return gridlist.RGBA(r, g, b, 0xFF)
}
