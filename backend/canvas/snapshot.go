// Package canvasrenderer renders a grid frame to SVG or PDF for inspection. The
// snapshot shows the whole laid-out grid in content coordinates, the
// viewport, the margin band around it, and which cells the frame renders.
package canvasrenderer

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/go-theft-auto/gridlist"
)

// Format selects the output encoding.
type Format int

const (
	FormatSVG Format = iota
	FormatPDF
)

// ParseFormat maps "svg" or "pdf" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return 0, fmt.Errorf("unknown snapshot format %q", s)
}

// ErrNotReady is returned for frames without a layout.
var ErrNotReady = errors.New("frame has no layout")

// Options configures a snapshot.
type Options[P any] struct {
	// Scale converts pixels to output units (millimetres). Defaults to 0.25.
	Scale float64
	// CellColor picks the fill of a rendered cell. Defaults to a flat blue.
	CellColor func(cell gridlist.Cell[P]) color.Color
	// Place is passed to gridlist.PlaceWindow.
	Place gridlist.PlaceOptions
}

var (
	defaultCellColor = canvas.Hex("#4a90d9")
	skippedStroke    = canvas.Hex("#c8c8c8")
	viewportStroke   = canvas.Hex("#d0021b")
	marginFill       = canvas.RGBA(0.95, 0.75, 0.2, 0.15)
	backgroundFill   = canvas.Hex("#f4f4f4")
)

// Snapshot writes f to w.
func Snapshot[P any](w io.Writer, f gridlist.Frame[P], format Format, opts Options[P]) error {
	if !f.Ready() {
		return ErrNotReady
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 0.25
	}

	m := f.Metrics
	top := m.ElementOffset.Top
	left := m.ElementOffset.Left
	width := max(m.ScrollerSize.Width, left+m.ElementSize.Width)
	height := max(top+f.TotalHeight, m.ScrollerScroll.Y+m.ScrollerSize.Height)

	c := canvas.New(width*scale, height*scale)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.Scale(scale, scale)

	drawBackground(ctx, left, top, m.ElementSize.Width, f.TotalHeight)
	drawMargin(ctx, f, width)
	drawCells(ctx, f, left, top, opts)
	drawViewport(ctx, m, width)

	switch format {
	case FormatPDF:
		writer := pdf.New(w, c.W, c.H, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
	default:
		writer := svg.New(w, c.W, c.H, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
	}
	return nil
}

func drawBackground(ctx *canvas.Context, x, y, w, h float64) {
	ctx.SetFillColor(backgroundFill)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// drawMargin shades the viewport extended by the frame's margin.
func drawMargin[P any](ctx *canvas.Context, f gridlist.Frame[P], width float64) {
	vp := gridlist.ViewportFor(f.Metrics.ScrollerScroll.Y, f.Metrics.ScrollerSize.Height, f.Config.Margin)
	ctx.SetFillColor(marginFill)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, vp.Top, canvas.Rectangle(width, vp.Bottom-vp.Top))
}

// drawCells outlines every laid-out cell and fills the rendered ones.
func drawCells[P any](ctx *canvas.Context, f gridlist.Frame[P], left, top float64, opts Options[P]) {
	all := gridlist.RenderWindow[P]{Cells: f.Layout.Cells}
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(skippedStroke)
	ctx.SetStrokeWidth(1)
	for _, p := range gridlist.PlaceWindow(f.Config, f.Layout, all, opts.Place) {
		r := p.Rect
		ctx.DrawPath(left+r.X, top+r.Y, canvas.Rectangle(r.W, r.H))
	}

	if !f.Visible {
		return
	}
	ctx.SetStrokeColor(canvas.Transparent)
	for _, p := range gridlist.PlaceWindow(f.Config, f.Layout, f.Window, opts.Place) {
		fill := color.Color(defaultCellColor)
		if opts.CellColor != nil {
			fill = opts.CellColor(p.Cell)
		}
		ctx.SetFillColor(fill)
		r := p.Rect
		ctx.DrawPath(left+r.X, top+r.Y, canvas.Rectangle(r.W, r.H))
	}
}

func drawViewport(ctx *canvas.Context, m gridlist.ContainerMetrics, width float64) {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(viewportStroke)
	ctx.SetStrokeWidth(2)
	ctx.DrawPath(0, m.ScrollerScroll.Y, canvas.Rectangle(width, m.ScrollerSize.Height))
}
