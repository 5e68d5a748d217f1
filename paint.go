package gridlist

// ItemPainter draws one cell into the draw list. rect is in surface
// coordinates.
type ItemPainter[P any] func(dl *DrawList, p Placement[P], rect Rect)

// PaintOptions configures Paint.
type PaintOptions struct {
	PlaceOptions

	// Background fills the container's full content height when non-zero.
	Background uint32
}

// Paint draws a frame's rendered cells.
//
// origin is the surface position of the grid container's top-left corner,
// already adjusted for the scroller's scroll position. clip is the visible
// area of the scroller on the surface; cells outside it are skipped and the
// rest are clipped to it. Paint returns the number of cells handed to item.
//
// Nothing is drawn when the frame is not visible or has no layout.
func Paint[P any](dl *DrawList, f Frame[P], origin Vec2, clip Rect, opts PaintOptions, item ItemPainter[P]) int {
	if dl == nil || !f.Visible || !f.Ready() {
		return 0
	}

	dl.PushClip(clip)
	defer dl.PopClip()

	ox, oy := float64(origin.X), float64(origin.Y)
	if opts.Background != 0 {
		width := ContentWidth(f.Config.ColumnCount, f.Config.ColumnWidth, f.Config.Gap)
		if opts.FixedColumnWidth > 0 {
			width = ContentWidth(f.Config.ColumnCount, opts.FixedColumnWidth, f.Config.Gap)
		}
		dl.AddRect(Rect{X: ox, Y: oy, W: width, H: f.TotalHeight}, opts.Background)
	}

	if item == nil {
		return 0
	}

	painted := 0
	for _, p := range PlaceWindow(f.Config, f.Layout, f.Window, opts.PlaceOptions) {
		rect := p.Rect.Translate(ox, oy)
		if !rect.Intersects(clip) {
			continue
		}
		item(dl, p, rect)
		painted++
	}
	return painted
}
