package gridlist

// Viewport is the extended visible span, in the scroller's content
// coordinates, within which cells are rendered.
type Viewport struct {
	Top, Bottom float64
}

// ViewportFor grows the visible span [scrollY, scrollY+scrollerHeight] by
// margin on both ends.
func ViewportFor(scrollY, scrollerHeight, margin float64) Viewport {
	return Viewport{
		Top:    scrollY - margin,
		Bottom: scrollY + scrollerHeight + margin,
	}
}

// Overlaps reports whether the span [top, bottom] should be rendered.
//
// Both edges are inclusive: a span that starts exactly at Bottom or ends
// exactly at Top is kept.
func (v Viewport) Overlaps(top, bottom float64) bool {
	if top > v.Bottom {
		return false
	}
	if bottom < v.Top {
		return false
	}
	return true
}

// RenderWindow is the subset of a layout to render, in layout order, plus
// the anchor of its first row.
//
// The anchor lets a render surface number rows locally: row N is drawn at
// local track N - (FirstRow - 1), so only the visible span needs tracks.
type RenderWindow[P any] struct {
	Cells          []Cell[P]
	FirstRow       int
	FirstRowOffset float64
	Anchored       bool // false when no cell is included
}

// Anchor returns the first rendered row and its offset.
func (w RenderWindow[P]) Anchor() (row int, offset float64, ok bool) {
	return w.FirstRow, w.FirstRowOffset, w.Anchored
}

// LocalRow converts a global row number to the window's local track index.
func (w RenderWindow[P]) LocalRow(row int) int {
	if !w.Anchored {
		return row
	}
	return row - (w.FirstRow - 1)
}

// Len returns the number of cells to render.
func (w RenderWindow[P]) Len() int { return len(w.Cells) }

// FilterWindow selects the cells of l that overlap the viewport around the
// current scroll position, grown by margin.
//
// Cells are positioned at m.ElementOffset.Top + cell.Offset in scroller
// coordinates. Until the container offset is known the window is empty and
// unanchored.
func FilterWindow[P any](m ContainerMetrics, margin float64, l *Layout[P]) RenderWindow[P] {
	var w RenderWindow[P]
	if l == nil || !m.OffsetKnown {
		return w
	}

	elementTop := m.ElementOffset.Top
	vp := ViewportFor(m.ScrollerScroll.Y, m.ScrollerSize.Height, margin)

	for _, cell := range l.Cells {
		cellTop := elementTop + cell.Offset
		if !vp.Overlaps(cellTop, cellTop+cell.Height) {
			continue
		}

		if !w.Anchored {
			w.Anchored = true
			w.FirstRow = cell.Row
			w.FirstRowOffset = cell.Offset
		} else if cell.Row == w.FirstRow {
			w.FirstRowOffset = minf(w.FirstRowOffset, cell.Offset)
		}

		w.Cells = append(w.Cells, cell)
	}
	return w
}
