package gridlist

// Placement is where a render surface should put one rendered cell,
// relative to the grid container's top-left corner.
type Placement[P any] struct {
	Cell     Cell[P]
	Column   int // 1-based grid track
	LocalRow int // 1-based track within the rendered window
	Rect     Rect
}

// PlaceOptions tunes how cells map to rectangles.
type PlaceOptions struct {
	// FixedColumnWidth, when positive, replaces the resolved column width
	// for both cell width and column stride. Layout heights are unchanged.
	FixedColumnWidth float64
	// TopAlign disables vertical centring of a cell inside its row track.
	TopAlign bool
}

// PlaceWindow computes container-relative rectangles for the window's
// cells.
//
// Row tops come from the layout's row index, so every row keeps its layout
// offset however many of its cells are rendered. Cells shorter than their
// row are centred in the row track unless opts.TopAlign is set.
func PlaceWindow[P any](cfg *Config[P], l *Layout[P], w RenderWindow[P], opts PlaceOptions) []Placement[P] {
	if cfg == nil || l == nil || len(w.Cells) == 0 {
		return nil
	}

	colWidth := cfg.ColumnWidth
	if opts.FixedColumnWidth > 0 {
		colWidth = opts.FixedColumnWidth
	}
	stride := colWidth + cfg.Gap

	out := make([]Placement[P], 0, len(w.Cells))
	for _, cell := range w.Cells {
		y := cell.Offset
		if row, ok := l.Row(cell.Row); ok && !opts.TopAlign {
			y = row.Offset + (row.Height-cell.Height)/2
		}
		out = append(out, Placement[P]{
			Cell:     cell,
			Column:   cell.Column,
			LocalRow: w.LocalRow(cell.Row),
			Rect: Rect{
				X: float64(cell.Column-1) * stride,
				Y: y,
				W: colWidth,
				H: cell.Height,
			},
		})
	}
	return out
}

// ContentWidth returns the horizontal extent of cfg's columns at the given
// column width, without a trailing gap.
func ContentWidth(columns int, columnWidth, gap float64) float64 {
	if columns < 1 {
		return 0
	}
	return float64(columns)*columnWidth + float64(columns-1)*gap
}
