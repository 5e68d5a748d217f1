package gridlist

import "math"

// Cell is one item placed in the grid.
//
// Offset is the distance from the top of the grid to the top of the cell's
// row. Cells in the same row share Row and Offset.
type Cell[P any] struct {
	Key    string
	Column int // 1-based
	Row    int // 1-based
	Offset float64
	Height float64
	Item   P
}

// Bottom returns Offset + Height.
func (c Cell[P]) Bottom() float64 { return c.Offset + c.Height }

// Row summarises one grid row. First and Count index into Layout.Cells.
type Row struct {
	Number int
	Offset float64
	Height float64 // Tallest cell in the row
	First  int
	Count  int
}

// Layout is the packed grid: every cell in input order plus the total
// content height.
type Layout[P any] struct {
	TotalHeight float64
	Cells       []Cell[P]
	Rows        []Row
}

// Row returns row n (1-based).
func (l *Layout[P]) Row(n int) (Row, bool) {
	if l == nil || n < 1 || n > len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[n-1], true
}

// CellByKey returns the cell with the given key.
func (l *Layout[P]) CellByKey(key string) (Cell[P], bool) {
	if l == nil {
		return Cell[P]{}, false
	}
	for _, c := range l.Cells {
		if c.Key == key {
			return c, true
		}
	}
	return Cell[P]{}, false
}

// Arrange packs the config's entries row-major into a grid.
//
// Items fill each row left to right before the next row starts. A row is as
// tall as its tallest cell and every cell in it is top-aligned at the row's
// offset; consecutive rows are separated by the gap, with no trailing gap
// after the last row. Heights are rounded to whole pixels.
func Arrange[P any](cfg *Config[P]) (*Layout[P], error) {
	if cfg == nil || cfg.ColumnCount < 1 {
		var got any
		if cfg != nil {
			got = cfg.ColumnCount
		}
		return nil, &ConfigError{Field: "columnCount", Value: got, Err: ErrInvalidColumnCount}
	}

	columns := cfg.ColumnCount
	l := &Layout[P]{
		Cells: make([]Cell[P], len(cfg.Entries)),
		Rows:  make([]Row, 0, (len(cfg.Entries)+columns-1)/columns),
	}

	currentRow := 1
	prevRowsTotalHeight := 0.0
	currentRowMaxHeight := 0.0

	for i, entry := range cfg.Entries {
		column := i%columns + 1
		row := i/columns + 1

		if row != currentRow {
			l.Rows[len(l.Rows)-1].Height = currentRowMaxHeight
			currentRow = row
			prevRowsTotalHeight += currentRowMaxHeight + cfg.Gap
			currentRowMaxHeight = 0
		}
		if column == 1 {
			l.Rows = append(l.Rows, Row{Number: row, Offset: prevRowsTotalHeight, First: i})
		}

		height := math.Round(entry.Size.Height)
		currentRowMaxHeight = maxf(currentRowMaxHeight, height)
		l.Rows[len(l.Rows)-1].Count++

		l.Cells[i] = Cell[P]{
			Key:    entry.Size.Key,
			Column: column,
			Row:    row,
			Offset: prevRowsTotalHeight,
			Height: height,
			Item:   entry.Item,
		}
	}

	if len(l.Rows) > 0 {
		l.Rows[len(l.Rows)-1].Height = currentRowMaxHeight
	}
	l.TotalHeight = prevRowsTotalHeight + currentRowMaxHeight
	return l, nil
}
