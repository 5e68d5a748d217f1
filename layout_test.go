package gridlist_test

import (
	"testing"

	"github.com/go-theft-auto/gridlist"
)

func arrange(t *testing.T, columns int, gap float64, heights ...float64) *gridlist.Layout[item] {
	t.Helper()
	cfg, err := gridlist.ResolveConfig(metricsAt(320, 600, 0, 0), fixedPolicy(columns, gap, 0), items(heights...))
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	l, err := gridlist.Arrange(cfg)
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}
	return l
}

func TestArrange_RowMajor(t *testing.T) {
	l := arrange(t, 3, 10, 100, 150, 120, 80, 200, 90, 110)

	if l.TotalHeight != 480 {
		t.Errorf("TotalHeight = %v, want 480", l.TotalHeight)
	}

	want := []struct {
		column, row int
		offset      float64
	}{
		{1, 1, 0}, {2, 1, 0}, {3, 1, 0},
		{1, 2, 160}, {2, 2, 160}, {3, 2, 160},
		{1, 3, 370},
	}
	if len(l.Cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(l.Cells))
	}
	for i, w := range want {
		c := l.Cells[i]
		if c.Column != w.column || c.Row != w.row || c.Offset != w.offset {
			t.Errorf("cell %d = col %d row %d offset %v, want col %d row %d offset %v",
				i, c.Column, c.Row, c.Offset, w.column, w.row, w.offset)
		}
	}

	rows := []struct {
		offset, height float64
		first, count   int
	}{
		{0, 150, 0, 3},
		{160, 200, 3, 3},
		{370, 110, 6, 1},
	}
	if len(l.Rows) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(l.Rows))
	}
	for i, w := range rows {
		r := l.Rows[i]
		if r.Number != i+1 || r.Offset != w.offset || r.Height != w.height || r.First != w.first || r.Count != w.count {
			t.Errorf("row %d = %+v, want %+v", i+1, r, w)
		}
	}
}

func TestArrange_SingleColumn(t *testing.T) {
	l := arrange(t, 1, 5, 10, 20, 30)

	offsets := []float64{0, 15, 40}
	for i, want := range offsets {
		if l.Cells[i].Offset != want || l.Cells[i].Row != i+1 || l.Cells[i].Column != 1 {
			t.Errorf("cell %d = %+v, want row %d offset %v", i, l.Cells[i], i+1, want)
		}
	}
	if l.TotalHeight != 70 {
		t.Errorf("TotalHeight = %v, want 70", l.TotalHeight)
	}
}

func TestArrange_RoundsHeights(t *testing.T) {
	l := arrange(t, 2, 0, 10.4, 10.6, 3.5)

	if got := l.Cells[0].Height; got != 10 {
		t.Errorf("10.4 rounded to %v", got)
	}
	if got := l.Cells[1].Height; got != 11 {
		t.Errorf("10.6 rounded to %v", got)
	}
	if got := l.Cells[2].Offset; got != 11 {
		t.Errorf("second row offset = %v, want 11", got)
	}
	if got := l.TotalHeight; got != 15 {
		t.Errorf("TotalHeight = %v, want 15", got)
	}
}

func TestArrange_ZeroItems(t *testing.T) {
	l := arrange(t, 4, 10)

	if l.TotalHeight != 0 || len(l.Cells) != 0 || len(l.Rows) != 0 {
		t.Errorf("expected empty layout, got %+v", l)
	}
	if _, ok := l.Row(1); ok {
		t.Error("Row(1) should not exist")
	}
}

func TestArrange_Deterministic(t *testing.T) {
	a := arrange(t, 3, 7, 33, 44, 55, 66, 77)
	b := arrange(t, 3, 7, 33, 44, 55, 66, 77)

	if a.TotalHeight != b.TotalHeight || len(a.Cells) != len(b.Cells) {
		t.Fatal("layouts differ")
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Errorf("cell %d differs: %+v vs %+v", i, a.Cells[i], b.Cells[i])
		}
	}
}

func TestArrange_RejectsBadConfig(t *testing.T) {
	if _, err := gridlist.Arrange[item](nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := gridlist.Arrange(&gridlist.Config[item]{ColumnCount: 0}); err == nil {
		t.Error("expected error for zero columns")
	}
}

func TestLayout_CellByKey(t *testing.T) {
	l := arrange(t, 2, 0, 10, 20, 30)

	c, ok := l.CellByKey("2")
	if !ok || c.Row != 2 || c.Column != 1 {
		t.Errorf("CellByKey(2) = %+v, %v", c, ok)
	}
	if _, ok := l.CellByKey("missing"); ok {
		t.Error("expected missing key to be absent")
	}
	var nilLayout *gridlist.Layout[item]
	if _, ok := nilLayout.CellByKey("0"); ok {
		t.Error("nil layout should have no cells")
	}
}
