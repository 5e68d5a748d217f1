package gridlist_test

import (
	"testing"

	"github.com/go-theft-auto/gridlist"
)

func TestSampleMetrics(t *testing.T) {
	scroller := &gridlist.WindowTarget{InnerWidth: 800, InnerHeight: 600, ScrollY: 250}
	element := &gridlist.ElementTarget{Box: gridlist.Rect{X: 16, Y: -150, W: 768, H: 2000}}

	m, ok := gridlist.SampleMetrics(scroller, element)
	if !ok || !m.OffsetKnown {
		t.Fatal("expected a usable snapshot")
	}
	if m.ScrollerSize != (gridlist.Size{Width: 800, Height: 600}) {
		t.Errorf("ScrollerSize = %+v", m.ScrollerSize)
	}
	if m.ElementSize.Width != 768 {
		t.Errorf("ElementSize = %+v", m.ElementSize)
	}
	if m.ElementOffset != (gridlist.Offset{Top: 100, Left: 16}) {
		t.Errorf("ElementOffset = %+v, want {100 16}", m.ElementOffset)
	}
	if m.ScrollerScroll.Y != 250 {
		t.Errorf("ScrollerScroll = %+v", m.ScrollerScroll)
	}
}

func TestSampleMetrics_MissingTarget(t *testing.T) {
	if _, ok := gridlist.SampleMetrics(nil, &gridlist.ElementTarget{}); ok {
		t.Error("nil scroller should not be ready")
	}
	if _, ok := gridlist.SampleMetrics(&gridlist.WindowTarget{}, nil); ok {
		t.Error("nil element should not be ready")
	}
}

func TestElementTarget_ScrollPos(t *testing.T) {
	e := &gridlist.ElementTarget{ScrollTop: 30, ScrollLeft: 5}
	if s := gridlist.TargetScroll(e); s.Y != 30 || s.X != 5 {
		t.Errorf("ScrollPos = %+v; ScrollTop must be vertical", s)
	}
}

func TestSignal_Has(t *testing.T) {
	s := gridlist.SignalResize | gridlist.SignalScroll
	if !s.Has(gridlist.SignalScroll) || !s.Has(gridlist.SignalResize) {
		t.Error("combined signal should include both bits")
	}
	if gridlist.SignalResize.Has(gridlist.SignalScroll) {
		t.Error("resize should not include scroll")
	}
}

func TestElementOffsetIn_ElementScroller(t *testing.T) {
	scroller := &gridlist.ElementTarget{Box: gridlist.Rect{X: 40, Y: 100, W: 320, H: 300}}
	element := &gridlist.ElementTarget{Box: gridlist.Rect{X: 50, Y: 100, W: 300}}

	if got := gridlist.ElementOffsetIn(element, scroller); got != (gridlist.Offset{Top: 0, Left: 10}) {
		t.Errorf("unscrolled offset = %+v, want {0 10}", got)
	}

	scroller.ScrollTop = 250
	element.Box.Y = 100 - 250
	if got := gridlist.ElementOffsetIn(element, scroller); got != (gridlist.Offset{Top: 0, Left: 10}) {
		t.Errorf("scrolled offset = %+v, want {0 10}", got)
	}
}

func rowsOf(w gridlist.RenderWindow[item]) []int {
	var rows []int
	for _, c := range w.Cells {
		rows = append(rows, c.Row)
	}
	return rows
}

func TestFilterWindow_ElementScroller(t *testing.T) {
	// A 300px scroll box placed 100px down the screen, with the grid at the
	// top of its content.
	scroller := &gridlist.ElementTarget{Box: gridlist.Rect{Y: 100, W: 320, H: 300}}
	element := &gridlist.ElementTarget{Box: gridlist.Rect{Y: 100, W: 320}}
	l := arrange(t, 1, 0, 100, 100, 100, 100, 100, 100, 100, 100)

	m, ok := gridlist.SampleMetrics(scroller, element)
	if !ok || m.ElementOffset.Top != 0 {
		t.Fatalf("ElementOffset = %+v, want top 0", m.ElementOffset)
	}
	// Row 4 starts exactly at the scroller's bottom edge and is kept.
	if got := rowsOf(gridlist.FilterWindow(m, 0, l)); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Errorf("unscrolled rows = %v, want [1 2 3 4]", got)
	}

	scroller.ScrollTop = 250
	element.Box.Y = 100 - 250
	m, _ = gridlist.SampleMetrics(scroller, element)
	if m.ElementOffset.Top != 0 {
		t.Fatalf("ElementOffset after scroll = %+v, want top 0", m.ElementOffset)
	}
	if got := rowsOf(gridlist.FilterWindow(m, 0, l)); !equalInts(got, []int{3, 4, 5, 6}) {
		t.Errorf("scrolled rows = %v, want [3 4 5 6]", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
