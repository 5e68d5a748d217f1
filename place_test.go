package gridlist_test

import (
	"testing"

	"github.com/go-theft-auto/gridlist"
)

// frameFor builds a visible frame over heights without a GridList.
func frameFor(t *testing.T, m gridlist.ContainerMetrics, columns int, gap, margin float64, heights ...float64) gridlist.Frame[item] {
	t.Helper()
	cfg, err := gridlist.ResolveConfig(m, fixedPolicy(columns, gap, margin), items(heights...))
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	l, err := gridlist.Arrange(cfg)
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}
	w := gridlist.FilterWindow(m, cfg.Margin, l)
	return gridlist.Frame[item]{
		Metrics:     m,
		Config:      cfg,
		Layout:      l,
		Window:      w,
		Visible:     true,
		TotalHeight: l.TotalHeight,
		PaddingTop:  w.FirstRowOffset,
	}
}

func TestPlaceWindow_EqualHeightsMatchOffsets(t *testing.T) {
	f := frameFor(t, metricsAt(320, 1000, 0, 0), 3, 10, 0, 100, 100, 100, 100, 100)

	places := gridlist.PlaceWindow(f.Config, f.Layout, f.Window, gridlist.PlaceOptions{})
	if len(places) != 5 {
		t.Fatalf("expected 5 placements, got %d", len(places))
	}
	for _, p := range places {
		if p.Rect.Y != p.Cell.Offset {
			t.Errorf("cell %s at y=%v, layout offset %v", p.Cell.Key, p.Rect.Y, p.Cell.Offset)
		}
		wantX := float64(p.Column-1) * 110
		if p.Rect.X != wantX || p.Rect.W != 100 || p.Rect.H != 100 {
			t.Errorf("cell %s rect %+v, want x=%v 100x100", p.Cell.Key, p.Rect, wantX)
		}
	}
}

func TestPlaceWindow_CentresShortCells(t *testing.T) {
	f := frameFor(t, metricsAt(320, 1000, 0, 0), 3, 10, 0, 100, 150, 120)

	places := gridlist.PlaceWindow(f.Config, f.Layout, f.Window, gridlist.PlaceOptions{})
	wantY := []float64{25, 0, 15}
	for i, p := range places {
		if p.Rect.Y != wantY[i] {
			t.Errorf("cell %d y = %v, want %v", i, p.Rect.Y, wantY[i])
		}
	}

	places = gridlist.PlaceWindow(f.Config, f.Layout, f.Window, gridlist.PlaceOptions{TopAlign: true})
	for i, p := range places {
		if p.Rect.Y != 0 {
			t.Errorf("top-aligned cell %d y = %v, want 0", i, p.Rect.Y)
		}
	}
}

func TestPlaceWindow_FixedColumnWidth(t *testing.T) {
	f := frameFor(t, metricsAt(320, 1000, 0, 0), 3, 10, 0, 50, 50, 50)

	places := gridlist.PlaceWindow(f.Config, f.Layout, f.Window, gridlist.PlaceOptions{FixedColumnWidth: 40})
	last := places[2]
	if last.Rect.X != 100 || last.Rect.W != 40 || last.Rect.H != 50 {
		t.Errorf("third column rect = %+v, want x=100 w=40 h=50", last.Rect)
	}
}

func TestPlaceWindow_LocalRows(t *testing.T) {
	// Viewport [200, 300] renders only row 2.
	f := frameFor(t, metricsAt(320, 100, 200, 0), 3, 10, 0, scenarioHeights...)

	places := gridlist.PlaceWindow(f.Config, f.Layout, f.Window, gridlist.PlaceOptions{TopAlign: true})
	if len(places) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(places))
	}
	for _, p := range places {
		if p.LocalRow != 1 || p.Cell.Row != 2 || p.Rect.Y != 160 {
			t.Errorf("placement %+v, want local row 1 at y=160", p)
		}
	}
}

func TestPlaceWindow_Empty(t *testing.T) {
	if got := gridlist.PlaceWindow[item](nil, nil, gridlist.RenderWindow[item]{}, gridlist.PlaceOptions{}); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestContentWidth(t *testing.T) {
	if got := gridlist.ContentWidth(3, 100, 10); got != 320 {
		t.Errorf("ContentWidth = %v, want 320", got)
	}
	if got := gridlist.ContentWidth(0, 100, 10); got != 0 {
		t.Errorf("ContentWidth with no columns = %v", got)
	}
}

func TestPaint(t *testing.T) {
	f := frameFor(t, metricsAt(320, 1000, 0, 0), 3, 10, 0, scenarioHeights...)
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	var seen []string
	n := gridlist.Paint(dl, f, gridlist.Vec2{X: 10, Y: 20}, gridlist.Rect{W: 1000, H: 1000}, gridlist.PaintOptions{},
		func(dl *gridlist.DrawList, p gridlist.Placement[item], rect gridlist.Rect) {
			seen = append(seen, p.Cell.Key)
			if rect.X != p.Rect.X+10 || rect.Y != p.Rect.Y+20 {
				t.Errorf("rect %+v not translated from %+v", rect, p.Rect)
			}
			dl.AddRect(rect, gridlist.ColorWhite)
		})

	if n != 7 || len(seen) != 7 {
		t.Errorf("painted %d (%v), want 7", n, seen)
	}
	if dl.ClipDepth() != 0 {
		t.Errorf("clip stack not restored: depth %d", dl.ClipDepth())
	}
	if len(dl.VtxBuffer) != 7*4 {
		t.Errorf("vertex count = %d, want 28", len(dl.VtxBuffer))
	}
}

func TestPaint_ClipsAndBackground(t *testing.T) {
	f := frameFor(t, metricsAt(320, 1000, 0, 0), 3, 10, 0, scenarioHeights...)
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	// Only the first row intersects a 100px tall clip.
	n := gridlist.Paint(dl, f, gridlist.Vec2{}, gridlist.Rect{W: 320, H: 100},
		gridlist.PaintOptions{Background: gridlist.ColorGray, PlaceOptions: gridlist.PlaceOptions{TopAlign: true}},
		func(*gridlist.DrawList, gridlist.Placement[item], gridlist.Rect) {})

	if n != 3 {
		t.Errorf("painted %d cells, want 3", n)
	}
	if len(dl.VtxBuffer) != 4 {
		t.Errorf("expected one background quad, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestPaint_SkipsHiddenFrames(t *testing.T) {
	f := frameFor(t, metricsAt(320, 1000, 0, 0), 3, 10, 0, 1, 2, 3)
	f.Visible = false
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	called := false
	paint := func(*gridlist.DrawList, gridlist.Placement[item], gridlist.Rect) { called = true }

	if n := gridlist.Paint(dl, f, gridlist.Vec2{}, gridlist.Rect{W: 500, H: 500}, gridlist.PaintOptions{}, paint); n != 0 || called {
		t.Error("hidden frame was painted")
	}
	if n := gridlist.Paint(dl, gridlist.Frame[item]{Visible: true}, gridlist.Vec2{}, gridlist.Rect{W: 500, H: 500}, gridlist.PaintOptions{}, paint); n != 0 || called {
		t.Error("frame without layout was painted")
	}
	if len(dl.CmdBuffer) != 0 {
		t.Errorf("draw list not empty: %d commands", len(dl.CmdBuffer))
	}
}
