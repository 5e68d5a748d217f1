package gridlist_test

import (
	"testing"

	"github.com/go-theft-auto/gridlist"
)

func TestDrawList_AddRect(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	dl.AddRect(gridlist.Rect{W: 10, H: 10}, gridlist.ColorWhite)
	dl.AddRect(gridlist.Rect{W: 10, H: 10}, gridlist.ColorTransparent)
	dl.AddRect(gridlist.Rect{W: 0, H: 10}, gridlist.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Errorf("got %d vertices, %d indices; want 4, 6", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("commands = %+v", dl.CmdBuffer)
	}
}

func TestDrawList_Outline(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	dl.AddRectOutline(gridlist.Rect{W: 20, H: 20}, gridlist.ColorBlack, 1)
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("outline used %d vertices, want 16", len(dl.VtxBuffer))
	}
}

func TestDrawList_ClipSplitsCommands(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	clip := gridlist.Rect{X: 5, Y: 6, W: 100, H: 50}
	dl.PushClip(clip)
	dl.AddRect(gridlist.Rect{W: 10, H: 10}, gridlist.ColorWhite)
	dl.PopClip()
	dl.AddRect(gridlist.Rect{W: 10, H: 10}, gridlist.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[0].ClipRect; got != [4]float32{5, 6, 105, 56} {
		t.Errorf("first clip = %v", got)
	}
	if dl.CmdBuffer[1].IndexOffset != 6 || dl.CmdBuffer[1].VertexOffset != 4 {
		t.Errorf("second command offsets = %+v", dl.CmdBuffer[1])
	}
	if dl.ClipDepth() != 0 {
		t.Errorf("ClipDepth() = %d", dl.ClipDepth())
	}
}

func TestDrawList_FinalizeDropsEmptyCommands(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	dl.PushClip(gridlist.Rect{W: 10, H: 10})
	dl.PopClip()
	dl.PopClip() // unbalanced pop is ignored
	dl.Finalize()

	if len(dl.CmdBuffer) != 0 {
		t.Errorf("expected no commands, got %+v", dl.CmdBuffer)
	}
}

func TestDrawList_Texture(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	dl.SetTexture(3)
	dl.SetTexture(3)
	dl.AddText(gridlist.Vec2{}, "ab", gridlist.ColorWhite, 2)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].TextureID != 3 {
		t.Errorf("commands = %+v", dl.CmdBuffer)
	}
	if len(dl.VtxBuffer) != 8 {
		t.Errorf("text used %d vertices, want 8", len(dl.VtxBuffer))
	}
	if w := gridlist.TextWidth("ab", 2); w != 32 {
		t.Errorf("TextWidth = %v, want 32", w)
	}
}

func TestDrawList_PoolReturnsCleared(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	dl.AddRect(gridlist.Rect{W: 1, H: 1}, gridlist.ColorWhite)
	gridlist.ReleaseDrawList(dl)

	dl = gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("acquired draw list was not cleared")
	}
}

func TestDrawList_SplitsBeforeIndexOverflow(t *testing.T) {
	dl := gridlist.AcquireDrawList()
	defer gridlist.ReleaseDrawList(dl)

	// 16384 quads use exactly 65536 vertices; the next one starts a new command.
	const quads = 1<<14 + 1
	for range quads {
		dl.AddRect(gridlist.Rect{W: 1, H: 1}, gridlist.ColorWhite)
	}
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	first, second := dl.CmdBuffer[0], dl.CmdBuffer[1]
	if first.ElemCount != (quads-1)*6 || second.ElemCount != 6 {
		t.Errorf("element counts = %d, %d", first.ElemCount, second.ElemCount)
	}
	if second.VertexOffset != 1<<16 {
		t.Errorf("second command vertex offset = %d, want 65536", second.VertexOffset)
	}
	for _, idx := range dl.IdxBuffer[second.IndexOffset:] {
		if idx > 3 {
			t.Errorf("second command index %d is not relative to its vertex offset", idx)
		}
	}
}
