package gridlist

import "sync"

// drawListPool recycles DrawList buffers between frames. A grid repaints on
// every scroll notification, so the buffers are reused rather than
// reallocated.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 512),
			IdxBuffer: make([]uint16, 0, 1024),
			CmdBuffer: make([]DrawCmd, 0, 8),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
// Return it with ReleaseDrawList once the backend has consumed it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList collects the quads for one paint of the grid. Commands split
// whenever the clip rectangle or texture changes; backends draw each
// command with its own scissor box.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // First vertex of the open command
	idxCmdOffset uint32 // First index of the open command
}

// Clear empties the list while keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClip restricts subsequent quads to r until the matching PopClip.
func (dl *DrawList) PushClip(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{float32(r.X), float32(r.Y), float32(r.X + r.W), float32(r.Y + r.H)}
	dl.splitDraw()
}

// PopClip restores the previous clip rectangle.
func (dl *DrawList) PopClip() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// ClipDepth returns the number of pushed clip rectangles.
func (dl *DrawList) ClipDepth() int { return len(dl.clipStack) }

// SetTexture selects the texture for subsequent quads. Zero means flat
// colour.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// maxCmdVertices is the most vertices one command can address with
// uint16 indices.
const maxCmdVertices = 1 << 16

// addQuad appends four corners and the two triangles joining them. A
// command that would outgrow 16-bit indices is split first.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+4 > maxCmdVertices {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect fills r with color. Fully transparent colours draw nothing.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	dl.addQuad(
		Vertex{Pos: [2]float32{x0, y0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, Color: color},
	)
}

// AddRectOutline strokes the inside edge of r.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float64) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Bottom() - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// Bitmap font atlas: 16x6 cells of 8x8 pixels covering ASCII 32-127.
const (
	fontAtlasCols = 16
	fontAtlasRows = 6
	fontCellPx    = 8
)

// AddText lays out text as fixed-width glyph quads sampled from the bitmap
// font atlas. Characters outside printable ASCII draw as '?'.
func (dl *DrawList) AddText(pos Vec2, text string, color uint32, scale float32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	cw := fontCellPx * scale
	ch := fontCellPx * scale
	atlasW := float32(fontAtlasCols * fontCellPx)
	atlasH := float32(fontAtlasRows * fontCellPx)

	x := pos.X
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		i := int(r - 32)
		col := float32(i % fontAtlasCols)
		row := float32(i / fontAtlasCols)
		u0, v0 := col*fontCellPx/atlasW, row*fontCellPx/atlasH
		u1, v1 := (col+1)*fontCellPx/atlasW, (row+1)*fontCellPx/atlasH

		dl.addQuad(
			Vertex{Pos: [2]float32{x, pos.Y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{x, pos.Y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		x += cw
	}
}

// TextWidth returns the width AddText would use for text at scale.
func TextWidth(text string, scale float32) float32 {
	n := 0
	for range text {
		n++
	}
	return float32(n) * fontCellPx * scale
}

// Finalize closes the open command and drops empty ones. Call it once
// after the last primitive.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
