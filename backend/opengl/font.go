package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Atlas geometry shared with gridlist.DrawList.AddText: 16x6 cells of 8x8
// pixels for ASCII 32-127.
const (
	atlasCols = 16
	atlasRows = 6
	glyphPx   = 8
	atlasW    = atlasCols * glyphPx
	atlasH    = atlasRows * glyphPx
)

// glyphs covers what cell labels print: indices, row/column tags and the
// '?' fallback. Other characters render blank.
var glyphs = map[byte][glyphPx]byte{
	'0': {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00},
	'1': {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'2': {0x3C, 0x66, 0x06, 0x1C, 0x30, 0x60, 0x7E, 0x00},
	'3': {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00},
	'4': {0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00},
	'5': {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00},
	'6': {0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00},
	'7': {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8': {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00},
	'9': {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0x00},
	'C': {0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00},
	'R': {0x7C, 0x66, 0x66, 0x7C, 0x6C, 0x66, 0x66, 0x00},
	'#': {0x24, 0x7E, 0x24, 0x24, 0x7E, 0x24, 0x00, 0x00},
	'-': {0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00},
	':': {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00},
	'/': {0x02, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x40, 0x00},
	'?': {0x3C, 0x66, 0x06, 0x1C, 0x18, 0x00, 0x18, 0x00},
}

// uploadFontAtlas rasterizes glyphs into a single-channel texture.
func uploadFontAtlas() uint32 {
	pixels := make([]byte, atlasW*atlasH)
	for ch, rows := range glyphs {
		i := int(ch - 32)
		ox := (i % atlasCols) * glyphPx
		oy := (i / atlasCols) * glyphPx
		for y, bits := range rows {
			for x := range glyphPx {
				if bits&(0x80>>x) != 0 {
					pixels[(oy+y)*atlasW+ox+x] = 0xFF
				}
			}
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasW, atlasH, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
