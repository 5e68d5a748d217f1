// Package opengl draws grid frames with OpenGL 4.1 and adapts a glfw window
// into the scroller and container targets the grid measures.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gridlist"
)

// Renderer uploads a gridlist.DrawList and draws it command by command,
// one scissor box per command.
type Renderer struct {
	program   uint32
	vao       uint32
	vbo, ebo  uint32
	fontTex   uint32
	uProj     int32
	uAtlas    int32
	uTextured int32
	width     int
	height    int
}

const vertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

out vec2 uv;
out vec4 color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    uv = aUV;
    color = aColor;
}
` + "\x00"

// The atlas is single-channel: red is coverage, tinted by the vertex colour.
const fragmentShader = `
#version 410 core
in vec2 uv;
in vec4 color;

out vec4 fragColor;

uniform sampler2D atlas;
uniform bool textured;

void main() {
    if (textured) {
        fragColor = vec4(color.rgb, color.a * texture(atlas, uv).r);
    } else {
        fragColor = color;
    }
}
` + "\x00"

// NewRenderer compiles the shaders and allocates buffers. A GL context must
// be current.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to build shader program: %w", err)
	}

	r := &Renderer{
		program: program,
		width:   width,
		height:  height,
	}
	r.uProj = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	r.uAtlas = gl.GetUniformLocation(program, gl.Str("atlas\x00"))
	r.uTextured = gl.GetUniformLocation(program, gl.Str("textured\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v gridlist.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = uploadFontAtlas()
	return r, nil
}

// FontTexture returns the texture to select with DrawList.SetTexture
// before AddText.
func (r *Renderer) FontTexture() uint32 { return r.fontTex }

// Resize sets the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render finalizes dl and draws it. GL state touched here is restored
// before returning.
func (r *Renderer) Render(dl *gridlist.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := ortho(0, float32(r.width), float32(r.height), 0)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uAtlas, 0)

	gl.BindVertexArray(r.vao)
	var v gridlist.Vertex
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(v)), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, ok := r.scissor(cmd.ClipRect)
		if !ok || cmd.ElemCount == 0 {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.uTextured, 1)
		} else {
			gl.Uniform1i(r.uTextured, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}

	gl.BindVertexArray(0)
	return nil
}

// scissor converts a top-left origin clip rect to GL's bottom-left box,
// clamped to the framebuffer.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int32, ok bool) {
	x0 := max(clip[0], 0)
	y0 := max(clip[1], 0)
	x1 := min(clip[2], float32(r.width))
	y1 := min(clip[3], float32(r.height))
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(float32(r.height) - y1), int32(x1 - x0), int32(y1 - y0), true
}

// Delete releases GL objects.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissorBox         [4]int32
	blend, depth, cull bool
	scissorTest        bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCap(gl.BLEND, s.blend)
	setCap(gl.DEPTH_TEST, s.depth)
	setCap(gl.CULL_FACE, s.cull)
	setCap(gl.SCISSOR_TEST, s.scissorTest)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}
	return shader, nil
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}
	return program, nil
}

// ortho maps a top-left origin pixel space to clip space.
func ortho(left, right, bottom, top float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -1, 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), 0, 1,
	}
}
