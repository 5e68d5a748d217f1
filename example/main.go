// Example scrolls a windowed photo grid in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Scroll with the mouse wheel, arrow keys, PageUp/PageDown, Home and End.
// Press G to glide to a random photo. Only the photos near the viewport are
// painted; the header shows the rendered range.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridlist"
	"github.com/go-theft-auto/gridlist/backend/opengl"
	"github.com/go-theft-auto/gridlist/internal/scene"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "gridlist example"
	headerHeight = 32
)

const gallery = `
name: gallery
viewport: {width: 1024, height: 768}
columns: ">= 1400 => 5; >= 1000 => 4; default => per 240"
gap: "< 600 => 4; default => 12"
generate:
  count: 5000
  seed: 42
  min-aspect: 0.5
  max-aspect: 1.6
`

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	s, err := scene.Parse([]byte(gallery))
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	policy, err := s.Policy()
	if err != nil {
		return fmt.Errorf("scene policy: %w", err)
	}
	items := s.Items()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	win := opengl.NewWindow(window)
	container := &opengl.Container{Window: win, Top: headerHeight + 8, Left: 12, Right: 12}

	grid := gridlist.New(policy, items)
	if err := grid.Attach(win, win, container); err != nil {
		return fmt.Errorf("attach grid: %w", err)
	}
	defer grid.Close()

	var (
		anim     *gridlist.ScrollAnimator
		lastTime = glfw.GetTime()
		gWasDown bool
	)

	for !window.ShouldClose() {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		f := grid.Frame()
		if f.Err != nil {
			return fmt.Errorf("grid frame: %w", f.Err)
		}
		container.SetHeight(f.TotalHeight + 12)

		gDown := window.GetKey(glfw.KeyG) == glfw.Press
		if gDown && !gWasDown && f.Ready() {
			target := items[rand.IntN(len(items))]
			if y, ok := gridlist.ScrollTarget(f.Layout, target.Key, container.Top, win.Bounds().H, win.ScrollY()); ok {
				anim = gridlist.AnimateScroll(win.ScrollY(), y, 0.6, nil)
			}
		}
		gWasDown = gDown
		if anim != nil {
			y, done := anim.Update(dt)
			win.ScrollTo(y)
			if done {
				anim = nil
			}
		}

		w, h := window.GetSize()
		fbw, fbh := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := gridlist.AcquireDrawList()
		view := win.Bounds()
		clip := gridlist.Rect{Y: headerHeight, W: view.W, H: view.H - headerHeight}
		origin := gridlist.Vec2{X: float32(container.Left), Y: float32(container.Top - win.ScrollY())}

		painter := photoPainter(renderer.FontTexture())
		gridlist.Paint(dl, f, origin, clip, gridlist.PaintOptions{Background: gridlist.RGBA(0x1c, 0x1c, 0x20, 0xff)}, painter)
		drawHeader(dl, f, view.W, renderer.FontTexture())

		err := renderer.Render(dl)
		gridlist.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func photoPainter(fontTex uint32) gridlist.ItemPainter[scene.Photo] {
	fallback := gridlist.RGBA(0x4a, 0x90, 0xd9, 0xff)
	return func(dl *gridlist.DrawList, p gridlist.Placement[scene.Photo], rect gridlist.Rect) {
		dl.SetTexture(0)
		dl.AddRect(rect, scene.ParseColor(p.Cell.Item.Color, fallback))
		dl.AddRectOutline(rect, gridlist.ColorDarkGray, 1)

		dl.SetTexture(fontTex)
		label := fmt.Sprintf("R%d C%d", p.Cell.Row, p.Column)
		dl.AddText(gridlist.Vec2{X: float32(rect.X) + 6, Y: float32(rect.Y) + 6}, label, gridlist.ColorWhite, 1.5)
	}
}

func drawHeader(dl *gridlist.DrawList, f gridlist.Frame[scene.Photo], width float64, fontTex uint32) {
	dl.SetTexture(0)
	dl.AddRect(gridlist.Rect{W: width, H: headerHeight}, gridlist.ColorBlack)
	if !f.Ready() {
		return
	}

	label := "-"
	if n := f.Window.Len(); n > 0 {
		first := f.Window.Cells[0].Row
		last := f.Window.Cells[n-1].Row
		label = fmt.Sprintf("R%d-%d / %d  #%d", first, last, len(f.Layout.Rows), n)
	}
	dl.SetTexture(fontTex)
	dl.AddText(gridlist.Vec2{X: 12, Y: 8}, label, gridlist.ColorLightGray, 2)
	dl.SetTexture(0)
}
