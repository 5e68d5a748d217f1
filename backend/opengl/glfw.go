package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridlist"
)

// Window adapts a glfw window into a viewport-like scroller. The window's
// content scrolls vertically under the mouse wheel and navigation keys.
//
// Window implements gridlist.Target, gridlist.MetricsObserver and
// gridlist.IntersectionObserver. Size callbacks report resizes, ScrollTo
// reports scrolls, and iconifying the window hides every container.
type Window struct {
	window *glfw.Window

	// WheelStep is the scroll distance of one wheel notch.
	WheelStep float64

	scrollY       float64
	contentHeight float64
	iconified     bool

	nextID int
	subs   map[int]subscription
	inter  map[int]*intersection
}

type subscription struct {
	signals  gridlist.Signal
	onChange func()
}

type intersection struct {
	target   gridlist.Target
	margin   float64
	last     bool
	reported bool
	onChange func(bool)
}

// NewWindow installs size, scroll, key and iconify callbacks on w.
// Callbacks previously set on w are replaced.
func NewWindow(w *glfw.Window) *Window {
	win := &Window{
		window:    w,
		WheelStep: 48,
		subs:      make(map[int]subscription),
		inter:     make(map[int]*intersection),
	}
	w.SetSizeCallback(win.sizeCallback)
	w.SetScrollCallback(win.scrollCallback)
	w.SetKeyCallback(win.keyCallback)
	w.SetIconifyCallback(win.iconifyCallback)
	return win
}

// Bounds implements gridlist.Target: the window's client area.
func (w *Window) Bounds() gridlist.Rect {
	width, height := w.window.GetSize()
	return gridlist.Rect{W: float64(width), H: float64(height)}
}

// ScrollPos implements gridlist.Target.
func (w *Window) ScrollPos() gridlist.Scroll {
	return gridlist.Scroll{Y: w.scrollY}
}

// ScrollY returns the current scroll offset.
func (w *Window) ScrollY() float64 { return w.scrollY }

// SetContentHeight sets the scrollable extent, normally the grid
// container's top plus the frame's total height.
func (w *Window) SetContentHeight(h float64) {
	if h == w.contentHeight {
		return
	}
	w.contentHeight = h
	w.ScrollTo(w.scrollY)
	w.checkIntersections()
}

// MaxScroll returns the largest valid scroll offset.
func (w *Window) MaxScroll() float64 {
	return max(0, w.contentHeight-w.Bounds().H)
}

// ScrollTo moves the content to y, clamped to the scrollable range.
func (w *Window) ScrollTo(y float64) {
	y = min(max(y, 0), w.MaxScroll())
	if y == w.scrollY {
		return
	}
	w.scrollY = y
	w.emit(gridlist.SignalScroll)
}

// ScrollBy moves the content by dy.
func (w *Window) ScrollBy(dy float64) { w.ScrollTo(w.scrollY + dy) }

// Observe implements gridlist.MetricsObserver. Every target in the window
// shares the window's resize and scroll notifications.
func (w *Window) Observe(_ gridlist.Target, signals gridlist.Signal, onChange func()) (func(), error) {
	w.nextID++
	id := w.nextID
	w.subs[id] = subscription{signals: signals, onChange: onChange}
	return func() { delete(w.subs, id) }, nil
}

// ObserveIntersection implements gridlist.IntersectionObserver. The first
// report is delivered immediately.
func (w *Window) ObserveIntersection(target gridlist.Target, margin float64, onChange func(bool)) (func(), error) {
	w.nextID++
	id := w.nextID
	sub := &intersection{target: target, margin: margin, onChange: onChange}
	w.inter[id] = sub
	w.checkIntersection(sub)
	return func() { delete(w.inter, id) }, nil
}

func (w *Window) emit(signal gridlist.Signal) {
	for _, sub := range w.subs {
		if sub.signals.Has(signal) {
			sub.onChange()
		}
	}
	w.checkIntersections()
}

func (w *Window) checkIntersections() {
	for _, sub := range w.inter {
		w.checkIntersection(sub)
	}
}

// checkIntersection compares the target's on-screen box with the client
// area grown by the subscription margin.
func (w *Window) checkIntersection(sub *intersection) {
	visible := false
	if !w.iconified {
		view := w.Bounds()
		box := sub.target.Bounds()
		top := -sub.margin
		bottom := view.H + sub.margin
		visible = box.Y <= bottom && box.Bottom() >= top
	}
	if sub.reported && visible == sub.last {
		return
	}
	sub.reported = true
	sub.last = visible
	sub.onChange(visible)
}

func (w *Window) sizeCallback(_ *glfw.Window, _, _ int) {
	w.ScrollTo(w.scrollY)
	w.emit(gridlist.SignalResize)
}

func (w *Window) scrollCallback(_ *glfw.Window, _, yoff float64) {
	w.ScrollBy(-yoff * w.WheelStep)
}

func (w *Window) iconifyCallback(_ *glfw.Window, iconified bool) {
	w.iconified = iconified
	w.checkIntersections()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	page := w.Bounds().H * 0.9
	switch key {
	case glfw.KeyUp:
		w.ScrollBy(-w.WheelStep)
	case glfw.KeyDown:
		w.ScrollBy(w.WheelStep)
	case glfw.KeyPageUp:
		w.ScrollBy(-page)
	case glfw.KeyPageDown, glfw.KeySpace:
		w.ScrollBy(page)
	case glfw.KeyHome:
		w.ScrollTo(0)
	case glfw.KeyEnd:
		w.ScrollTo(w.MaxScroll())
	}
}

// Container is the grid's container inside a Window's content: a box at
// a fixed content offset spanning the window width minus side padding.
type Container struct {
	Window *Window
	Top    float64 // Offset inside the window content
	Left   float64
	Right  float64
	Height float64 // Last laid-out height; set from Frame.TotalHeight
}

// Bounds implements gridlist.Target: the container's on-screen box.
func (c *Container) Bounds() gridlist.Rect {
	view := c.Window.Bounds()
	return gridlist.Rect{
		X: c.Left,
		Y: c.Top - c.Window.scrollY,
		W: max(0, view.W-c.Left-c.Right),
		H: c.Height,
	}
}

// ScrollPos implements gridlist.Target. A container does not scroll.
func (c *Container) ScrollPos() gridlist.Scroll { return gridlist.Scroll{} }

// SetHeight records the laid-out height and extends the window's scroll
// range to cover it.
func (c *Container) SetHeight(h float64) {
	c.Height = h
	c.Window.SetContentHeight(c.Top + h)
}
