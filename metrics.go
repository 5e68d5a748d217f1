package gridlist

// Size is the measured width and height of a target.
type Size struct {
	Width, Height float64
}

// Scroll is the scroll position of a target.
type Scroll struct {
	X, Y float64
}

// Offset is an element's position inside its scroller's content.
type Offset struct {
	Top, Left float64
}

// Target is anything the grid can measure: the scrolling root or the grid's
// own container.
//
// Bounds reports the box relative to the visible viewport origin (what a
// browser calls the bounding client rect). ScrollPos reports how far the
// target's own content is scrolled.
type Target interface {
	Bounds() Rect
	ScrollPos() Scroll
}

// WindowTarget is a viewport-like target: a top-level window whose content
// scrolls under a fixed inner size.
type WindowTarget struct {
	InnerWidth, InnerHeight float64
	ScrollX, ScrollY        float64
}

// Bounds returns the window's inner box anchored at the origin.
func (w *WindowTarget) Bounds() Rect {
	return Rect{W: w.InnerWidth, H: w.InnerHeight}
}

// ScrollPos returns the window scroll offsets.
func (w *WindowTarget) ScrollPos() Scroll {
	return Scroll{X: w.ScrollX, Y: w.ScrollY}
}

// ElementTarget is an element-like target: a box inside the viewport that
// may itself scroll.
type ElementTarget struct {
	Box                   Rect
	ScrollTop, ScrollLeft float64
}

// Bounds returns the element's bounding box.
func (e *ElementTarget) Bounds() Rect { return e.Box }

// ScrollPos returns the element's scroll offsets. ScrollTop is vertical.
func (e *ElementTarget) ScrollPos() Scroll {
	return Scroll{X: e.ScrollLeft, Y: e.ScrollTop}
}

// TargetSize returns the target's current size.
func TargetSize(t Target) Size {
	b := t.Bounds()
	return Size{Width: b.W, Height: b.H}
}

// TargetScroll returns the target's current scroll position.
func TargetScroll(t Target) Scroll {
	return t.ScrollPos()
}

// ElementOffsetIn returns the element's offset inside the scroller's
// content: the element's on-screen box relative to the scroller's own box,
// plus the scroller's scroll position. A window-like scroller sits at the
// origin, so only element-like scrollers shift the result.
func ElementOffsetIn(element, scroller Target) Offset {
	scroll := scroller.ScrollPos()
	box := element.Bounds()
	viewport := scroller.Bounds()
	return Offset{
		Top:  scroll.Y + box.Y - viewport.Y,
		Left: scroll.X + box.X - viewport.X,
	}
}

// ContainerMetrics is one snapshot of everything the grid reads from the
// host: the scroller's size and scroll position and the grid container's
// size and offset within the scroller.
type ContainerMetrics struct {
	ScrollerSize   Size
	ScrollerScroll Scroll
	ElementSize    Size
	ElementOffset  Offset

	// OffsetKnown is false until the container's position in the scroller
	// has been measured. The viewport filter renders nothing until then.
	OffsetKnown bool
}

// SampleMetrics reads a fresh snapshot from the two targets.
// Either target may be nil, in which case the snapshot is not ready (ok is false).
func SampleMetrics(scroller, element Target) (m ContainerMetrics, ok bool) {
	if scroller == nil || element == nil {
		return ContainerMetrics{}, false
	}
	m = ContainerMetrics{
		ScrollerSize:   TargetSize(scroller),
		ScrollerScroll: TargetScroll(scroller),
		ElementSize:    TargetSize(element),
		ElementOffset:  ElementOffsetIn(element, scroller),
		OffsetKnown:    true,
	}
	return m, true
}
