package gridlist

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollTarget returns the scroller offset that brings the cell with key
// fully into view. elementTop is the grid container's offset inside the
// scroller's content.
//
// If the cell is already fully visible currentScroll is returned unchanged.
// A cell taller than the viewport is aligned to its top. ok is false when
// no cell has key.
func ScrollTarget[P any](l *Layout[P], key string, elementTop, viewportHeight, currentScroll float64) (scroll float64, ok bool) {
	cell, found := l.CellByKey(key)
	if !found {
		return currentScroll, false
	}

	top := elementTop + cell.Offset
	bottom := top + cell.Height

	switch {
	case top < currentScroll:
		return maxf(0, top), true
	case bottom > currentScroll+viewportHeight:
		if cell.Height >= viewportHeight {
			return maxf(0, top), true
		}
		return maxf(0, bottom-viewportHeight), true
	}
	return currentScroll, true
}

// ScrollAnimator eases a scroller from one offset to another. The host
// calls Update once per frame and writes the result to the scroller.
type ScrollAnimator struct {
	tween  *gween.Tween
	target float64
	done   bool
}

// DefaultScrollEase is the easing used when AnimateScroll gets a nil func.
var DefaultScrollEase ease.TweenFunc = ease.OutCubic

// AnimateScroll starts a tween from -> to lasting duration seconds.
// A non-positive duration jumps straight to the target on the first Update.
func AnimateScroll(from, to float64, duration float32, fn ease.TweenFunc) *ScrollAnimator {
	if fn == nil {
		fn = DefaultScrollEase
	}
	a := &ScrollAnimator{target: to}
	if duration > 0 && from != to {
		a.tween = gween.New(float32(from), float32(to), duration, fn)
	}
	return a
}

// Update advances the animation by dt seconds and returns the scroll
// offset to apply and whether the animation has finished.
func (a *ScrollAnimator) Update(dt float32) (float64, bool) {
	if a == nil {
		return 0, true
	}
	if a.done || a.tween == nil {
		a.done = true
		return a.target, true
	}
	val, finished := a.tween.Update(dt)
	if finished {
		a.done = true
		return a.target, true
	}
	return float64(val), false
}

// Target returns the offset the animation ends at.
func (a *ScrollAnimator) Target() float64 { return a.target }

// Done reports whether the animation has reached its target.
func (a *ScrollAnimator) Done() bool { return a == nil || a.done }
