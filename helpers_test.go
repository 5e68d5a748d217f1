package gridlist_test

import (
	"strconv"

	"github.com/go-theft-auto/gridlist"
)

// item is a test item with a fixed intrinsic height.
type item struct {
	key    string
	height float64
}

func items(heights ...float64) []item {
	out := make([]item, len(heights))
	for i, h := range heights {
		out[i] = item{key: strconv.Itoa(i), height: h}
	}
	return out
}

// fixedPolicy returns a policy with constant columns, gap and margin whose
// item sizes ignore the column width.
func fixedPolicy(columns int, gap, margin float64) gridlist.PolicyFuncs[item] {
	return gridlist.PolicyFuncs[item]{
		Columns:      func(float64) int { return columns },
		GridGap:      func(float64, float64) float64 { return gap },
		WindowMargin: func(float64) float64 { return margin },
		ItemSize: func(it item, _ float64) gridlist.ItemSize {
			return gridlist.ItemSize{Key: it.key, Height: it.height}
		},
	}
}

// countingPolicy wraps a policy and counts SizeOf calls.
type countingPolicy struct {
	gridlist.PolicyFuncs[item]
	sizeCalls    *int
	columnsCalls *int
}

func (p countingPolicy) SizeOf(it item, colW float64) gridlist.ItemSize {
	*p.sizeCalls++
	return p.PolicyFuncs.SizeOf(it, colW)
}

func (p countingPolicy) ColumnCount(w float64) int {
	*p.columnsCalls++
	return p.PolicyFuncs.ColumnCount(w)
}

func metricsAt(elementWidth, scrollerHeight, scrollY, elementTop float64) gridlist.ContainerMetrics {
	return gridlist.ContainerMetrics{
		ScrollerSize:   gridlist.Size{Width: elementWidth, Height: scrollerHeight},
		ScrollerScroll: gridlist.Scroll{Y: scrollY},
		ElementSize:    gridlist.Size{Width: elementWidth},
		ElementOffset:  gridlist.Offset{Top: elementTop},
		OffsetKnown:    true,
	}
}

// host is a scroller and container pair for a GridList under test. The
// container sits at contentTop inside the scroller's content.
type host struct {
	obs        *gridlist.ManualObserver
	scroller   *gridlist.WindowTarget
	element    *gridlist.ElementTarget
	contentTop float64
}

func newHost(width, height, contentTop float64) *host {
	return &host{
		obs:        gridlist.NewManualObserver(),
		scroller:   &gridlist.WindowTarget{InnerWidth: width, InnerHeight: height},
		element:    &gridlist.ElementTarget{Box: gridlist.Rect{Y: contentTop, W: width}},
		contentTop: contentTop,
	}
}

func (h *host) scrollTo(y float64) {
	h.scroller.ScrollY = y
	h.element.Box.Y = h.contentTop - y
	h.obs.Notify(h.scroller, gridlist.SignalScroll)
}

func (h *host) resize(width, height float64) {
	h.scroller.InnerWidth = width
	h.scroller.InnerHeight = height
	h.element.Box.W = width
	h.obs.Notify(h.scroller, gridlist.SignalResize)
	h.obs.Notify(h.element, gridlist.SignalResize)
}
