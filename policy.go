package gridlist

// ItemSize is an item's identity and intrinsic height at a given column width.
type ItemSize struct {
	Key    string
	Height float64
}

// Policy supplies the caller-controlled parts of a grid: how many columns a
// container width gets, the gap between cells, the look-ahead margin, and
// each item's size. The engine calls it; it is never subclassed.
type Policy[P any] interface {
	ColumnCount(elementWidth float64) int
	Gap(elementWidth, scrollerHeight float64) float64
	Margin(scrollerHeight float64) float64
	SizeOf(item P, columnWidth float64) ItemSize
}

// PolicyFuncs adapts plain functions to Policy.
//
// Columns and ItemSize are required. GridGap defaults to 0 and WindowMargin
// defaults to one scroller height, which gives roughly one screen of
// look-ahead in each direction.
//
//	policy := gridlist.PolicyFuncs[Photo]{
//	    Columns: func(w float64) int { return int(w / 300) },
//	    ItemSize: func(p Photo, colW float64) gridlist.ItemSize {
//	        return gridlist.ItemSize{Key: p.URL, Height: colW * p.H / p.W}
//	    },
//	}
type PolicyFuncs[P any] struct {
	Columns      func(elementWidth float64) int
	GridGap      func(elementWidth, scrollerHeight float64) float64
	WindowMargin func(scrollerHeight float64) float64
	ItemSize     func(item P, columnWidth float64) ItemSize
}

var _ Policy[struct{}] = PolicyFuncs[struct{}]{}

// ColumnCount implements Policy. A nil Columns func yields 0, which the
// resolver rejects.
func (p PolicyFuncs[P]) ColumnCount(elementWidth float64) int {
	if p.Columns == nil {
		return 0
	}
	return p.Columns(elementWidth)
}

// Gap implements Policy.
func (p PolicyFuncs[P]) Gap(elementWidth, scrollerHeight float64) float64 {
	if p.GridGap == nil {
		return 0
	}
	return p.GridGap(elementWidth, scrollerHeight)
}

// Margin implements Policy.
func (p PolicyFuncs[P]) Margin(scrollerHeight float64) float64 {
	if p.WindowMargin == nil {
		return scrollerHeight
	}
	return p.WindowMargin(scrollerHeight)
}

// SizeOf implements Policy.
func (p PolicyFuncs[P]) SizeOf(item P, columnWidth float64) ItemSize {
	if p.ItemSize == nil {
		return ItemSize{}
	}
	return p.ItemSize(item, columnWidth)
}
