package gridlist

import "math"

// Entry pairs a caller item with its resolved size.
type Entry[P any] struct {
	Item P
	Size ItemSize
}

// Config is the concrete per-render configuration derived from the
// container metrics and the policy.
type Config[P any] struct {
	ColumnCount int
	Gap         float64
	Margin      float64
	ColumnWidth float64
	Entries     []Entry[P]
}

// ColumnWidth splits the element width into columnCount columns separated
// by gap, rounded to the nearest whole pixel.
func ColumnWidth(columnCount int, gap, elementWidth float64) float64 {
	totalGapSpace := float64(columnCount-1) * gap
	return math.Round((elementWidth - totalGapSpace) / float64(columnCount))
}

// ResolveConfig turns metrics, policy and items into a Config.
//
// Contract violations fail fast with a *ConfigError wrapping one of
// ErrInvalidColumnCount, ErrNegativeGap, ErrNegativeMargin or
// ErrDuplicateKey. Items are sized in input order and never reordered.
func ResolveConfig[P any](m ContainerMetrics, policy Policy[P], items []P) (*Config[P], error) {
	margin, err := resolveMargin(m, policy)
	if err != nil {
		return nil, err
	}
	gap, err := resolveGap(m, policy)
	if err != nil {
		return nil, err
	}
	columns, err := resolveColumns(m, policy)
	if err != nil {
		return nil, err
	}
	colWidth := ColumnWidth(columns, gap, m.ElementSize.Width)
	entries, err := resolveEntries(policy, items, colWidth)
	if err != nil {
		return nil, err
	}
	return &Config[P]{
		ColumnCount: columns,
		Gap:         gap,
		Margin:      margin,
		ColumnWidth: colWidth,
		Entries:     entries,
	}, nil
}

func resolveMargin[P any](m ContainerMetrics, policy Policy[P]) (float64, error) {
	margin := policy.Margin(m.ScrollerSize.Height)
	if margin < 0 || math.IsNaN(margin) {
		return 0, &ConfigError{Field: "windowMargin", Value: margin, Err: ErrNegativeMargin}
	}
	return margin, nil
}

func resolveGap[P any](m ContainerMetrics, policy Policy[P]) (float64, error) {
	gap := policy.Gap(m.ElementSize.Width, m.ScrollerSize.Height)
	if gap < 0 || math.IsNaN(gap) {
		return 0, &ConfigError{Field: "gridGap", Value: gap, Err: ErrNegativeGap}
	}
	return gap, nil
}

func resolveColumns[P any](m ContainerMetrics, policy Policy[P]) (int, error) {
	columns := policy.ColumnCount(m.ElementSize.Width)
	if columns < 1 {
		return 0, &ConfigError{Field: "columnCount", Value: columns, Err: ErrInvalidColumnCount}
	}
	return columns, nil
}

func resolveEntries[P any](policy Policy[P], items []P, columnWidth float64) ([]Entry[P], error) {
	entries := make([]Entry[P], len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		size := policy.SizeOf(item, columnWidth)
		if _, dup := seen[size.Key]; dup {
			return nil, &ConfigError{Field: "key", Value: size.Key, Err: ErrDuplicateKey}
		}
		seen[size.Key] = struct{}{}
		entries[i] = Entry[P]{Item: item, Size: size}
	}
	return entries, nil
}
