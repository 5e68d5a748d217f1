package gridlist

import (
	"errors"
	"log/slog"
)

// Frame is everything a render surface needs for one redraw.
type Frame[P any] struct {
	Metrics ContainerMetrics
	Config  *Config[P]
	Layout  *Layout[P]
	Window  RenderWindow[P]

	// Visible is the visibility gate's verdict. When false the surface
	// must not mount any cell.
	Visible bool

	// TotalHeight is the block size the grid container should reserve.
	TotalHeight float64
	// PaddingTop pushes the first rendered row down to its layout offset.
	PaddingTop float64

	// Err is set when the policy violated its contract. The frame is then
	// empty.
	Err error
}

// Ready reports whether the frame carries a layout.
func (f Frame[P]) Ready() bool { return f.Layout != nil }

// Stats counts recomputations per stage.
type Stats struct {
	Samples uint64 // Metric snapshots that differed from the previous one
	Margin  uint64
	Gap     uint64
	Columns uint64
	Entries uint64
	Config  uint64
	Layout  uint64
	Window  uint64
}

type (
	floatResult struct {
		v   float64
		err error
	}
	intResult struct {
		v   int
		err error
	}
	entriesResult[P any] struct {
		entries []Entry[P]
		err     error
	}
	configResult[P any] struct {
		cfg *Config[P]
		err error
	}
	layoutResult[P any] struct {
		layout *Layout[P]
		err    error
	}
)

type (
	marginKey struct {
		scrollerHeight float64
		policyRev      uint64
	}
	gapKey struct {
		elementWidth, scrollerHeight float64
		policyRev                    uint64
	}
	columnsKey struct {
		elementWidth float64
		policyRev    uint64
	}
	entriesKey struct {
		itemsRev, policyRev uint64
		columnWidth         float64
	}
	configKey struct {
		margin, gap, columnWidth float64
		columns                  int
		entriesGen               uint64
	}
	windowKey[P any] struct {
		layout         *Layout[P]
		scrollY        float64
		scrollerHeight float64
		margin         float64
		offset         Offset
		offsetKnown    bool
	}
)

// GridList is the reactive pipeline for one grid: it samples metrics from
// its targets when notified, and Frame re-derives config, layout and render
// window in dependency order, recomputing only the stages whose inputs
// changed.
//
// A GridList is not safe for concurrent use. All calls, including observer
// callbacks, are expected on the host's UI thread.
type GridList[P any] struct {
	policy    Policy[P]
	policyRev uint64
	items     []P
	itemsRev  uint64

	observer    MetricsObserver
	scroller    Target
	element     Target
	unsubscribe []func()
	gate        *VisibilityGate
	opts        options

	metrics  ContainerMetrics
	measured bool
	stale    bool
	samples  uint64

	marginMemo  Memo[marginKey, floatResult]
	gapMemo     Memo[gapKey, floatResult]
	columnsMemo Memo[columnsKey, intResult]
	entriesMemo Memo[entriesKey, entriesResult[P]]
	configMemo  Memo[configKey, configResult[P]]
	layoutMemo  Memo[*Config[P], layoutResult[P]]
	windowMemo  Memo[windowKey[P], RenderWindow[P]]
}

// New creates a grid over items. The grid renders nothing until Attach
// gives it targets to measure.
func New[P any](policy Policy[P], items []P, opts ...Option) *GridList[P] {
	return &GridList[P]{
		policy:    policy,
		policyRev: 1,
		items:     items,
		itemsRev:  1,
		opts:      applyOptions(opts),
	}
}

// Attach binds the grid to its scroller and its own container and
// subscribes to their notifications through observer. Any previous
// binding is released first.
//
// If the observer cannot deliver resize or scroll signals the grid keeps
// the first sample and is never re-measured, except by explicit Remeasure
// calls. Attach only returns errors other than ErrSignalUnavailable; after
// such an error the grid holds no subscriptions and no targets.
func (g *GridList[P]) Attach(observer MetricsObserver, scroller, element Target) error {
	g.Close()

	g.observer = observer
	g.scroller = scroller
	g.element = element
	g.stale = true

	if observer != nil && scroller != nil && element != nil {
		if err := g.observe(scroller, SignalResize|SignalScroll); err != nil {
			g.detach()
			return err
		}
		if err := g.observe(element, SignalResize); err != nil {
			g.detach()
			return err
		}
	}

	inter := g.opts.intersection
	if inter == nil {
		inter, _ = observer.(IntersectionObserver)
	}
	margin := 0.0
	if res, ok := g.marginMemo.Peek(); ok && res.err == nil {
		margin = res.v
	}
	g.gate = newVisibilityGate(inter, element, margin, g.invalidate, g.opts.logger)
	return nil
}

func (g *GridList[P]) observe(target Target, signals Signal) error {
	unsub, err := g.observer.Observe(target, signals, g.notify)
	if errors.Is(err, ErrSignalUnavailable) {
		g.opts.logger.Warn("metrics signal unavailable, grid will not re-measure", "signals", signals)
		return nil
	}
	if err != nil {
		return err
	}
	g.unsubscribe = append(g.unsubscribe, unsub)
	return nil
}

// detach undoes a failed Attach: partial subscriptions are released and the
// grid forgets its targets.
func (g *GridList[P]) detach() {
	g.Close()
	g.observer = nil
	g.scroller = nil
	g.element = nil
	g.metrics = ContainerMetrics{}
	g.measured = false
	g.stale = false
}

// Close releases every subscription. The grid keeps its last frame inputs
// and can be attached again.
func (g *GridList[P]) Close() {
	for _, unsub := range g.unsubscribe {
		unsub()
	}
	g.unsubscribe = nil
	if g.gate != nil {
		g.gate.Close()
		g.gate = nil
	}
}

// SetItems replaces the item collection. The slice is treated as a new
// input even when it is the same slice, so callers may mutate in place and
// call SetItems again.
func (g *GridList[P]) SetItems(items []P) {
	g.items = items
	g.itemsRev++
}

// Items returns the current item collection.
func (g *GridList[P]) Items() []P { return g.items }

// SetPolicy replaces the layout policy.
func (g *GridList[P]) SetPolicy(policy Policy[P]) {
	g.policy = policy
	g.policyRev++
}

// Remeasure marks the metrics snapshot stale so the next Frame re-samples
// the targets.
func (g *GridList[P]) Remeasure() {
	g.stale = true
}

// Metrics returns the last sampled snapshot and whether it is usable. The
// snapshot is zero while the targets are missing or the container has no
// width.
func (g *GridList[P]) Metrics() (ContainerMetrics, bool) {
	return g.metrics, g.measured
}

// Stats returns recomputation counters.
func (g *GridList[P]) Stats() Stats {
	return Stats{
		Samples: g.samples,
		Margin:  g.marginMemo.Computes(),
		Gap:     g.gapMemo.Computes(),
		Columns: g.columnsMemo.Computes(),
		Entries: g.entriesMemo.Computes(),
		Config:  g.configMemo.Computes(),
		Layout:  g.layoutMemo.Computes(),
		Window:  g.windowMemo.Computes(),
	}
}

// Frame derives the current frame. Stages whose inputs are unchanged since
// the previous call return their cached output, so calling Frame on every
// host redraw is cheap.
func (g *GridList[P]) Frame() Frame[P] {
	g.refresh()

	f := Frame[P]{Metrics: g.metrics, Visible: g.gate.Visible()}
	if !g.measured {
		return f
	}

	cfg, err := g.config()
	if err != nil {
		f.Err = err
		return f
	}
	g.gate.SetMargin(cfg.Margin)
	f.Visible = g.gate.Visible()

	res := g.layoutMemo.Get(cfg, func() layoutResult[P] {
		l, err := Arrange(cfg)
		if err == nil && gridVerbose() {
			g.opts.logger.Debug("layout recomputed",
				"cells", len(l.Cells),
				"rows", len(l.Rows),
				"totalHeight", l.TotalHeight)
		}
		return layoutResult[P]{layout: l, err: err}
	})
	if res.err != nil {
		f.Err = res.err
		return f
	}

	m := g.metrics
	key := windowKey[P]{
		layout:         res.layout,
		scrollY:        m.ScrollerScroll.Y,
		scrollerHeight: m.ScrollerSize.Height,
		margin:         cfg.Margin,
		offset:         m.ElementOffset,
		offsetKnown:    m.OffsetKnown,
	}
	f.Window = g.windowMemo.Get(key, func() RenderWindow[P] {
		return FilterWindow(m, cfg.Margin, res.layout)
	})

	f.Config = cfg
	f.Layout = res.layout
	f.TotalHeight = res.layout.TotalHeight
	if f.Window.Anchored {
		f.PaddingTop = f.Window.FirstRowOffset
	}
	return f
}

func (g *GridList[P]) notify() {
	g.stale = true
	g.invalidate()
}

func (g *GridList[P]) invalidate() {
	if g.opts.onInvalidate != nil {
		g.opts.onInvalidate()
	}
}

// refresh re-samples the targets if a notification arrived. An identical
// snapshot is dropped so downstream keys stay untouched.
func (g *GridList[P]) refresh() {
	if !g.stale {
		return
	}
	g.stale = false

	m, ok := SampleMetrics(g.scroller, g.element)
	if !ok || m.ElementSize.Width <= 0 {
		g.metrics = ContainerMetrics{}
		g.measured = false
		return
	}
	if g.measured && m == g.metrics {
		return
	}
	g.metrics = m
	g.measured = true
	g.samples++
}

// config walks the config sub-graph. Each sub-stage is keyed only on what
// it reads, so a scroll never touches it and a height-only resize leaves
// the column count and item sizes alone.
func (g *GridList[P]) config() (*Config[P], error) {
	m := g.metrics

	margin := g.marginMemo.Get(marginKey{m.ScrollerSize.Height, g.policyRev}, func() floatResult {
		v, err := resolveMargin(m, g.policy)
		return floatResult{v, g.logViolation(err)}
	})
	if margin.err != nil {
		return nil, margin.err
	}

	gap := g.gapMemo.Get(gapKey{m.ElementSize.Width, m.ScrollerSize.Height, g.policyRev}, func() floatResult {
		v, err := resolveGap(m, g.policy)
		return floatResult{v, g.logViolation(err)}
	})
	if gap.err != nil {
		return nil, gap.err
	}

	columns := g.columnsMemo.Get(columnsKey{m.ElementSize.Width, g.policyRev}, func() intResult {
		v, err := resolveColumns(m, g.policy)
		return intResult{v, g.logViolation(err)}
	})
	if columns.err != nil {
		return nil, columns.err
	}

	colWidth := ColumnWidth(columns.v, gap.v, m.ElementSize.Width)
	entries := g.entriesMemo.Get(entriesKey{g.itemsRev, g.policyRev, colWidth}, func() entriesResult[P] {
		e, err := resolveEntries(g.policy, g.items, colWidth)
		return entriesResult[P]{e, g.logViolation(err)}
	})
	if entries.err != nil {
		return nil, entries.err
	}

	key := configKey{
		margin:      margin.v,
		gap:         gap.v,
		columnWidth: colWidth,
		columns:     columns.v,
		entriesGen:  g.entriesMemo.Computes(),
	}
	res := g.configMemo.Get(key, func() configResult[P] {
		return configResult[P]{cfg: &Config[P]{
			ColumnCount: columns.v,
			Gap:         gap.v,
			Margin:      margin.v,
			ColumnWidth: colWidth,
			Entries:     entries.entries,
		}}
	})
	return res.cfg, res.err
}

// logViolation reports a contract violation once, when the stage that
// found it recomputes.
func (g *GridList[P]) logViolation(err error) error {
	if err == nil {
		return nil
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		g.opts.logger.Warn("grid policy violated its contract",
			slog.String("field", cfgErr.Field),
			slog.Any("value", cfgErr.Value),
			slog.Any("error", cfgErr.Err))
		return err
	}
	g.opts.logger.Warn("grid policy failed", "error", err)
	return err
}
