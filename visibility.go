package gridlist

import (
	"errors"
	"log/slog"
)

// VisibilityGate decides whether a grid's cells should be mounted at all.
//
// It follows an intersection signal for the grid container, grown by the
// same margin the viewport filter uses, so both agree on the look-ahead
// distance. The gate starts closed and opens on the first report that the
// container intersects. When the host cannot deliver intersection signals
// the gate stays open for good.
type VisibilityGate struct {
	observer IntersectionObserver
	target   Target
	margin   float64
	onChange func()
	logger   *slog.Logger

	visible     bool
	degraded    bool
	unsubscribe func()
}

// NewVisibilityGate registers an intersection subscription for target.
// onChange, if not nil, runs whenever Visible flips.
func NewVisibilityGate(obs IntersectionObserver, target Target, margin float64, onChange func()) *VisibilityGate {
	return newVisibilityGate(obs, target, margin, onChange, gridLogger)
}

func newVisibilityGate(obs IntersectionObserver, target Target, margin float64, onChange func(), logger *slog.Logger) *VisibilityGate {
	g := &VisibilityGate{
		observer: obs,
		target:   target,
		margin:   margin,
		onChange: onChange,
		logger:   logger,
	}
	g.subscribe()
	return g
}

// Visible reports whether cells should be mounted.
func (g *VisibilityGate) Visible() bool {
	if g == nil {
		return true
	}
	return g.visible || g.degraded
}

// Degraded reports whether the gate gave up on intersection signals.
func (g *VisibilityGate) Degraded() bool {
	return g != nil && g.degraded
}

// Margin returns the margin the current subscription uses.
func (g *VisibilityGate) Margin() float64 {
	return g.margin
}

// SetMargin re-registers the subscription when the margin changes.
// The last known visibility is kept until the observer reports again.
func (g *VisibilityGate) SetMargin(margin float64) {
	if g == nil || margin == g.margin {
		return
	}
	g.margin = margin
	if g.degraded {
		return
	}
	g.release()
	g.subscribe()
}

// Close releases the subscription.
func (g *VisibilityGate) Close() {
	if g == nil {
		return
	}
	g.release()
}

func (g *VisibilityGate) subscribe() {
	if g.observer == nil || g.target == nil {
		g.degrade(ErrSignalUnavailable)
		return
	}
	unsub, err := g.observer.ObserveIntersection(g.target, g.margin, g.report)
	if err != nil {
		g.degrade(err)
		return
	}
	g.unsubscribe = unsub
}

func (g *VisibilityGate) release() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

func (g *VisibilityGate) report(intersecting bool) {
	if intersecting == g.visible {
		return
	}
	g.visible = intersecting
	if gridVerbose() {
		g.logger.Debug("visibility changed", "visible", intersecting, "margin", g.margin)
	}
	if g.onChange != nil {
		g.onChange()
	}
}

func (g *VisibilityGate) degrade(err error) {
	g.degraded = true
	if errors.Is(err, ErrSignalUnavailable) {
		g.logger.Warn("intersection signal unavailable, rendering unconditionally")
		return
	}
	g.logger.Warn("intersection subscription failed, rendering unconditionally", "error", err)
}
