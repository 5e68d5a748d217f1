package gridlist

// Signal selects which changes an observer should report.
type Signal uint8

const (
	SignalResize Signal = 1 << iota // Target size changed
	SignalScroll                    // Target scroll position changed
)

// Has reports whether s includes every bit of other.
func (s Signal) Has(other Signal) bool { return s&other == other }

// MetricsObserver delivers change notifications for a target.
// The notification carries no data; the grid re-samples the target.
//
// Observe returns ErrSignalUnavailable (possibly wrapped) when the host
// cannot deliver one of the requested signals.
type MetricsObserver interface {
	Observe(target Target, signals Signal, onChange func()) (unsubscribe func(), err error)
}

// IntersectionObserver reports whether a target intersects the scroller's
// viewport grown by margin pixels on every side.
type IntersectionObserver interface {
	ObserveIntersection(target Target, margin float64, onChange func(intersecting bool)) (unsubscribe func(), err error)
}

// ManualObserver is a synthetic MetricsObserver and IntersectionObserver.
// Nothing happens until the caller invokes Notify or SetIntersecting, which
// makes it suitable for tests and headless tools.
type ManualObserver struct {
	// Unavailable lists signals that Observe refuses, to simulate hosts
	// without resize or scroll notifications.
	Unavailable Signal
	// NoIntersection makes ObserveIntersection fail.
	NoIntersection bool

	nextID  int
	metrics map[int]manualSub
	inter   map[int]manualInterSub
}

type manualSub struct {
	target   Target
	signals  Signal
	onChange func()
}

type manualInterSub struct {
	target   Target
	margin   float64
	onChange func(bool)
}

// NewManualObserver creates an observer with every signal available.
func NewManualObserver() *ManualObserver {
	return &ManualObserver{
		metrics: make(map[int]manualSub),
		inter:   make(map[int]manualInterSub),
	}
}

// Observe implements MetricsObserver.
func (o *ManualObserver) Observe(target Target, signals Signal, onChange func()) (func(), error) {
	if o.Unavailable&signals != 0 {
		return nil, ErrSignalUnavailable
	}
	o.nextID++
	id := o.nextID
	o.metrics[id] = manualSub{target: target, signals: signals, onChange: onChange}
	return func() { delete(o.metrics, id) }, nil
}

// ObserveIntersection implements IntersectionObserver.
func (o *ManualObserver) ObserveIntersection(target Target, margin float64, onChange func(bool)) (func(), error) {
	if o.NoIntersection {
		return nil, ErrSignalUnavailable
	}
	o.nextID++
	id := o.nextID
	o.inter[id] = manualInterSub{target: target, margin: margin, onChange: onChange}
	return func() { delete(o.inter, id) }, nil
}

// Notify fires every subscription on target that listens for any of signals.
func (o *ManualObserver) Notify(target Target, signals Signal) {
	for _, sub := range o.metrics {
		if sub.target == target && sub.signals&signals != 0 {
			sub.onChange()
		}
	}
}

// SetIntersecting reports a visibility change for target.
func (o *ManualObserver) SetIntersecting(target Target, intersecting bool) {
	for _, sub := range o.inter {
		if sub.target == target {
			sub.onChange(intersecting)
		}
	}
}

// Subscriptions returns the number of live metric and intersection subscriptions.
func (o *ManualObserver) Subscriptions() int {
	return len(o.metrics) + len(o.inter)
}

// IntersectionMargin returns the margin of the live intersection
// subscription on target, if any.
func (o *ManualObserver) IntersectionMargin(target Target) (float64, bool) {
	for _, sub := range o.inter {
		if sub.target == target {
			return sub.margin, true
		}
	}
	return 0, false
}
