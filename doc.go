/*
Package gridlist lays out large collections of variable-height items in a
multi-column grid and decides which of them a render surface needs to draw.

# Overview

Items are packed row-major: item i goes to column i%cols+1 of row
i/cols+1. A row is as tall as its tallest cell, rows are separated by the
gap, and every cell of a row shares the row's offset. Only the cells that
overlap the viewport, grown by a margin on both ends, are handed to the
surface, together with the first rendered row and its offset so the
surface can reserve space above it.

The pipeline runs in strict dependency order:

	ContainerMetrics -> Config -> Layout -> RenderWindow -> VisibilityGate -> surface

Each stage is memoized on exactly the inputs it reads. A scroll recomputes
only the render window; a resize that keeps the column width keeps every
item size.

# Quick Start

	policy := gridlist.PolicyFuncs[Photo]{
	    Columns: func(w float64) int { return max(1, int(w/300)) },
	    GridGap: func(w, h float64) float64 { return 12 },
	    ItemSize: func(p Photo, colW float64) gridlist.ItemSize {
	        return gridlist.ItemSize{Key: p.URL, Height: colW * p.H / p.W}
	    },
	}

	grid := gridlist.New(policy, photos, gridlist.WithInvalidateHook(requestRedraw))
	if err := grid.Attach(observer, scroller, container); err != nil {
	    return err
	}
	defer grid.Close()

	// On every redraw
	frame := grid.Frame()
	if frame.Err != nil {
	    // The policy broke its contract; frame is empty.
	}
	dl := gridlist.AcquireDrawList()
	gridlist.Paint(dl, frame, origin, clip, gridlist.PaintOptions{}, paintPhoto)
	renderer.Render(dl)
	gridlist.ReleaseDrawList(dl)

# Hosts

A host supplies two Targets (the scroller and the grid's container) and a
MetricsObserver that reports their resizes and scrolls. An
IntersectionObserver, when available, drives the VisibilityGate so nothing
is mounted while the grid is off screen. Hosts that cannot deliver a signal
return ErrSignalUnavailable: without resize or scroll signals the grid keeps
its first measurement; without intersection signals it is always visible.

ManualObserver is a synthetic observer for tests and headless tools. The
backend/opengl package adapts a GLFW window.

# Errors

Policy contract violations (a column count below one, a negative gap or
margin, duplicate item keys) fail fast with a *ConfigError that wraps
ErrInvalidColumnCount, ErrNegativeGap, ErrNegativeMargin or ErrDuplicateKey.
GridList logs each violation once and returns an empty Frame carrying the
error.

# Logging

Recomputation traces are logged at debug level through log/slog. Call
SetVerbose(true) to enable them on the default logger, or pass WithLogger.
*/
package gridlist
