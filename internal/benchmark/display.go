// Package benchmark owns the on-screen benchmark display flag.
//
// While the display is enabled a performance-measurement window is active and
// loggers consulting the flag stay silent so they do not skew timings.
package benchmark

import "sync/atomic"

// Display is a process-wide benchmark display toggle. The zero value is disabled.
// Safe for concurrent use.
type Display struct {
	enabled atomic.Bool
}

// NewDisplay returns a Display in the given initial state.
func NewDisplay(enabled bool) *Display {
	d := &Display{}
	d.enabled.Store(enabled)
	return d
}

// Enable starts a benchmark window.
func (d *Display) Enable() { d.enabled.Store(true) }

// Disable ends a benchmark window.
func (d *Display) Disable() { d.enabled.Store(false) }

// Set stores the flag.
func (d *Display) Set(enabled bool) { d.enabled.Store(enabled) }

// IsOnScreenDisplayEnabled reports whether a benchmark window is active.
// A nil Display is always disabled.
func (d *Display) IsOnScreenDisplayEnabled() bool {
	if d == nil {
		return false
	}
	return d.enabled.Load()
}
