// Package scroll implements the offset/bounds state for a horizontally
// scrollable strip of items. Key properties:
//   - The offset is always clamped into [0, max(0, width-viewport)]
//   - Content width never reports narrower than the viewport
//   - Step is either half the viewport ("auto") or a fixed column count
//   - Control visibility derives from the clamped offset, never from input
//
// The package is pure state arithmetic: no rendering, no timers, no I/O.
// Degenerate input (no items, zero viewport) collapses to a non-scrolling
// state rather than an error.
package scroll
